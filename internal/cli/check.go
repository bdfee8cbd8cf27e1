package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/aidash/internal/dashboard"
	"github.com/emiliopalmerini/aidash/internal/util"
)

const (
	surfaceRender = "render"
	surfaceCheck  = "check"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Load both tables and report what the dashboard would show",
	Long: `Load and validate both tables without rendering anything.

Exits non-zero when a table is missing, malformed or lacks a required
numeric column.

Examples:
  aidash check
  aidash check --config aidash.yaml`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	app, err := NewAppContext(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close(ctx) }()

	start := time.Now()
	session, err := app.Loader.Load(ctx)
	if err != nil {
		_ = app.Exporter.ExportRenderMetrics(ctx, dashboard.FailedRenderMetrics(surfaceCheck, err, time.Since(start)))
		return loadFailure(cmd, err, app.Config.Generator)
	}

	printCheck(cmd.OutOrStdout(), session, app)
	return app.Exporter.ExportRenderMetrics(ctx, session.RenderMetrics(surfaceCheck, 0, time.Since(start)))
}

func printCheck(w io.Writer, s *dashboard.Session, app *AppContext) {
	resp := s.Responses.Table
	caps := s.Capabilities.Table

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  aidash Check\n")
	fmt.Fprintf(w, "  ============\n")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  Session:           %s\n", s.ID)
	fmt.Fprintf(w, "  Source:            %s\n", app.Config.Source.Driver)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  Responses\n")
	fmt.Fprintf(w, "  ---------\n")
	fmt.Fprintf(w, "  Artifact:          %s\n", app.Sources.Responses.Artifact())
	fmt.Fprintf(w, "  Rows:              %s\n", util.FormatNumber(int64(resp.Len())))
	fmt.Fprintf(w, "  Columns:           %s\n", strings.Join(resp.Columns, ", "))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  Capabilities\n")
	fmt.Fprintf(w, "  ------------\n")
	fmt.Fprintf(w, "  Artifact:          %s\n", app.Sources.Capabilities.Artifact())
	fmt.Fprintf(w, "  Metrics:           %s\n", util.FormatNumber(int64(caps.Len())))
	fmt.Fprintf(w, "  Dimensions:        %s\n", strings.Join(s.Capabilities.Dimensions, ", "))
	fmt.Fprintln(w)

	if len(s.Warnings) > 0 {
		fmt.Fprintf(w, "  Warnings\n")
		fmt.Fprintf(w, "  --------\n")
		for _, warning := range s.Warnings {
			fmt.Fprintf(w, "  - %s\n", warning)
		}
		fmt.Fprintln(w)
	}
}

// loadFailure prints the operator-facing message and returns err so the
// process exits non-zero.
func loadFailure(cmd *cobra.Command, err error, generator string) error {
	fmt.Fprintln(cmd.ErrOrStderr(), dashboard.UserMessage(err, generator))
	return err
}
