package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/aidash/internal/dashboard"
	"github.com/emiliopalmerini/aidash/internal/web"
	"github.com/emiliopalmerini/aidash/internal/web/templates"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the dashboard as a static HTML page",
	Long: `Load both tables and write the whole dashboard, every view on one page,
as a standalone HTML document.

Examples:
  aidash render                      # Write to stdout
  aidash render --out dashboard.html # Write to a file`,
	RunE: runRender,
}

var renderOut string

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Write to this file instead of stdout")
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	app, err := NewAppContext(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close(ctx) }()

	start := time.Now()
	session, err := app.Loader.Load(ctx)
	if err != nil {
		_ = app.Exporter.ExportRenderMetrics(ctx, dashboard.FailedRenderMetrics(surfaceRender, err, time.Since(start)))
		return loadFailure(cmd, err, app.Config.Generator)
	}

	data, err := web.BuildPage(session, templates.TabResponses, true, app.Config.Generator, app.Metrics)
	if err != nil {
		return fmt.Errorf("failed to build page: %w", err)
	}

	var out io.Writer = cmd.OutOrStdout()
	if renderOut != "" {
		f, err := os.Create(renderOut)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	if err := templates.Page(data).Render(ctx, out); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}

	rendered := web.RenderedCharts(data.Charts)
	return app.Exporter.ExportRenderMetrics(ctx, session.RenderMetrics(surfaceRender, rendered, time.Since(start)))
}
