package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/aidash/internal/logger"
	"github.com/emiliopalmerini/aidash/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web dashboard",
	Long: `Start the local web dashboard server.

Both tables are read again on every page load.

Examples:
  aidash serve                      # Listen on the configured addr (default :8080)
  aidash serve --port 3000          # Listen on port 3000
  aidash serve --config aidash.yaml # Use a config file`,
	RunE: runServe,
}

var servePort int

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to listen on (overrides addr)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := NewAppContext(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close(context.Background()) }()

	addr := app.Config.Addr
	if cmd.Flags().Changed("port") {
		addr = fmt.Sprintf(":%d", servePort)
	}

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Named("cli").Info(ctx, "shutting down")
		cancel()
	}()

	server := web.NewServer(addr, app.Loader, app.Metrics, app.Exporter, app.MetricsHandler)
	return server.Start(ctx)
}
