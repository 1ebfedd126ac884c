package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yourusername/deskwm/internal/config"
	"github.com/yourusername/deskwm/internal/logging"
	"github.com/yourusername/deskwm/internal/server"
)

var (
	serveRestore   bool
	serveNoPersist bool
	serveSession   string
)

// serveCmd runs the window manager in the foreground
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the window manager server",
	Long: `Runs the window manager and listens on a unix socket until interrupted.

The desktop is saved on shutdown when server.persistSession is set in the
config file. Use --restore to reopen the last saved session on start.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadOrDefault(configPath)
		if err != nil {
			return fail("Failed to load config", err)
		}

		opts := server.Options{
			SessionPath: serveSession,
			Restore:     serveRestore,
			Persist:     cfg.Server.PersistSession && !serveNoPersist,
		}
		if cmd.Flags().Changed("socket") {
			opts.SocketPath = socketPath
		}

		srv, err := server.New(cfg, opts)
		if err != nil {
			return fail("Failed to start server", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			select {
			case <-srv.Ready():
				infoColor.Printf("Listening on %s\n", srv.SocketPath())
			case <-ctx.Done():
			}
		}()

		logging.Info().Str("socket", srv.SocketPath()).Bool("restore", serveRestore).Msg("serve starting")
		if err := srv.Run(ctx); err != nil {
			return fail("Server stopped", err)
		}
		successColor.Println("✓ Server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().BoolVar(&serveRestore, "restore", false, "Reopen the saved session")
	serveCmd.Flags().BoolVar(&serveNoPersist, "no-persist", false, "Do not save the session on shutdown")
	serveCmd.Flags().StringVar(&serveSession, "session", "", "Session file (default ~/.local/state/deskwm/session.json)")
}
