package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"webterm/internal/catalog"
	"webterm/internal/config"
	"webterm/internal/log"
	"webterm/internal/server"
	"webterm/internal/session"
	"webterm/internal/watch"

	"github.com/spf13/cobra"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var (
		host      string
		port      int
		watchFile bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve sessions over SSH",
		Long: `Serve starts an SSH server. Every connection gets its own session with
a private path, theme and history. With --watch the catalog file is
reloaded on change; sessions opened afterwards see the new tree.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			if cmd.Flags().Changed("host") {
				cfg.Server.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if cmd.Flags().Changed("watch") {
				cfg.Catalog.Watch = watchFile
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "address to bind (overrides config)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "port to listen on (overrides config)")
	cmd.Flags().BoolVarP(&watchFile, "watch", "w", false, "reload the catalog file when it changes")

	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	c, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	manager := session.NewManager(c, sessionOptions(cfg), cfg.Server.MaxSessions)

	srv, err := server.New(server.Config{
		Address:      cfg.Address(),
		HostKeyPath:  cfg.Server.HostKeyPath,
		AllowedUsers: cfg.Server.AllowedUsers,
		IdleTimeout:  cfg.IdleTimeout(),
	}, manager)
	if err != nil {
		return err
	}

	if cfg.Catalog.Watch {
		w, err := watch.New(cfg.Catalog.Path, func(c *catalog.Catalog) {
			manager.SetCatalog(c)
		})
		if err != nil {
			return err
		}
		defer w.Close()
		go func() {
			logger := log.LogWithFields(log.F("file", w.Path()))
			if err := w.Run(ctx); err != nil {
				logger.WithError(err).Error("catalog watcher stopped")
				return
			}
			st := w.Status()
			logger.With(log.F("reloads", st.Reloads)).WithError(st.LastError).Info("catalog watcher finished")
		}()
	}

	return srv.Run(ctx)
}
