package main

import (
	"io"

	"webterm/internal/catalog"
	"webterm/internal/config"
	"webterm/internal/log"
	"webterm/internal/session"
	"webterm/internal/tui"

	"github.com/spf13/cobra"
)

// rootOptions carries the persistent flags and the loaded configuration to
// every subcommand.
type rootOptions struct {
	cfgFile string
	debug   bool
	cfg     *config.Config
}

// NewRootCmd creates the root command. Without a subcommand it starts the
// terminal UI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "webterm",
		Short: "A tiny shell over a virtual filesystem",
		Long: `webterm is a small terminal for browsing a read-only virtual filesystem.

Run it locally as a TUI or desktop window, serve it to many users over SSH,
or feed it commands from a script.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.config/webterm/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newTUICmd(opts))
	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newGUICmd(opts))
	rootCmd.AddCommand(newRunCmd(opts))
	rootCmd.AddCommand(newCatalogCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// load reads the configuration and configures logging. A broken config file
// is fatal; a missing one yields defaults.
func (o *rootOptions) load() error {
	var err error
	if o.cfgFile != "" {
		o.cfg, err = config.LoadConfigFile(o.cfgFile)
	} else {
		o.cfg, err = config.LoadConfig()
	}
	if err != nil {
		return err
	}

	log.SetDebug(o.debug)
	return configureLogging(o.cfg)
}

func configureLogging(cfg *config.Config, extra ...log.Option) error {
	opts := []log.Option{log.WithLevel(cfg.Logging.Level)}
	if cfg.Logging.Format == "json" {
		opts = append(opts, log.WithJSON())
	}
	if cfg.Logging.File != "" {
		opts = append(opts, log.WithFile(cfg.Logging.File))
	}
	return log.Configure(append(opts, extra...)...)
}

// loadCatalog returns the configured catalog file, or the built-in tree
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.Path == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(cfg.Catalog.Path)
}

func sessionOptions(cfg *config.Config) session.Options {
	opts := session.DefaultOptions()
	opts.User = cfg.Session.User
	opts.Host = cfg.Session.Host
	opts.Theme = cfg.SessionTheme()
	opts.HistoryLimit = cfg.Session.HistoryLimit
	return opts
}

func newSession(cfg *config.Config) (*session.Session, error) {
	c, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}
	return session.New(c, sessionOptions(cfg)), nil
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the terminal UI (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}
}

func runTUI(opts *rootOptions) error {
	// log lines would corrupt the screen; keep them only when a file is set
	if opts.cfg.Logging.File == "" {
		if err := configureLogging(opts.cfg, log.WithOutput(io.Discard)); err != nil {
			return err
		}
	}

	sess, err := newSession(opts.cfg)
	if err != nil {
		return err
	}
	return tui.Run(sess)
}
