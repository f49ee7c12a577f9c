// Package cli holds the portfolio command tree.
package cli

import (
	"context"
	"fmt"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/store"
	"github.com/Zachkp/portfolio/internal/theme"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app is the state shared by every subcommand once the root has loaded config.
type app struct {
	v          *viper.Viper
	configPath string
	cfg        *config.Config
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:          "portfolio",
		Short:        "Personal portfolio server",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.v, a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			logging.Init(cfg.Logging.Level, cfg.Logging.Format)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (yaml, toml or json)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("db", "", "SQLite file for preferences (default portfolio.db)")
	flags.Bool("memory", false, "keep preferences in memory instead of SQLite")
	_ = a.v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("database.path", flags.Lookup("db"))
	_ = a.v.BindPFlag("database.memory", flags.Lookup("memory"))

	root.AddCommand(serveCmd(a), themeCmd(a), contactCmd(a))
	return root
}

// openStore opens the preference store named by the config. The returned
// func releases it.
func (a *app) openStore(ctx context.Context) (store.Store, func() error, error) {
	if a.cfg.Database.Memory || a.cfg.Database.Path == "" {
		return store.NewMemory(), func() error { return nil }, nil
	}
	db, err := store.OpenSQLite(ctx, a.cfg.Database.Path)
	if err != nil {
		return nil, nil, err
	}
	return db, db.Close, nil
}

func (a *app) themeStore(storage store.Store) *theme.Store {
	return theme.New(storage,
		theme.WithKey(a.cfg.Theme.StorageKey),
		theme.WithAmbient(a.cfg.Theme.Ambient),
	)
}

// transport builds the configured contact transport wrapped in retries.
func (a *app) transport() (contact.Transport, error) {
	c := a.cfg
	var t contact.Transport
	switch c.Contact.Transport {
	case config.TransportSimulated:
		t = contact.Simulated{Delay: c.Contact.SimulatedDelay}
	case config.TransportSMTP:
		t = contact.NewSMTP(c.SMTP.Host, c.SMTP.Port, c.SMTP.User, c.SMTP.Pass, c.SMTP.To)
	default:
		return nil, fmt.Errorf("unknown contact transport %q", c.Contact.Transport)
	}
	return contact.Retry(t, contact.RetryPolicy{
		MaxRetries:      c.Contact.MaxRetries,
		InitialInterval: c.Contact.RetryInterval,
	}), nil
}

func (a *app) newController(t contact.Transport) *contact.Controller {
	return contact.NewController(t, contact.WithSuccessWindow(a.cfg.Contact.SuccessWindow))
}
