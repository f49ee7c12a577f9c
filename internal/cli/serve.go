package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/session"
	"github.com/Zachkp/portfolio/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

// serve: run the HTTP server until SIGINT or SIGTERM.
func serveCmd(a *app) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the portfolio HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg := a.cfg
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			gin.SetMode(cfg.Server.Mode)
			logger := logging.Component("serve")

			storage, closeStore, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if err := closeStore(); err != nil {
					logger.Warn().Err(err).Msg("close preference store")
				}
			}()

			transport, err := a.transport()
			if err != nil {
				return err
			}

			themes := a.themeStore(storage)
			sessions := session.NewManager(func() *contact.Controller {
				return a.newController(transport)
			}, cfg.Contact.SessionTTL)
			defer sessions.Close()

			srv, err := web.New(themes, sessions, web.Options{
				Addr:            cfg.Server.Addr(),
				StaticDir:       cfg.Server.StaticDir,
				SubmitTimeout:   cfg.Contact.SubmitTimeout,
				ShutdownTimeout: cfg.Server.ShutdownTimeout,
				SecureCookies:   cfg.Server.SecureCookies,
			})
			if err != nil {
				return err
			}

			logger.Info().
				Str("transport", cfg.Contact.Transport).
				Str("theme", themes.Mode().String()).
				Msg("starting")
			return srv.Run(ctx)
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "listen port (overrides server.port)")
	return cmd
}
