package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tifan9/termfolio/internal/app"
	"github.com/tifan9/termfolio/internal/infrastructure/config"
	"github.com/tifan9/termfolio/internal/infrastructure/httpapi"
)

// NewServeCommand creates the serve command
func NewServeCommand(container *app.Container) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the portfolio HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			settings := container.Config.Server
			if addr != "" {
				settings.Addr = addr
			}

			if container.Config.Storage.SeedOnStart {
				seeded, err := container.PortfolioService.EnsureSeeded(ctx, config.DefaultPortfolio())
				if err != nil {
					return fmt.Errorf("seed on start: %w", err)
				}
				if seeded {
					container.Logger.Info("storage seeded with default portfolio", map[string]interface{}{
						"path": container.Store.Path(),
					})
				}
			}

			container.Logger.Info("starting server", map[string]interface{}{
				"addr":      settings.Addr,
				"storage":   container.Store.Path(),
				"assistant": container.Answerer.Name(),
				"mail":      container.Mailer.Enabled(),
				"started":   time.Now().UTC().Format(time.RFC3339),
			})

			srv := httpapi.NewServer(settings, container.PortfolioService, container.ContactService, container.AskService, container.Logger)
			return srv.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config server.addr)")
	return cmd
}
