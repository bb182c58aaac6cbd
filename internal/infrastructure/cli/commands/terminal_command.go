package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/tifan9/termfolio/internal/app"
	"github.com/tifan9/termfolio/internal/infrastructure/cli/tui"
	"github.com/tifan9/termfolio/internal/ports"
	"github.com/tifan9/termfolio/internal/terminal"
)

// apiFlags selects where the terminal reads portfolio data from.
type apiFlags struct {
	url   string
	local bool
}

func (f *apiFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.url, "api-url", "", "Portfolio API base URL (default from config terminal.api_url)")
	cmd.Flags().BoolVar(&f.local, "local", false, "Serve data in-process instead of calling the API")
}

func (f *apiFlags) resolve(container *app.Container) ports.PortfolioAPI {
	if f.local {
		return container.LocalAPI()
	}
	return container.RemoteAPI(f.url)
}

// NewTerminalCommand creates the interactive terminal command
func NewTerminalCommand(container *app.Container) *cobra.Command {
	var (
		api   apiFlags
		style string
	)
	cmd := &cobra.Command{
		Use:     "terminal",
		Aliases: []string{"term"},
		Short:   "Open the interactive portfolio terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := container.Config.Terminal
			dispatcher := terminal.NewDispatcher(
				terminal.DefaultRegistry(),
				api.resolve(container),
				tui.NewANSIRenderer(80, style),
				container.Logger,
			)
			session := terminal.NewSession(settings.SessionLabel, nil)
			return tui.Run(cmd.Context(), dispatcher, session, tui.Options{
				Welcome:         settings.Welcome,
				TypewriterDelay: time.Duration(settings.TypewriterDelayMS) * time.Millisecond,
			})
		},
	}
	api.register(cmd)
	cmd.Flags().StringVar(&style, "style", "auto", "Markdown style for answers (auto, dark, light, notty)")
	return cmd
}
