package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tifan9/termfolio/internal/app"
	"github.com/tifan9/termfolio/internal/infrastructure/cli/tui"
	"github.com/tifan9/termfolio/internal/terminal"
)

// NewExecCommand creates the exec command, which runs one terminal line and
// prints the resulting scrollback.
func NewExecCommand(container *app.Container) *cobra.Command {
	var (
		api    apiFlags
		format string
	)
	cmd := &cobra.Command{
		Use:   "exec <line...>",
		Short: "Run a single terminal command and print its output",
		Example: `  termfolio exec /cv
  termfolio exec --local /ask what are your skills
  termfolio exec --format html /profiles`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var render terminal.Renderer
			switch format {
			case FormatHTML:
				render = terminal.HTMLRenderer{}
			case FormatText:
				render = tui.NewANSIRenderer(80, "notty")
			default:
				return fmt.Errorf(ErrUnknownFormat, format)
			}

			dispatcher := terminal.NewDispatcher(terminal.DefaultRegistry(), api.resolve(container), render, container.Logger)
			session := terminal.NewSession(container.Config.Terminal.SessionLabel, nil)
			progress := startSpinner(cmd.ErrOrStderr(), "Loading")
			dispatcher.ExecuteNow(cmd.Context(), session, strings.Join(args, " "))
			progress.Stop()

			return writeScrollback(cmd.OutOrStdout(), format, session.Scrollback())
		},
	}
	api.register(cmd)
	cmd.Flags().StringVar(&format, "format", FormatText, "Output format: html or text")
	return cmd
}

func writeScrollback(out io.Writer, format string, entries []terminal.OutputEntry) error {
	if format == FormatText {
		_, err := fmt.Fprint(out, tui.FormatScrollback(entries))
		return err
	}
	for _, entry := range entries {
		if _, err := fmt.Fprintf(out, "<div class=%q>%s</div>\n", entry.Class, entry.Content); err != nil {
			return err
		}
	}
	return nil
}
