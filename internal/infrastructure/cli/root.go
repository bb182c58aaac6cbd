package cli

import (
	"github.com/spf13/cobra"

	"github.com/tifan9/termfolio/internal/app"
	"github.com/tifan9/termfolio/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose    bool
	ConfigPath string
}

// NewRootCmd wires the cobra root command. The container is built lazily in
// PersistentPreRunE so commands like version work without a config file.
// The returned func releases whatever the container opened.
func NewRootCmd(opts Options) (*cobra.Command, func() error) {
	container := &app.Container{}
	built := false

	terminalCmd := commands.NewTerminalCommand(container)

	root := &cobra.Command{
		Use:   "termfolio",
		Short: "Termfolio - a portfolio you explore from a terminal",
		Long: "Termfolio serves a CV, journal and profile links over a small HTTP API " +
			"and lets visitors browse them with slash commands in a terminal.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return terminalCmd.RunE(cmd, args)
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if built || skipsContainer(cmd) {
				return nil
			}
			c, err := app.BuildContainer(cmd.Context(), app.Options{
				Verbose:    opts.Verbose,
				ConfigPath: opts.ConfigPath,
			})
			if err != nil {
				return err
			}
			*container = *c
			built = true
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.ConfigPath, "config", opts.ConfigPath, "Config file (default ~/.termfolio/config.yaml)")
	root.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", opts.Verbose, "Enable debug logging")

	root.AddCommand(
		commands.NewServeCommand(container),
		terminalCmd,
		commands.NewExecCommand(container),
		commands.NewSeedCommand(container),
		commands.NewResetCommand(container),
		commands.NewContactsCommand(container),
		commands.NewConfigCommand(container),
		commands.NewDoctorCommand(container),
		commands.NewVersionCommand(),
	)

	closeFn := func() error {
		if !built {
			return nil
		}
		return container.Close()
	}
	return root, closeFn
}

func skipsContainer(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch {
		case commands.SkipsContainer(c.Annotations):
			return true
		case c.Name() == "help", c.Name() == "completion":
			return true
		}
	}
	return false
}
