package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tifan9/termfolio/internal/app"
	"github.com/tifan9/termfolio/internal/infrastructure/config"
)

// NewSeedCommand creates the seed command
func NewSeedCommand(container *app.Container) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load CV, journal and profiles into storage",
		RunE: func(cmd *cobra.Command, args []string) error {
			portfolio, err := config.LoadPortfolio(file)
			if err != nil {
				return err
			}
			if err := container.PortfolioService.Seed(cmd.Context(), portfolio); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %s: CV, %d journal entries, %d profiles\n",
				container.Store.Path(), len(portfolio.Journal), len(portfolio.Profiles))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Portfolio YAML file (default: built-in portfolio)")
	return cmd
}

// NewResetCommand creates the reset command. Without --confirm it only warns.
func NewResetCommand(container *app.Container) *cobra.Command {
	var (
		file    string
		confirm bool
	)
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all stored data, contacts included, and reseed",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm {
				fmt.Fprintln(cmd.OutOrStdout(), MsgResetNeedsConfirm)
				return nil
			}
			portfolio, err := config.LoadPortfolio(file)
			if err != nil {
				return err
			}
			if err := container.PortfolioService.Reset(cmd.Context(), portfolio); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reset %s and reseeded\n", container.Store.Path())
			return nil
		},
	}
	cmd.Flags().BoolVar(&confirm, "confirm", false, "Actually delete the data")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Portfolio YAML file (default: built-in portfolio)")
	return cmd
}
