package commands

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/tifan9/termfolio/internal/app"
	"github.com/tifan9/termfolio/internal/domain"
)

// NewContactsCommand creates the contacts command
func NewContactsCommand(container *app.Container) *cobra.Command {
	contactsCmd := &cobra.Command{
		Use:   "contacts",
		Short: "Inspect contact-form submissions",
	}

	var limit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recent submissions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			contacts, err := container.ContactService.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(contacts) == 0 {
				fmt.Fprintln(out, MsgNoContacts)
				return nil
			}
			now := time.Now()
			for _, c := range contacts {
				fmt.Fprintf(out, "%s | %s <%s> | %s\n  %s\n",
					humanize.RelTime(c.CreatedAt, now, "ago", "from now"),
					c.Name, c.Email, c.CreatedAt.Format(domain.TimestampFormat), c.Message)
			}
			return nil
		},
	}
	listCmd.Flags().IntVar(&limit, "limit", domain.DefaultContactListLimit, "Max entries to show")

	contactsCmd.AddCommand(listCmd)
	return contactsCmd
}
