package main

import (
	"fmt"
	"net/http"

	httpapi "atelier/internal/adapters/in/http"

	"github.com/spf13/cobra"
)

func newNotificationsCommand(ctx *commandContext) *cobra.Command {
	var unread bool

	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "List notifications, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/notifications"
			if unread {
				path += "?unread=true"
			}
			var notes []httpapi.Notification
			if err := ctx.client().do(cmd.Context(), http.MethodGet, path, nil, &notes); err != nil {
				return err
			}
			if len(notes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No notifications")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderNotifications(notes))
			return nil
		},
	}
	cmd.Flags().BoolVar(&unread, "unread", false, "Only unread notifications")

	cmd.AddCommand(&cobra.Command{
		Use:   "read [notification-id]",
		Short: "Mark one notification, or all of them, as read",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/notifications/read"
			if len(args) == 1 {
				path = "/notifications/" + args[0] + "/read"
			}
			var marked httpapi.MarkedRead
			if err := ctx.client().do(cmd.Context(), http.MethodPost, path, nil, &marked); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d marked as read\n", marked.Marked)
			return nil
		},
	})
	return cmd
}

func renderNotifications(notes []httpapi.Notification) string {
	rows := make([][]string, 0, len(notes))
	for _, n := range notes {
		state := ""
		if !n.Read {
			state = "new"
		}
		rows = append(rows, []string{n.Date.Format("2006-01-02 15:04"), state, n.Message})
	}
	return renderTable([]string{"Date", "", "Message"}, rows, nil)
}
