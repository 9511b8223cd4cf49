package main

import (
	"fmt"
	"net/http"

	httpapi "atelier/internal/adapters/in/http"

	"github.com/spf13/cobra"
)

func newWorkstationCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workstation",
		Short: "Manage workstations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "create <name>",
		Short: "Create a workstation and print its access code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var created httpapi.CreatedWorkstation
			err := ctx.client().do(cmd.Context(), http.MethodPost, "/workstations",
				httpapi.NewWorkstation{Name: args[0]}, &created)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Workstation %s created, access code %s\n", created.ID, created.AccessCode)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "orders <workstation-id>",
		Short: "Show the orders routed to a workstation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return listOrders(cmd, ctx, "/workstations/"+args[0]+"/orders")
		},
	})
	return cmd
}
