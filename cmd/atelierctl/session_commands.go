package main

import (
	"fmt"
	"net/http"

	httpapi "atelier/internal/adapters/in/http"

	"github.com/spf13/cobra"
)

func newLoginCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Enter manager or workstation mode",
	}

	for _, mode := range []string{"manager", "workstation"} {
		cmd.AddCommand(&cobra.Command{
			Use:   mode + " <code>",
			Short: "Enter " + mode + " mode with its access code",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var session httpapi.Session
				err := ctx.client().do(cmd.Context(), http.MethodPost, "/sessions/"+mode,
					httpapi.CodeRequest{Code: args[0]}, &session)
				if err != nil {
					return err
				}
				printSession(cmd, session)
				if *ctx.session == "" {
					fmt.Fprintf(cmd.OutOrStdout(), "export %s=%s\n", envSession, session.ID)
				}
				return nil
			},
		})
	}
	return cmd
}

func newLogoutCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Return to client mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			var session httpapi.Session
			if err := ctx.client().do(cmd.Context(), http.MethodDelete, "/sessions/current", nil, &session); err != nil {
				return err
			}
			printSession(cmd, session)
			return nil
		},
	}
}

func printSession(cmd *cobra.Command, s httpapi.Session) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Session:  %s\n", s.ID)
	fmt.Fprintf(out, "Mode:     %s\n", s.Mode)
	fmt.Fprintf(out, "Screen:   %s\n", s.Screen)
	if s.WorkstationID != "" {
		fmt.Fprintf(out, "Station:  %s\n", s.WorkstationID)
	}
}
