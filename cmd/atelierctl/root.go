package main

import (
	"os"

	"github.com/spf13/cobra"
)

const (
	defaultServer = "http://localhost:8080"
	envServer     = "ATELIER_SERVER"
	envSession    = "ATELIER_SESSION"
)

type commandContext struct {
	server  *string
	session *string
}

func (c *commandContext) client() *client {
	return newClient(*c.server, *c.session)
}

func newRootCommand() *cobra.Command {
	var serverFlag, sessionFlag string
	ctx := &commandContext{server: &serverFlag, session: &sessionFlag}

	rootCmd := &cobra.Command{
		Use:           "atelierctl",
		Short:         "Atelier order board from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", envOr(envServer, defaultServer), "Atelier service URL")
	rootCmd.PersistentFlags().StringVar(&sessionFlag, "session", os.Getenv(envSession), "Session id (defaults to $"+envSession+")")

	rootCmd.AddCommand(newLoginCommand(ctx))
	rootCmd.AddCommand(newLogoutCommand(ctx))
	rootCmd.AddCommand(newBoardCommands(ctx)...)
	rootCmd.AddCommand(newOrderCommand(ctx))
	rootCmd.AddCommand(newWorkstationCommand(ctx))
	rootCmd.AddCommand(newNotificationsCommand(ctx))

	return rootCmd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
