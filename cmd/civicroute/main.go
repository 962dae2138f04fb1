package main

import (
	"os"

	"github.com/spf13/cobra"

	"civicroute/internal/interfaces/cli/migrate"
	"civicroute/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "civicroute",
		Short: "CivicRoute - municipal complaint lifecycle and routing service",
		Long:  `CivicRoute manages citizen complaint intake, department routing with reroute approval, follow-up tickets, and cross-complaint incident clustering.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
