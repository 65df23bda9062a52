package main

import (
	"os"

	"github.com/spf13/cobra"

	"vendra/internal/interfaces/cli/migrate"
	"vendra/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vendra",
		Short: "Vendra - point of sale back office",
		Long:  `Vendra is the back office service for point of sale deployments: authenticated catalog management, audit trail, and document numbering.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
