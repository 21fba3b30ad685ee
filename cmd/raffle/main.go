package main

import (
	"os"
	_ "time/tzdata"

	"github.com/spf13/cobra"

	"raffle/internal/interfaces/cli/migrate"
	"raffle/internal/interfaces/cli/seed"
	"raffle/internal/interfaces/cli/server"
	"raffle/internal/interfaces/cli/token"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "raffle",
		Short: "Raffle - sponsor funded raffles",
		Long:  `Raffle runs the raffle API server, database migrations, fixture seeding and token issuing.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
