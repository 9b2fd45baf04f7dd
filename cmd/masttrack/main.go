package main

import (
	"os"

	"github.com/spf13/cobra"

	"masttrack/internal/interfaces/cli/migrate"
	"masttrack/internal/interfaces/cli/seed"
	"masttrack/internal/interfaces/cli/server"
	"masttrack/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "masttrack",
		Short:   "MastTrack - broadcast transmission-site asset management",
		Long:    `MastTrack tracks the national network of broadcast transmission sites, their equipment and the spare-parts store.`,
		Version: version.Version,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
