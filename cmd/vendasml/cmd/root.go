// Package cmd implements the CLI commands for the vendasml server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "vendasml",
	Short: "Mercado Livre marketplace integration backend",
	Long:  "An API-first service that connects seller accounts to Mercado Livre via OAuth, keeps access tokens fresh, and proxies listing and category operations to the marketplace.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
