// Package main is the entry point for the godex server and CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/godex/cmd/server/client"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "godex",
	Short: "Creature combat statistics engine",
	Long: `godex computes type effectiveness, move DPS, CP and HP by level,
evolution projections and roster coverage for a catalog of creatures.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $GODEX_CONFIG or config/godex.yaml)")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(newDexCmd())
	rootCmd.AddCommand(client.ClientCmd)
}
