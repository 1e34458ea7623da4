package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "centsible",
	Short: "Centsible - personal finance tracking API",
	Long: `Centsible is a personal finance tracker.

It provides a REST API for recording income and expense transactions,
dashboard statistics and charts, and piggybank savings goals.

Run 'centsible serve' to start the server, or 'centsible seed' to load demo data.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
}
