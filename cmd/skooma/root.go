package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skooma",
	Short: "Skooma validates tabular data against declarative schemas",
	Long:  `Skooma checks CSV and JSON tables against column schemas, reporting every violation instead of stopping at the first.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
