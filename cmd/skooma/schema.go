package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/skooma/internal/cli"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Inspect schema definition files",
}

// lintCmd represents the schema lint command
var lintCmd = &cobra.Command{
	Use:   "lint <schema-file>...",
	Short: "Check schema files for errors",
	Long:  `Parses and compiles each schema file without validating any data, reporting unknown types, unknown predicates and malformed definitions.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.RunLint(args, os.Stdout); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	schemaCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(schemaCmd)
}
