package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/skooma/internal/cli"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <data-file>",
	Short: "Validate a CSV or JSON table against a schema file",
	Long: `Reads a data file and checks it against a schema definition.
Every violation is reported; the exit code is 1 when the table is invalid.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		schemaPath, _ := cmd.Flags().GetString("schema")
		format, _ := cmd.Flags().GetString("format")
		delimiter, _ := cmd.Flags().GetString("delimiter")
		noInfer, _ := cmd.Flags().GetBool("no-infer")

		valid, err := cli.RunValidate(cli.ValidateOptions{
			SchemaPath: schemaPath,
			DataPath:   args[0],
			Format:     format,
			Delimiter:  delimiter,
			NoInfer:    noInfer,
		})
		if err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(2)
		}
		if !valid {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("schema", "s", "", "Path to the schema file (YAML or JSON)")
	validateCmd.Flags().StringP("format", "f", "plain", "Output format: plain, table or markdown")
	validateCmd.Flags().String("delimiter", ",", "CSV field delimiter")
	validateCmd.Flags().Bool("no-infer", false, "Keep CSV cells as strings instead of inferring types")
	validateCmd.MarkFlagRequired("schema")
}
