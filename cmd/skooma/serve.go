package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/skooma/internal/cli"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the schema registry HTTP server",
	Long: `Starts an HTTP server exposing schema storage and validation as a JSON API.
Settings come from flags, SKOOMA_* environment variables or a YAML config file.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfgFile, _ := cmd.Flags().GetString("config")

		cfg, err := cli.LoadServeConfig(cfgFile, cmd.Flags())
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}

		if err := cli.RunServe(cfg); err != nil {
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("config", "", "Path to a YAML config file (default skooma.yaml if present)")
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
	serveCmd.Flags().String("redis-url", "", "Redis URL for schema storage (in-memory when empty)")
	serveCmd.Flags().String("log-level", "info", "Log level: debug, info, warn or error")
}
