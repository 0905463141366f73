package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/skooma"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of skooma",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("skooma version %s\n", strings.TrimSpace(skooma.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
