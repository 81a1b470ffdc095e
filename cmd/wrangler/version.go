package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mestiri/wrangler"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of wrangler",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wrangler version %s\n", wrangler.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
