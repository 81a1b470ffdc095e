package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mestiri/wrangler"
	redisAdapter "github.com/mestiri/wrangler/internal/adapters/redis"
	"github.com/mestiri/wrangler/internal/report"
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "Classify every scene snapshot under a directory",
	Long: `Walks a directory tree for scene snapshots (.yaml/.yml), classifies the
asset roots in each, and prints a report. Snapshots that fail to open are
logged and skipped.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}
		kind, _ := cmd.Flags().GetString("type")
		jsonOut, _ := cmd.Flags().GetBool("json")
		redisAddr, _ := cmd.Flags().GetString("redis")
		cacheTTL, _ := cmd.Flags().GetDuration("cache-ttl")
		infer, _ := cmd.Flags().GetBool("infer")

		logger := newLogger(cmd)
		opts := []wrangler.Option{wrangler.WithLogger(logger)}
		if infer {
			opts = append(opts, wrangler.WithPathInference())
		}
		if redisAddr != "" {
			store := redisAdapter.New(redisAddr, "", 0, redisAdapter.WithTTL(cacheTTL))
			opts = append(opts, wrangler.WithResultStore(store))
		}
		eng := wrangler.New(opts...)

		records, err := eng.ScanDir(cmd.Context(), dir, kind)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		if jsonOut {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(records); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			return
		}
		fmt.Print(report.Render(report.Markdown(records)))
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringP("type", "t", "", "Only scan snapshots under this asset-type folder (char, prop, envr, vhcl)")
	scanCmd.Flags().Bool("json", false, "Emit scan records as JSON instead of a report")
	scanCmd.Flags().String("redis", "", "Redis address for scan-result caching (e.g. localhost:6379)")
	scanCmd.Flags().Duration("cache-ttl", 24*time.Hour, "Expiration for cached scan results")
	scanCmd.Flags().Bool("infer", false, "Try the asset kind implied by each snapshot's storage path first")
}
