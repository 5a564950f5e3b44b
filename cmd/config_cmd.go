// Package cmd implements the igstats CLI commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aThornes/instagram-stats/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Message directory: %s\n", cfg.General.MessageDir)
	fmt.Printf("    Stats directory:   %s\n", cfg.General.StatsDir)
	fmt.Printf("    Video directory:   %s\n", cfg.General.VideoDir)
	fmt.Printf("    Cache directory:   %s\n", cfg.General.CacheDir)
	fmt.Printf("    Cache backend:     %s\n", cfg.General.CacheBackend)

	offset, from := config.ResolveTimezoneOffset(cfg)
	switch from {
	case config.OffsetFromEnv:
		fmt.Printf("    Timezone offset:   %+dh (from %s)\n", offset, config.EnvTimezoneOffset)
	case config.OffsetFromDefault:
		fmt.Printf("    Timezone offset:   %+dh (default)\n", offset)
	default:
		fmt.Printf("    Timezone offset:   %+dh\n", offset)
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `igstats setup` to reconfigure.")
	return nil
}
