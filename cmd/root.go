package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gosteel/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gosteel",
	Short: "Bolted Steel Splice Connection Design Tool",
	Long: `gosteel - Go Steel Splice Connection Designer

A CLI tool for the verification and design of bolted flange/web splice
plate connections per AISC 360 (LRFD and ASD).

This tool helps structural engineers perform:
  - Limit-state verification (bolt shear, bearing, block shear,
    net-section rupture, yielding, buckling, prying action)
  - Eccentric bolt-group analysis for the web splice
  - Demand/capacity ratio summaries under LRFD or ASD
  - Automatic bolt-pattern optimization (fewest bolts that pass)

All calculations follow AISC 360-16 provisions in US customary units.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gosteel v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Steel Splice Connection Designer                     ║")
		fmt.Println("  ║   Alexius S. Academia ©  2026                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the design of bolted steel splice connections")
		fmt.Println("  per AISC 360-16 (LRFD and ASD).")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Full limit-state check catalogue with D/C ratios")
		fmt.Println("    • Flange and web bolt-group evaluation")
		fmt.Println("    • Minimum-bolt-count pattern optimization")
		fmt.Println("    • Bolt-pattern diagrams (terminal and image export)")
		fmt.Println()
		fmt.Println("  Use 'gosteel --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
