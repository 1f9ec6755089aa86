package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gosteel/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gosteel",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gosteel v%s\n", version.Version)
		fmt.Println("Bolted Steel Splice Connection Design Tool")
		fmt.Println("Based on AISC 360-16 (Specification for Structural Steel Buildings)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
