package cmd

import (
	"github.com/spf13/cobra"
)

var spliceCmd = &cobra.Command{
	Use:   "splice",
	Short: "Bolted flange/web splice connection commands",
	Long:  `Verify or size a bolted flange/web splice plate connection.`,
}

func init() {
	rootCmd.AddCommand(spliceCmd)
}
