package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gosteel/internal/diagram"
	"github.com/alexiusacademia/gosteel/internal/splice"
	"github.com/spf13/cobra"
)

var (
	designFile        string
	designMethod      string
	designDiameter    bool
	designShowLog     bool
	designShowDiagram bool
	designExportFile  string
)

var spliceDesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Find the smallest bolt pattern that passes every check",
	Long: `Search bolt grid dimensions (and optionally standard bolt diameters)
for the minimum-bolt-count configuration that satisfies every
limit-state check and geometric spacing rule.

The flange bolt group is sized first; the web group is then sized
against the demands left over by the chosen flange group. Ties at equal
bolt count are broken by enumeration order. If no configuration within
the search bounds is valid, the connection as defined in the file is
evaluated and reported instead.

Examples:
  gosteel splice design --file splice.json
  gosteel splice design -f splice.json --diameters --log
  gosteel splice design -f splice.json --method ASD -o pattern.png`,
	Run: runSpliceDesign,
}

func init() {
	spliceCmd.AddCommand(spliceDesignCmd)

	spliceDesignCmd.Flags().StringVarP(&designFile, "file", "f", "", "Path to connection JSON file [required]")
	spliceDesignCmd.MarkFlagRequired("file")

	spliceDesignCmd.Flags().StringVar(&designMethod, "method", "", "Override design method (LRFD or ASD)")
	spliceDesignCmd.Flags().BoolVar(&designDiameter, "diameters", false, "Also search the standard bolt diameter list")
	spliceDesignCmd.Flags().BoolVar(&designShowLog, "log", false, "Show the full optimizer search log")
	spliceDesignCmd.Flags().BoolVar(&designShowDiagram, "diagram", false, "Show ASCII bolt-pattern diagrams")
	spliceDesignCmd.Flags().StringVarP(&designExportFile, "output", "o", "", "Export bolt-pattern diagram to file (png, svg, pdf)")
}

func runSpliceDesign(cmd *cobra.Command, args []string) {
	conn, err := splice.LoadFromFile(designFile)
	if err != nil {
		fmt.Printf("Error loading connection: %v\n", err)
		return
	}
	if designMethod != "" {
		conn.Method = designMethod
		if err := conn.Validate(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}
	if designDiameter {
		conn.OptimizeDiameter = true
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     BOLT PATTERN OPTIMIZATION - AISC 360-16 (%s)\n", conn.DesignMethod())
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	res := splice.Optimize(conn)

	if designShowLog || !res.Found {
		fmt.Println("SEARCH LOG:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		for _, line := range res.Log {
			fmt.Printf("  %s\n", line)
		}
		fmt.Println()
	}

	cfg := res.Best
	if !res.Found {
		fmt.Println("  No valid configuration found within the search bounds.")
		fmt.Println("  Falling back to the connection as defined in the input file.")
		fmt.Println()
		cfg, err = splice.EvaluateConfiguration(conn)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	} else {
		fmt.Println("OPTIMAL BOLT PATTERN:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		fmt.Printf("  Flange: φ%.3f in, %d rows × %d columns (%d bolts per side)\n",
			cfg.FlangeBolts.Diameter, cfg.FlangeBolts.Rows, cfg.FlangeBolts.Columns, cfg.FlangeBolts.Count())
		fmt.Printf("  Web:    φ%.3f in, %d rows × %d columns (%d bolts per side)\n",
			cfg.WebBolts.Diameter, cfg.WebBolts.Rows, cfg.WebBolts.Columns, cfg.WebBolts.Count())
		fmt.Println()
	}

	printDemands(cfg.Demands)
	printChecks(cfg)
	printGeometryChecks(cfg)
	printVerdict(cfg)

	if designShowDiagram {
		fmt.Println(diagram.DrawBoltPattern(patternData(conn, cfg.FlangeBolts,
			"Flange splice plate", conn.FlangeOuterPlate.Length, conn.FlangeOuterPlate.Width, false)))
		fmt.Println(diagram.DrawBoltPattern(patternData(conn, cfg.WebBolts,
			"Web splice plate", conn.WebPlate.Length, conn.WebPlate.Width, true)))
	}

	if designExportFile != "" {
		err := diagram.ExportRatioChart(ratioBars(cfg), designExportFile)
		if err != nil {
			fmt.Printf("Error exporting chart: %v\n", err)
		} else {
			fmt.Printf("Ratio chart exported to: %s\n", designExportFile)
		}
	}
}
