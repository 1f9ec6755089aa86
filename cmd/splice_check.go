package cmd

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/gosteel/internal/diagram"
	"github.com/alexiusacademia/gosteel/internal/limitstate"
	"github.com/alexiusacademia/gosteel/internal/splice"
	"github.com/spf13/cobra"
)

var (
	checkFile        string
	checkMethod      string
	checkShowDetails bool
	checkShowDiagram bool
	checkExportFile  string
)

var spliceCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify a splice connection defined in a JSON file",
	Long: `Evaluate every limit-state check and geometric spacing rule for the
bolted splice connection defined in a JSON file, and report the
demand/capacity ratio of each check under LRFD or ASD.

The check catalogue covers bolt shear (with the long-joint reduction),
bolt bearing and tear-out, gross yielding, net-section fracture, block
shear, plate compression buckling, member flange flexural rupture,
combined bolt tension-shear, prying action, and the eccentric web bolt
group.

Examples:
  gosteel splice check --file splice.json
  gosteel splice check -f splice.json --method ASD --details
  gosteel splice check -f splice.json --diagram -o pattern.png`,
	Run: runSpliceCheck,
}

func init() {
	spliceCmd.AddCommand(spliceCheckCmd)

	spliceCheckCmd.Flags().StringVarP(&checkFile, "file", "f", "", "Path to connection JSON file [required]")
	spliceCheckCmd.MarkFlagRequired("file")

	spliceCheckCmd.Flags().StringVar(&checkMethod, "method", "", "Override design method (LRFD or ASD)")
	spliceCheckCmd.Flags().BoolVar(&checkShowDetails, "details", false, "Show intermediate quantities per check")
	spliceCheckCmd.Flags().BoolVar(&checkShowDiagram, "diagram", false, "Show ASCII bolt-pattern diagrams and ratio bars")
	spliceCheckCmd.Flags().StringVarP(&checkExportFile, "output", "o", "", "Export bolt-pattern diagram to file (png, svg, pdf)")
}

func runSpliceCheck(cmd *cobra.Command, args []string) {
	conn, err := splice.LoadFromFile(checkFile)
	if err != nil {
		fmt.Printf("Error loading connection: %v\n", err)
		return
	}
	if checkMethod != "" {
		conn.Method = checkMethod
		if err := conn.Validate(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}

	cfg, err := splice.EvaluateConfiguration(conn)
	if err != nil {
		var inst *limitstate.InstabilityError
		if errors.As(err, &inst) {
			fmt.Println()
			fmt.Println("  FATAL: the applied load set is physically inadmissible.")
			fmt.Printf("  %v\n\n", inst)
			return
		}
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     BOLTED SPLICE CONNECTION CHECK - AISC 360-16 (%s)\n", conn.DesignMethod())
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	if conn.Name != "" {
		fmt.Printf("  Connection: %s\n\n", conn.Name)
	}

	printDemands(cfg.Demands)
	printChecks(cfg)
	if checkShowDetails {
		printCheckDetails(cfg)
	}
	printGeometryChecks(cfg)
	printVerdict(cfg)

	if checkShowDiagram {
		fmt.Println(diagram.DrawBoltPattern(patternData(conn, cfg.FlangeBolts,
			"Flange splice plate", conn.FlangeOuterPlate.Length, conn.FlangeOuterPlate.Width, false)))
		fmt.Println(diagram.DrawBoltPattern(patternData(conn, cfg.WebBolts,
			"Web splice plate", conn.WebPlate.Length, conn.WebPlate.Width, true)))
		fmt.Println(diagram.DrawRatioSummary(ratioBars(cfg)))
	}

	if checkExportFile != "" {
		err := diagram.ExportBoltPattern(patternData(conn, cfg.FlangeBolts,
			"Flange splice plate", conn.FlangeOuterPlate.Length, conn.FlangeOuterPlate.Width, false),
			checkExportFile)
		if err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", checkExportFile)
		}
	}
}
