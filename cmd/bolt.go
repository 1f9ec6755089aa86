package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gosteel/internal/aisc"
	"github.com/alexiusacademia/gosteel/internal/limitstate"
	"github.com/spf13/cobra"
)

var (
	boltGrade       string
	boltDiameter    float64
	boltThreadsIncl bool
	boltPlanes      int
	boltJointLength float64
	boltMethod      string
)

var boltCmd = &cobra.Command{
	Use:   "bolt",
	Short: "Quick shear capacity of a single high-strength bolt",
	Long: `Calculate the nominal and design shear capacity of a single bolt,
Rn = Fnv·Ab·(shear planes), including the 20% long-joint reduction when
the fastener-pattern length exceeds 50 in.

Examples:
  # 3/4" A325 bolt, threads included, single shear
  gosteel bolt --grade A325 --diameter 0.75 --threads-included

  # Double shear A490, long joint, ASD
  gosteel bolt --grade A490 -d 0.875 --planes 2 --joint-length 60 --method ASD`,
	Run: runBolt,
}

func init() {
	rootCmd.AddCommand(boltCmd)

	boltCmd.Flags().StringVarP(&boltGrade, "grade", "g", "A325", "Bolt grade (A325 or A490)")
	boltCmd.Flags().Float64VarP(&boltDiameter, "diameter", "d", 0, "Bolt diameter (in) [required]")
	boltCmd.Flags().BoolVar(&boltThreadsIncl, "threads-included", false, "Threads in the shear plane (N condition)")
	boltCmd.Flags().IntVarP(&boltPlanes, "planes", "n", 1, "Number of shear planes")
	boltCmd.Flags().Float64VarP(&boltJointLength, "joint-length", "l", 0, "Fastener-pattern length (in)")
	boltCmd.Flags().StringVarP(&boltMethod, "method", "m", "LRFD", "Design method (LRFD or ASD)")

	boltCmd.MarkFlagRequired("diameter")
}

func runBolt(cmd *cobra.Command, args []string) {
	if boltDiameter <= 0 {
		fmt.Println("Error: diameter must be positive")
		return
	}

	method := aisc.LRFD
	if boltMethod == "ASD" {
		method = aisc.ASD
	}

	result := limitstate.BoltShear(limitstate.BoltShearInput{
		Grade:           aisc.BoltGrade(boltGrade),
		Diameter:        boltDiameter,
		ThreadsIncluded: boltThreadsIncl,
		ShearPlanes:     boltPlanes,
		JointLength:     boltJointLength,
	})

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BOLT SHEAR CAPACITY - AISC 360-16")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Grade:\t%s\n", boltGrade)
	fmt.Fprintf(w, "  Diameter (db):\t%.3f in\n", boltDiameter)
	fmt.Fprintf(w, "  Bolt area (Ab):\t%.4f in²\n", result.Ab)
	fmt.Fprintf(w, "  Shear planes:\t%d\n", boltPlanes)
	fmt.Fprintf(w, "  Nominal shear stress (Fnv):\t%.1f ksi\n", result.Fnv)
	if result.WasReduced {
		fmt.Fprintf(w, "  Long-joint reduction:\tapplied (pattern > %.0f in)\n", aisc.LongJointLength)
	}
	fmt.Fprintf(w, "  Nominal capacity (Rn):\t%.2f kips\n", result.Rn)
	if method == aisc.ASD {
		fmt.Fprintf(w, "  Allowable capacity (Rn/Ω):\t%.2f kips  (Ω = %.2f)\n",
			method.Capacity(result.Rn, result.Phi, result.Omega), result.Omega)
	} else {
		fmt.Fprintf(w, "  Design capacity (φRn):\t%.2f kips  (φ = %.2f)\n",
			method.Capacity(result.Rn, result.Phi, result.Omega), result.Phi)
	}
	w.Flush()
	fmt.Println()
}
