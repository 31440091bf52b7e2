package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-lfsr/pkg/lfsr"
	"github.com/spf13/cobra"
)

// polyCmd represents the poly command
var polyCmd = &cobra.Command{
	Use:   "poly polynomial",
	Short: "Describe a characteristic polynomial.",
	Long: `Describe a characteristic polynomial: its algebraic form, degree,
	field order and tap mask.  Set bits of the polynomial mark tap positions,
	with the highest set bit giving the degree.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		poly := lfsr.Polynomial(parseArg(args[0]))
		//
		order, err := poly.FieldOrder()
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		fmt.Printf("polynomial:  %s\n", poly.Algebraic())
		fmt.Printf("degree:      %d\n", poly.Degree())
		fmt.Printf("field order: %d\n", order)
		fmt.Printf("tap mask:    %0*b\n", int(order), poly.TapMask())
	},
}

func init() {
	rootCmd.AddCommand(polyCmd)
}
