package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-lfsr/pkg/lfsr"
	"github.com/consensys/go-lfsr/pkg/trace"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// tableCmd represents the table command
var tableCmd = &cobra.Command{
	Use:   "table [flags] polynomial state",
	Short: "Compute the state table of a register.",
	Long: `Compute the state table of a register from a given initial state,
	applying one round at a time until the first repeated state.  Beware that
	the table can hold up to 2^order states.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		form := GetString(cmd, "form")
		output := GetString(cmd, "output")
		//
		reg := newRegister(form, lfsr.Polynomial(parseArg(args[0])), parseArg(args[1]))
		log.Debugf("%s register of %s", form, reg.Algebraic())
		// Compute table
		table, err := reg.StateTable()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		order := int(reg.FieldOrder())
		fmt.Printf("%6s %8s   %s\n", "Cycle", "State", "Register State")
		//
		for i, s := range table {
			fmt.Printf("%6d %8d   %0*b\n", i, s, order, s)
		}
		// Optionally write as a trace file
		if output != "" {
			tr := trace.Trace{Width: reg.FieldOrder(), States: table}
			if err := trace.WriteFile(output, tr); err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			log.Debugf("wrote %d states to %s", len(table), output)
		}
	},
}

func init() {
	tableCmd.Flags().String("form", "fibonacci", "register form (fibonacci or galois)")
	tableCmd.Flags().StringP("output", "o", "", "write the state table as a trace file")
	rootCmd.AddCommand(tableCmd)
}
