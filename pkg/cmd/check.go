package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-lfsr/pkg/lfsr"
	"github.com/consensys/go-lfsr/pkg/trace"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] trace_file polynomial",
	Short: "Check a hardware register trace against the model.",
	Long: `Check a register trace dumped from a hardware simulation against the
	software model.  The model is seeded with the first state of the trace and
	replayed for the same number of clock edges; any bit-level divergence is
	reported per cycle.`,
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
		// Read hardware dump
		hardware := readTraceFile(args[0])
		if len(hardware.States) == 0 {
			fmt.Printf("empty trace file %#v\n", args[0])
			os.Exit(2)
		}
		// Seed model from the dump's first state
		poly := lfsr.Polynomial(parseArg(args[1]))
		reg := newRegister(form, poly, hardware.States[0])
		log.Debugf("replaying %d states against %s (%s form)", len(hardware.States), reg.Algebraic(), form)
		// Replay and compare
		model := trace.Capture(reg, uint(len(hardware.States)-1))
		errors := model.Diff(hardware)
		// report any differences
		for _, err := range errors {
			fmt.Println(err)
		}
		//
		if len(errors) > 0 {
			os.Exit(1)
		}
		//
		fmt.Printf("OK (%d states)\n", len(hardware.States))
	},
}

func init() {
	checkCmd.Flags().String("form", "fibonacci", "register form (fibonacci or galois)")
	rootCmd.AddCommand(checkCmd)
}
