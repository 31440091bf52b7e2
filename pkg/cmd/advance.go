package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-lfsr/pkg/lfsr"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// advanceCmd represents the advance command
var advanceCmd = &cobra.Command{
	Use:   "advance [flags] polynomial state n",
	Short: "Advance a register by a given number of rounds.",
	Long: `Advance a register by n rounds from a given initial state and print
	the resulting state.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 3 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		form := GetString(cmd, "form")
		reg := newRegister(form, lfsr.Polynomial(parseArg(args[0])), parseArg(args[1]))
		n := parseArg(args[2])
		//
		if GetFlag(cmd, "trace") {
			// Print every intermediate state as well.
			fmt.Printf("%6d %v\n", 0, reg)
			//
			for i := uint64(1); i <= n; i++ {
				reg.Next()
				fmt.Printf("%6d %v\n", i, reg)
			}
		} else {
			reg.Advance(uint(n))
			fmt.Println(reg)
		}
	},
}

func init() {
	advanceCmd.Flags().String("form", "fibonacci", "register form (fibonacci or galois)")
	advanceCmd.Flags().Bool("trace", false, "print every intermediate state")
	rootCmd.AddCommand(advanceCmd)
}
