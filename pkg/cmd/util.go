package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/consensys/go-lfsr/pkg/lfsr"
	"github.com/consensys/go-lfsr/pkg/trace"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Parse a numeric command-line argument, accepting 0b, 0o and 0x prefixes as
// well as plain decimal.
func parseArg(arg string) uint64 {
	val, err := strconv.ParseUint(arg, 0, 64)
	if err != nil {
		fmt.Printf("invalid number %#v\n", arg)
		os.Exit(2)
	}

	return val
}

// Construct a register of the requested form, exiting on error.
func newRegister(form string, poly lfsr.Polynomial, state uint64) *lfsr.Register {
	var (
		reg *lfsr.Register
		err error
	)
	//
	switch form {
	case "fibonacci":
		reg, err = lfsr.NewFibonacci(poly, state)
	case "galois":
		reg, err = lfsr.NewGalois(poly, state)
	default:
		err = fmt.Errorf("unknown register form %#v (expected fibonacci or galois)", form)
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return reg
}

// Parse a trace file, exiting on error.
func readTraceFile(filename string) trace.Trace {
	tr, err := trace.ReadFile(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return tr
}
