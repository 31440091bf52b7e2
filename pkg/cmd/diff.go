package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// diffCmd represents the diff command for comparing traces.
var diffCmd = &cobra.Command{
	Use:   "diff [flags] trace_file trace_file",
	Short: "Show differences between two register traces.",
	Long: `Reports differences between two register trace files,
	which is useful when the trace files are expected to be identical.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Read trace files
		trace1 := readTraceFile(args[0])
		trace2 := readTraceFile(args[1])
		//
		errors := trace1.Diff(trace2)
		// report any differences
		for _, err := range errors {
			fmt.Println(err)
		}
		//
		if len(errors) > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
