package main

import (
	"fmt"
	"io"

	"github.com/iwvelando/take-home/pkg/constants"
	"github.com/iwvelando/take-home/pkg/format"
	"github.com/iwvelando/take-home/pkg/paycheck"
	"github.com/spf13/cobra"
)

var statesCmd = &cobra.Command{
	Use:   "states",
	Short: "List recognized states and their flat income tax rates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		writeStates(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statesCmd)
}

func writeStates(w io.Writer) {
	for _, state := range paycheck.States() {
		rate, _ := paycheck.StateRate(state)
		fmt.Fprintf(w, "%-22s %s\n", state, format.Rate(rate))
	}
	fmt.Fprintf(w, "%-22s %s\n", "(other)", format.Rate(constants.DefaultStateTaxRate))
}
