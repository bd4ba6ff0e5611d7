package main

import (
	"github.com/spf13/cobra"
)

var toggleHex bool

func init() {
	cmd := newToggleCmd()
	cmd.Flags().BoolVar(&toggleHex, "hex", false, "Interpret the value as hex bytes")
	rootCmd.AddCommand(cmd)
}

func newToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <name> <value>",
		Short: "Set a variable, or delete it if already set to the value",
		Long: `The toggle command flips a variable: if it already holds the given
value it is deleted, otherwise the value is written. Toggling twice
returns the store to its starting state.

Example:
  nvramctl toggle boot-args "-v"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args, true, toggleHex)
		},
	}
	return cmd
}
