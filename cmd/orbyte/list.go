package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var nonRecursive bool

// listCmd prints the available identifiers, one per line.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available identifiers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ob, err := buildOrbyte()
		if err != nil {
			return err
		}
		ids, err := ob.ListIdentifiers(!nonRecursive)
		if err != nil {
			return err
		}
		for _, id := range ids {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&nonRecursive, "non-recursive", false,
		"only list templates directly inside each search path")
}
