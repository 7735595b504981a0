package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var explainLocale string

// explainCmd shows which file a resolution would pick and the full fallback
// chain, as JSON, without rendering anything.
var explainCmd = &cobra.Command{
	Use:   "explain <identifier>",
	Short: "Explain which file will be used and show the fallback chain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ob, err := buildOrbyte()
		if err != nil {
			return err
		}
		info, err := ob.Explain(args[0], explainLocale)
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	explainCmd.Flags().StringVar(&explainLocale, "locale", "", "locale, e.g. en or es")
}
