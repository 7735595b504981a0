package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orbyte-dev/orbyte"
)

var (
	renderLocale string
	renderVars   string
)

// renderCmd resolves an identifier and prints the rendered template.
var renderCmd = &cobra.Command{
	Use:   "render <identifier>",
	Short: "Render a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ob, err := buildOrbyte()
		if err != nil {
			return err
		}
		vars, err := orbyte.ParseVars(renderVars)
		if err != nil {
			return err
		}
		out, err := ob.Render(args[0], vars, renderLocale)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderLocale, "locale", "", "locale, e.g. en or es")
	renderCmd.Flags().StringVar(&renderVars, "vars", "", "variables as JSON/YAML, or @file (.toml/.yaml/.json)")
}
