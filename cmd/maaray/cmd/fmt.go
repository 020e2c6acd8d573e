package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kolkov/maaray"
)

func (a *app) newFmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt FILE",
		Short: "Print the canonical source form",
		Long: `Parses FILE and prints it back in canonical form: one statement per
line, four-space indentation, and a semicolon after every simple statement.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			script, err := a.parse(args[0], maaray.Config{})
			if err != nil {
				return err
			}
			return script.WriteSource(a.stdout)
		},
	}
}
