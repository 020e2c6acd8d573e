package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kolkov/maaray"
)

func (a *app) newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the lexeme stream of a source file",
		Long: `Prints one lexeme per line as LINE:COL KIND TEXT.
Layout (spaces, tabs and newlines) is not shown.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runTokens(args[0])
		},
	}
}

func (a *app) runTokens(name string) error {
	src, err := a.readInput(name)
	if err != nil {
		return err
	}

	lexems, err := maaray.Lex(src, &maaray.Config{Filename: displayName(name)})
	if err != nil {
		return newDiagnostic(err, src)
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	for _, lx := range lexems {
		kind := lx.Kind.String()
		if lx.Kind.IsPunct() {
			kind = "punct"
		}
		fmt.Fprintf(tw, "%d:%d\t%s\t%s\n", lx.Pos.Line, lx.Pos.Column, kind, lx)
	}
	return tw.Flush()
}
