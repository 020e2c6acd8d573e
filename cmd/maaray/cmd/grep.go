package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kolkov/maaray"
)

func (a *app) newGrepCmd() *cobra.Command {
	var ignoreCase, longest bool

	cmd := &cobra.Command{
		Use:   "grep PATTERN FILE...",
		Short: "Find names matching a regular expression",
		Long: `Searches identifiers, call and member names, function names and let
bindings for PATTERN and prints FILE:LINE:COL KIND NAME for each match.

Files that fail to parse are reported and skipped; the exit status is then 1.

Examples:
  maaray grep '^print' *.mry
  maaray grep -i total main.mry`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := maaray.Config{
				IgnoreCase:   a.cfg.Query.IgnoreCase,
				LongestMatch: a.cfg.Query.Longest,
			}
			if cmd.Flags().Changed("ignore-case") {
				cfg.IgnoreCase = ignoreCase
			}
			if cmd.Flags().Changed("longest") {
				cfg.LongestMatch = longest
			}
			return a.runGrep(args[0], args[1:], cfg)
		},
	}
	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "case-insensitive matching")
	cmd.Flags().BoolVar(&longest, "longest", false, "leftmost-longest matching")
	return cmd
}

func (a *app) runGrep(pattern string, files []string, cfg maaray.Config) error {
	failed := false
	for _, name := range files {
		script, err := a.parse(name, cfg)
		if err != nil {
			a.report(err)
			failed = true
			continue
		}

		matches, err := script.Find(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			highlighted := m.Name[:m.Start] + a.outStyles.paint(a.outStyles.match, m.Name[m.Start:m.End]) + m.Name[m.End:]
			fmt.Fprintf(a.stdout, "%s:%d:%d %s %s\n", displayName(name), m.Pos.Line, m.Pos.Column, m.Kind, highlighted)
		}
		a.log.Debug().Str("file", name).Int("matches", len(matches)).Msg("searched")
	}

	if failed {
		return errReported
	}
	return nil
}
