package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/kolkov/maaray"
	"github.com/kolkov/maaray/internal/config"
)

func (a *app) newParseCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Print the syntax tree of a source file",
		Long: `Parses FILE and prints its syntax tree.

Formats:
  debug    Go-syntax dump of every node, positions included
  yaml     YAML document, one mapping per node
  source   canonical source form

Examples:
  maaray parse main.mry
  maaray parse --format yaml main.mry
  echo 'let x = 5;' | maaray parse -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				format = strings.ToLower(format)
				if !slices.Contains(config.Formats, format) {
					return fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(config.Formats, ", "))
				}
			} else {
				format = a.cfg.Output.Format
			}
			return a.runParse(args[0], format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: debug, yaml, source (default from config)")
	return cmd
}

func (a *app) runParse(name, format string) error {
	script, err := a.parse(name, maaray.Config{})
	if err != nil {
		return err
	}

	switch format {
	case "yaml":
		return script.WriteYAML(a.stdout)
	case "source":
		return script.WriteSource(a.stdout)
	default:
		_, err := pretty.Fprintf(a.stdout, "%# v\n", script.Root())
		return err
	}
}
