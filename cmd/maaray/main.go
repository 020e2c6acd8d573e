// maaray - command-line front end for the maaray scripting language
//
// Parses maaray sources and prints their syntax tree, lexeme stream or
// canonical form, and searches them for names.
package main

import (
	"os"

	"github.com/kolkov/maaray/cmd/maaray/cmd"
)

// version is set by GoReleaser at build time via -ldflags.
// For development builds, it will be "dev".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(cmd.Main(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, cmd.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}))
}
