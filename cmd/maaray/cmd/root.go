// Package cmd implements the maaray command tree.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kolkov/maaray"
	"github.com/kolkov/maaray/internal/config"
)

// BuildInfo identifies the binary.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// errReported marks a failure whose diagnostics were already written.
var errReported = errors.New("errors reported")

// app holds the state shared by all subcommands of one invocation.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfgFile  string
	logLevel string
	color    string

	cfg       *config.Config
	log       zerolog.Logger
	styles    styles // stderr
	outStyles styles // stdout
}

// Main runs the command line and returns the process exit status.
func Main(args []string, stdin io.Reader, stdout, stderr io.Writer, info BuildInfo) int {
	a := &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		cfg:    config.Default(),
		log:    zerolog.Nop(),
	}
	a.styles = newStyles(lipgloss.NewRenderer(stderr))
	a.outStyles = newStyles(lipgloss.NewRenderer(stdout))

	root := a.newRootCmd(info)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		a.report(err)
		return 1
	}
	return 0
}

func (a *app) newRootCmd(info BuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:   "maaray",
		Short: "maaray - scripting language front end",
		Long: `maaray parses maaray source files.

Commands:
  parse    print the syntax tree (debug, yaml or source form)
  tokens   print the lexeme stream
  grep     find identifiers, calls, functions and bindings by regex
  fmt      print the canonical source form

A FILE argument of "-" reads standard input.`,
		Version:           fmt.Sprintf("%s (commit %s, built %s)", info.Version, info.Commit, info.Date),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetVersionTemplate("maaray {{.Version}}\n")

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./"+config.DefaultFile+")")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.color, "color", "", "color output: auto, always, never")

	root.AddCommand(
		a.newParseCmd(),
		a.newTokensCmd(),
		a.newGrepCmd(),
		a.newFmtCmd(),
	)
	return root
}

// setup loads the configuration, applies flag overrides and builds the
// logger and styles.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("color") {
		cfg.Output.Color = a.color
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	renderer := a.renderer(a.stderr)
	a.styles = newStyles(renderer)
	a.outStyles = newStyles(a.renderer(a.stdout))

	level := cfg.LogLevel()
	if level < zerolog.GlobalLevel() {
		zerolog.SetGlobalLevel(level)
	}
	a.log = zerolog.New(zerolog.ConsoleWriter{
		Out:     a.stderr,
		NoColor: renderer.ColorProfile() == termenv.Ascii,
	}).Level(level).With().Timestamp().Logger()

	a.log.Debug().Str("config", cfg.Path).Str("format", cfg.Output.Format).Msg("configured")
	return nil
}

// renderer returns a lipgloss renderer for w honoring the color setting.
func (a *app) renderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch a.cfg.Output.Color {
	case "always":
		r.SetColorProfile(termenv.ANSI256)
	case "never":
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// report prints a command failure to stderr.
func (a *app) report(err error) {
	if errors.Is(err, errReported) {
		return
	}
	var d *diagnostic
	if errors.As(err, &d) {
		a.styles.render(a.stderr, d)
		return
	}
	fmt.Fprintf(a.stderr, "%s %v\n", a.styles.paint(a.styles.label, "error:"), err)
}

// readInput reads the named file, or stdin for "-".
func (a *app) readInput(name string) (string, error) {
	if name == "-" {
		src, err := io.ReadAll(a.stdin)
		return string(src), err
	}
	src, err := os.ReadFile(name)
	return string(src), err
}

// parse reads and parses one input. Parse failures come back as a
// *diagnostic carrying the source for the caret display.
func (a *app) parse(name string, cfg maaray.Config) (*maaray.Script, error) {
	src, err := a.readInput(name)
	if err != nil {
		return nil, err
	}

	cfg.Filename = displayName(name)
	cfg.Logger = &a.log
	script, err := maaray.Parse(src, &cfg)
	if err != nil {
		return nil, newDiagnostic(err, src)
	}
	a.log.Debug().Str("file", cfg.Filename).Int("statements", len(script.Statements())).Msg("parsed")
	return script, nil
}

func displayName(name string) string {
	if name == "-" {
		return "<stdin>"
	}
	return name
}
