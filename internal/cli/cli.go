// Package cli provides command-line interface functionality for testengine.
package cli

import (
	"fmt"
	"strings"

	"github.com/uj-wmii-pwj-2025/MateuszJedrkowiak-zad-08-test-engine/internal/errors"
	"github.com/uj-wmii-pwj-2025/MateuszJedrkowiak-zad-08-test-engine/internal/output"
)

// Version is set at build time.
var Version = "dev"

// wantsHelp returns true if args contain -h or --help.
func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
	}
	return false
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	if len(args) > 0 {
		switch args[0] {
		case "-h", "--help", "help":
			printUsage(out)
			return errors.ExitSuccess
		case "--version", "version":
			out.Println("testengine %s", Version)
			return errors.ExitSuccess
		}
	}

	opts, remaining, err := parseGlobalFlags(args)
	if err != nil {
		usage := errors.Usage(err.Error())
		out.ErrorPrefix("%v", usage)
		return errors.GetExitCode(usage)
	}
	if wantsHelp(remaining) {
		printUsage(out)
		return errors.ExitSuccess
	}

	if len(remaining) == 0 {
		return usageError("missing unit name")
	}

	cmd := remaining[0]
	cmdArgs := remaining[1:]

	switch cmd {
	case "run":
		return cmdRun(cmdArgs, opts)
	case "list":
		return cmdList(cmdArgs, opts)
	case "units":
		return cmdUnits(cmdArgs)
	case "version":
		out.Println("testengine %s", Version)
		return errors.ExitSuccess
	case "help":
		printUsage(out)
		return errors.ExitSuccess
	default:
		// A bare unit name is shorthand for "run <unit>".
		return cmdRun(remaining, opts)
	}
}

// GlobalOptions holds parsed global flags.
type GlobalOptions struct {
	Quiet        bool
	Verbose      bool
	NoColor      bool
	NoBanner     bool
	ConfigPath   string
	ManifestPath string
}

// parseGlobalFlags manually parses global flags from arguments.
//
// Flags may appear anywhere in the argument list, before or after the
// command and unit name.
func parseGlobalFlags(args []string) (*GlobalOptions, []string, error) {
	opts := &GlobalOptions{}
	var remaining []string

	i := 0
	for i < len(args) {
		arg := args[i]

		switch {
		case arg == "-q" || arg == "--quiet":
			opts.Quiet = true
			i++
		case arg == "-v" || arg == "--verbose":
			opts.Verbose = true
			i++
		case arg == "--no-color":
			opts.NoColor = true
			i++
		case arg == "--no-banner":
			opts.NoBanner = true
			i++
		case arg == "--config" || arg == "--manifest":
			if i+1 >= len(args) {
				return nil, nil, fmt.Errorf("%s requires a value", arg)
			}
			setPathFlag(opts, arg, args[i+1])
			i += 2
		case strings.HasPrefix(arg, "--config=") || strings.HasPrefix(arg, "--manifest="):
			name, value, _ := strings.Cut(arg, "=")
			if value == "" {
				return nil, nil, fmt.Errorf("%s requires a value", name)
			}
			setPathFlag(opts, name, value)
			i++
		case arg == "-h" || arg == "--help":
			remaining = append(remaining, arg)
			i++
		case arg == "--version":
			remaining = append(remaining, "version")
			i++
		case strings.HasPrefix(arg, "-") && arg != "-":
			return nil, nil, fmt.Errorf("unknown flag %q\n  run 'testengine help' for usage", arg)
		default:
			remaining = append(remaining, arg)
			i++
		}
	}

	if err := validateGlobalOptions(opts); err != nil {
		return nil, nil, err
	}

	applyVerbosityToOutput(opts)

	return opts, remaining, nil
}

func setPathFlag(opts *GlobalOptions, name, value string) {
	if name == "--config" {
		opts.ConfigPath = value
	} else {
		opts.ManifestPath = value
	}
}

// validateGlobalOptions checks that global options are valid.
func validateGlobalOptions(opts *GlobalOptions) error {
	if opts.Quiet && opts.Verbose {
		return fmt.Errorf("--quiet and --verbose are mutually exclusive")
	}
	return nil
}

func usageError(msg string) int {
	err := errors.Usage(msg)
	out.ErrorPrefix("%v", err)
	out.Hint("usage: testengine [flags] <unit>")
	return errors.GetExitCode(err)
}

// Help text alignment widths for consistent formatting.
const (
	helpCommandWidth = 14
	helpFlagWidth    = 18
	helpEnvWidth     = 18
)

func printUsage(w *output.Writer) {
	w.HelpTitle("testengine - run annotated test methods of a unit")

	w.HelpSection("Usage:")
	w.HelpUsage("testengine [flags] <unit>          Run every test of a unit")
	w.HelpUsage("testengine [flags] <command> [args]")

	w.HelpSection("Commands:")
	w.HelpCommand("run <unit>", "Run every test of a unit", helpCommandWidth)
	w.HelpCommand("list <unit>", "List the tests of a unit without running them", helpCommandWidth)
	w.HelpCommand("units", "List registered units", helpCommandWidth)
	w.HelpCommand("version", "Show version information", helpCommandWidth)
	w.HelpCommand("help", "Show this help", helpCommandWidth)

	w.HelpSection("Global Flags:")
	w.HelpFlag("-q, --quiet", "Print only failures and the summary", helpFlagWidth)
	w.HelpFlag("-v, --verbose", "Log engine diagnostics to stderr", helpFlagWidth)
	w.HelpFlag("--no-color", "Disable colored output", helpFlagWidth)
	w.HelpFlag("--no-banner", "Do not print the banner", helpFlagWidth)
	w.HelpFlag("--config=<path>", "Configuration file (default testengine.json)", helpFlagWidth)
	w.HelpFlag("--manifest=<path>", "YAML manifest with test annotations", helpFlagWidth)
	w.HelpFlag("-h, --help", "Show this help", helpFlagWidth)
	w.HelpFlag("--version", "Show version", helpFlagWidth)

	w.HelpSection("Environment:")
	w.HelpEnvVar("TESTENGINE_CONFIG", "Configuration file when --config is not given", helpEnvWidth)

	w.HelpSection("Exit Codes:")
	w.HelpCommand("0", "All tests passed", 2)
	w.HelpCommand("1", "At least one test failed or errored", 2)
	w.HelpCommand("2", "Usage or configuration error", 2)
	w.HelpCommand("3", "Unit could not be created", 2)

	w.HelpSection("Examples:")
	w.HelpExample("testengine beautiful", "Run the demonstration unit")
	w.HelpExample("testengine list arith", "Show the tests of the arith unit")
	w.HelpExample("testengine --manifest=tests.yaml arith", "Run arith with annotations from a manifest")
	w.Println("")
}
