package cli

import (
	stderrors "errors"
	"io/fs"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	"github.com/joho/godotenv"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/uj-wmii-pwj-2025/MateuszJedrkowiak-zad-08-test-engine/internal/config"
	"github.com/uj-wmii-pwj-2025/MateuszJedrkowiak-zad-08-test-engine/internal/engine"
	"github.com/uj-wmii-pwj-2025/MateuszJedrkowiak-zad-08-test-engine/internal/errors"
	"github.com/uj-wmii-pwj-2025/MateuszJedrkowiak-zad-08-test-engine/internal/manifest"
	"github.com/uj-wmii-pwj-2025/MateuszJedrkowiak-zad-08-test-engine/internal/output"
	"github.com/uj-wmii-pwj-2025/MateuszJedrkowiak-zad-08-test-engine/internal/report"
	"github.com/uj-wmii-pwj-2025/MateuszJedrkowiak-zad-08-test-engine/pkg/testengine"
)

var out = output.New()

// envFile is loaded into the process environment before configuration is
// resolved. A missing file is not an error.
var envFile = ".env"

// applyVerbosityToOutput configures the output writer based on verbosity settings.
func applyVerbosityToOutput(opts *GlobalOptions) {
	out.SetQuiet(opts.Quiet)
}

// session is the state shared by commands that operate on a unit.
type session struct {
	cfg      *config.Config
	manifest *manifest.Manifest
	log      logr.Logger
	closeLog func()
}

// loadSession loads the environment, configuration and manifest.
// Returns the session and exit code 0 on success, or nil and the exit code
// of the failure.
func loadSession(opts *GlobalOptions) (*session, int) {
	if err := godotenv.Load(envFile); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		out.Warning("ignoring %s: %v", envFile, err)
	}

	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return nil, errors.GetExitCode(err)
	}

	if opts.NoColor {
		out.SetColorMode(string(config.ColorNever))
	} else {
		out.SetColorMode(cfg.Output.Color)
	}

	s := &session{cfg: cfg}

	path := opts.ManifestPath
	if path == "" {
		path = cfg.Manifest
	}
	if path != "" {
		m, err := manifest.Load(path)
		if err != nil {
			err = errors.WrapConfig(err, "failed to load manifest")
			out.ErrorPrefix("%v", err)
			return nil, errors.GetExitCode(err)
		}
		s.manifest = m
	}

	s.log, s.closeLog = newLogger(opts.Verbose)
	return s, errors.ExitSuccess
}

func loadConfig(explicit string) (*config.Config, error) {
	path, err := config.Resolve(explicit, ".")
	if err != nil {
		return nil, errors.WrapConfig(err, "failed to locate config file")
	}
	if path == "" {
		return config.Default(), nil
	}

	cfg, warnings, err := config.LoadAndValidate(path)
	for _, w := range warnings {
		out.Warning("%s: %s", path, w)
	}
	if err != nil {
		return nil, errors.WrapConfig(err, path)
	}
	return cfg, nil
}

// newEngine creates an engine for the named unit, with the manifest's
// annotations applied on top of the unit's own.
func (s *session) newEngine(name string, reporter engine.Reporter) (*engine.Engine, error) {
	e := engine.New(reporter)
	e.SetLogger(s.log)
	if s.manifest != nil {
		overlay, err := s.manifest.For(name)
		if err != nil {
			return nil, errors.WrapConfig(err, "manifest does not apply")
		}
		e.SetOverlay(overlay)
	}
	return e, nil
}

// resolveUnit validates the unit argument and instantiates the unit.
func resolveUnit(args []string) (string, any, int) {
	if len(args) == 0 {
		return "", nil, usageError("missing unit name")
	}
	if len(args) > 1 {
		return "", nil, usageError("unexpected arguments: " + strings.Join(args[1:], " "))
	}

	name := strings.TrimSpace(args[0])
	unit, err := testengine.NewUnit(name)
	if err != nil {
		err = errors.Fatal(name, err)
		out.ErrorPrefix("%v", err)
		out.Hint("run 'testengine units' to see registered units")
		return "", nil, errors.GetExitCode(err)
	}
	return name, unit, errors.ExitSuccess
}

// cmdRun runs every test of a unit and reports the results.
func cmdRun(args []string, opts *GlobalOptions) int {
	name, unit, code := resolveUnit(args)
	if code != errors.ExitSuccess {
		return code
	}

	s, code := loadSession(opts)
	if s == nil {
		return code
	}
	defer s.closeLog()

	reporter := report.NewConsole(out, report.Options{
		Banner: s.cfg.Output.ShowBanner() && !opts.NoBanner,
		Width:  s.cfg.Output.SeparatorWidth,
	})
	e, err := s.newEngine(name, reporter)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	summary, err := e.Run(name, unit)
	if err != nil {
		err = errors.Fatal(name, err)
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}
	if !summary.OK() {
		return errors.ExitTestFailure
	}
	return errors.ExitSuccess
}

// cmdList prints the tests of a unit without invoking them.
func cmdList(args []string, opts *GlobalOptions) int {
	name, unit, code := resolveUnit(args)
	if code != errors.ExitSuccess {
		return code
	}

	s, code := loadSession(opts)
	if s == nil {
		return code
	}
	defer s.closeLog()

	e, err := s.newEngine(name, nil)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}
	descriptors, err := e.Discover(unit)
	if err != nil {
		err = errors.Fatal(name, err)
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	title := cases.Title(language.English)
	rows := make([][]string, 0, len(descriptors))
	for _, d := range descriptors {
		method := d.Name
		if d.Call == nil {
			method += " (missing)"
		}
		rows = append(rows, []string{
			method,
			title.String(d.Kind.String()),
			strconv.Itoa(d.Arity()),
			formatValues(d.Params),
			formatValues(d.Expected),
		})
	}
	out.Section("Tests of unit " + name)
	out.Table([]string{"Method", "Kind", "Calls", "Params", "Expected"}, rows)
	return errors.ExitSuccess
}

// cmdUnits prints the registered unit names.
func cmdUnits(args []string) int {
	if len(args) > 0 {
		return usageError("units takes no arguments")
	}
	out.List(testengine.Units())
	return errors.ExitSuccess
}

func formatValues(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "\"" + v + "\""
	}
	return strings.Join(quoted, ", ")
}
