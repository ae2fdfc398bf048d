package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"

	"github.com/uj-wmii-pwj-2025/MateuszJedrkowiak-zad-08-test-engine/internal/output"
	_ "github.com/uj-wmii-pwj-2025/MateuszJedrkowiak-zad-08-test-engine/internal/suites"
)

// TestGolden runs the CLI against each archive in testdata. The archive
// comment holds "args:" and "exit:" lines. A "stdout" or "stderr" file is
// compared exactly when present; every other file is written into a fresh
// working directory before the run.
func TestGolden(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Skip("no txtar files found")
	}

	for _, file := range files {
		t.Run(strings.TrimSuffix(filepath.Base(file), ".txtar"), func(t *testing.T) {
			runGolden(t, file)
		})
	}
}

func runGolden(t *testing.T, file string) {
	archive, err := txtar.ParseFile(file)
	if err != nil {
		t.Fatalf("failed to parse %s: %v", file, err)
	}

	args, wantExit := parseGoldenComment(t, string(archive.Comment))

	dir := t.TempDir()
	var wantStdout, wantStderr *string
	for _, f := range archive.Files {
		data := string(f.Data)
		switch f.Name {
		case "stdout":
			wantStdout = &data
		case "stderr":
			wantStderr = &data
		default:
			if err := os.WriteFile(filepath.Join(dir, f.Name), f.Data, 0o644); err != nil {
				t.Fatal(err)
			}
		}
	}

	t.Chdir(dir)
	t.Setenv("TESTENGINE_CONFIG", "")
	stdout, stderr := captureOutput(t)

	if got := Run(args); got != wantExit {
		t.Errorf("Run(%q) = %d, want %d\nstdout:\n%s\nstderr:\n%s", args, got, wantExit, stdout, stderr)
	}
	if wantStdout != nil {
		if diff := cmp.Diff(*wantStdout, stdout.String()); diff != "" {
			t.Errorf("stdout mismatch (-want +got):\n%s", diff)
		}
	}
	if wantStderr != nil {
		if diff := cmp.Diff(*wantStderr, stderr.String()); diff != "" {
			t.Errorf("stderr mismatch (-want +got):\n%s", diff)
		}
	}
}

func parseGoldenComment(t *testing.T, comment string) ([]string, int) {
	t.Helper()
	var args []string
	exit := 0
	for _, line := range strings.Split(comment, "\n") {
		switch {
		case strings.HasPrefix(line, "args:"):
			args = strings.Fields(strings.TrimPrefix(line, "args:"))
		case strings.HasPrefix(line, "exit:"):
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "exit:")))
			if err != nil {
				t.Fatalf("bad exit line %q: %v", line, err)
			}
			exit = n
		}
	}
	return args, exit
}

// captureOutput redirects the package writer into buffers for the duration
// of the test.
func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	prev := out
	out = output.NewWithWriters(stdout, stderr, false)
	t.Cleanup(func() { out = prev })
	return stdout, stderr
}
