// Package report renders engine progress for humans.
package report

import (
	"strconv"
	"strings"

	"github.com/uj-wmii-pwj-2025/MateuszJedrkowiak-zad-08-test-engine/internal/engine"
	"github.com/uj-wmii-pwj-2025/MateuszJedrkowiak-zad-08-test-engine/internal/output"
)

// DefaultWidth is the separator width used when Options.Width is not positive.
const DefaultWidth = 80

const banner = ` ___  ____ ____ ___
  |   |___ [__   |
  |   |___ ___]  |

 ____ _  _ ____ _ _  _ ____
 |___ |\ | | __ | |\ | |___
 |___ | \| |__] | | \| |___
`

// Options controls the console layout.
type Options struct {
	Banner bool
	Width  int
}

// Console is an engine.Reporter writing framed, line-oriented output.
type Console struct {
	w    *output.Writer
	opts Options
}

var _ engine.Reporter = (*Console)(nil)

// NewConsole creates a console reporter writing through w.
func NewConsole(w *output.Writer, opts Options) *Console {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	return &Console{w: w, opts: opts}
}

// Start prints the banner and the unit header.
func (c *Console) Start(unit string, descriptors []engine.Descriptor) {
	if c.opts.Banner && !c.w.Quiet() {
		c.w.Print("%s\n", banner)
	}
	c.w.Separator(c.opts.Width)
	c.w.Heading("Testing unit: %s", unit)
	c.w.Heading("Total number of tests: %d tests", len(descriptors))
	c.w.Separator(c.opts.Width)
}

// Report prints one framed line per result. Passing tests are omitted in
// quiet mode.
func (c *Console) Report(res engine.Result) {
	if res.Outcome == engine.Success && c.w.Quiet() {
		return
	}
	c.w.Separator(c.opts.Width)
	switch res.Outcome {
	case engine.Success:
		c.w.Success("Tested method: %s test successful.\tPASSED", res.Name)
	case engine.Fail:
		c.w.Failure("Tested method: %s test failed - %s\tFAILED", res.Name, res.Message())
	default:
		c.w.Alert("Tested method: %s test failed with an error - %s\tERROR", res.Name, res.Message())
	}
	c.w.Separator(c.opts.Width)
}

// Finish prints the summary block. It is printed in quiet mode too.
func (c *Console) Finish(s engine.Summary) {
	c.w.SummaryHeader("Summary")
	c.w.SummaryItem("Launched", strconv.Itoa(s.Total))
	c.w.SummaryPassed("Passed", strconv.Itoa(s.Succeeded))
	c.w.SummaryFailed("Failed", strconv.Itoa(s.Failed))
	c.w.SummaryFailed("Errors", strconv.Itoa(s.Errored))

	line := "Engine launched " + plural(s.Total, "test") + ". " +
		strconv.Itoa(s.Succeeded) + " of them passed, " +
		strconv.Itoa(s.Failed) + " failed, " +
		strconv.Itoa(s.Errored) + " ended with an error"
	if s.OK() {
		c.w.FinalSuccess("%s", line)
	} else {
		c.w.FinalFailure("%s", line)
	}
}

func plural(n int, noun string) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(n))
	b.WriteByte(' ')
	b.WriteString(noun)
	if n != 1 {
		b.WriteByte('s')
	}
	return b.String()
}
