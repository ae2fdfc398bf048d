package suites

import (
	"fmt"
	"io"
	"strconv"

	"github.com/uj-wmii-pwj-2025/MateuszJedrkowiak-zad-08-test-engine/pkg/testengine"
)

// Beautiful is the demonstration unit. Its tests cover every outcome the
// engine knows: passing plain and value-checked tests, a panicking test, a
// wrong answer, and a test missing its expected values.
type Beautiful struct {
	out io.Writer
}

// NewBeautiful creates the unit. Tests that print write to out.
func NewBeautiful(out io.Writer) *Beautiful {
	return &Beautiful{out: writer(out)}
}

// TestAnnotations implements testengine.Annotated.
func (b *Beautiful) TestAnnotations() *testengine.Annotations {
	return testengine.NewAnnotations().
		Set("TestSomething", testengine.Test()).
		Set("TestWithParam", testengine.Test("a param", "b param", "c param. Long, long C param.")).
		Set("ImFailure", testengine.Test()).
		Set("SuccessStringTest", testengine.TestString([]string{"John"}, []string{"John"})).
		Set("MisspelledNamesStringTest", testengine.TestString([]string{"Jhon", "Jnae"}, []string{"John", "Jane"})).
		Set("NoExpectedOutputStringTest", testengine.TestString([]string{"cat"}, nil)).
		Set("ReturnIntTest", testengine.TestString([]string{"3", "2"}, []string{"3", "2"}))
}

func (b *Beautiful) TestSomething() {
	fmt.Fprintln(b.out, "I'm testing something!")
}

func (b *Beautiful) TestWithParam(param string) {
	fmt.Fprintf(b.out, "I was invoked with parameter: %s\n", param)
}

// NotATest is never run: it carries no annotation.
func (b *Beautiful) NotATest() {
	fmt.Fprintln(b.out, "I'm not a test.")
}

func (b *Beautiful) ImFailure() {
	fmt.Fprintln(b.out, "I AM EVIL.")
	var p *int
	_ = *p
}

func (b *Beautiful) SuccessStringTest(param string) string {
	return param
}

func (b *Beautiful) MisspelledNamesStringTest(param string) string {
	return param
}

func (b *Beautiful) NoExpectedOutputStringTest(param string) string {
	return param
}

func (b *Beautiful) ReturnIntTest(param string) (int, error) {
	return strconv.Atoi(param)
}
