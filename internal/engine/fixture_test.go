package engine

import (
	"errors"
	"strconv"

	"github.com/uj-wmii-pwj-2025/MateuszJedrkowiak-zad-08-test-engine/pkg/testengine"
)

// fixture is a unit whose methods record every call they receive.
type fixture struct {
	calls []string
}

type label string

func (f *fixture) record(method, arg string) {
	f.calls = append(f.calls, method+"("+arg+")")
}

func (f *fixture) Plain() { f.record("Plain", "") }

func (f *fixture) PlainWithParam(p string) { f.record("PlainWithParam", p) }

func (f *fixture) PlainReturning(p string) string {
	f.record("PlainReturning", p)
	return "ignored"
}

func (f *fixture) Echo(s string) string {
	f.record("Echo", s)
	return s
}

func (f *fixture) ParseInt(s string) int {
	f.record("ParseInt", s)
	n, _ := strconv.Atoi(s)
	return n
}

func (f *fixture) NilDeref() {
	f.record("NilDeref", "")
	var p *fixture
	_ = p.calls
}

func (f *fixture) FailOn(s string) error {
	f.record("FailOn", s)
	if s == "bad" {
		return errors.New("bad input")
	}
	return nil
}

func (f *fixture) Checked(s string) (string, error) {
	f.record("Checked", s)
	if s == "" {
		return "", errors.New("empty")
	}
	return s + "!", nil
}

func (f *fixture) Labeled(l label) label {
	f.record("Labeled", string(l))
	return l
}

func (f *fixture) TwoArgs(a, b string) { f.record("TwoArgs", a+","+b) }

func (f *fixture) IntArg(n int) { f.record("IntArg", strconv.Itoa(n)) }

func (f *fixture) Nothing() {}

func (f *fixture) NotATest() { f.record("NotATest", "") }

// selfAnnotated declares its own metadata.
type selfAnnotated struct {
	fixture
}

func (s *selfAnnotated) TestAnnotations() *testengine.Annotations {
	return testengine.NewAnnotations().
		Set("Plain", testengine.Test()).
		Set("Echo", testengine.TestString([]string{"a"}, []string{"a"}))
}

// brokenMetadata fails while describing itself.
type brokenMetadata struct{}

func (brokenMetadata) Plain() {}

func (brokenMetadata) TestAnnotations() *testengine.Annotations {
	panic("boom")
}
