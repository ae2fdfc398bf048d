package report

import "github.com/uj-wmii-pwj-2025/MateuszJedrkowiak-zad-08-test-engine/pkg/testengine"

type counting struct{ n int }

func (c *counting) Count() { c.n++ }

func (c *counting) TestAnnotations() *testengine.Annotations {
	return testengine.NewAnnotations().Set("Count", testengine.Test())
}
