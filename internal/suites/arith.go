package suites

import (
	"errors"
	"strconv"

	"github.com/uj-wmii-pwj-2025/MateuszJedrkowiak-zad-08-test-engine/pkg/testengine"
)

var errDivideByZero = errors.New("division by zero")

// Arith is a small unit of integer helpers whose tests all pass.
type Arith struct{}

// TestAnnotations implements testengine.Annotated.
func (Arith) TestAnnotations() *testengine.Annotations {
	return testengine.NewAnnotations().
		Set("Square", testengine.TestString([]string{"2", "-3", "0"}, []string{"4", "9", "0"})).
		Set("Halve", testengine.TestString([]string{"10", "7"}, []string{"5", "3"})).
		Set("HundredOver", testengine.TestString([]string{"4", "5"}, []string{"25", "20"})).
		Set("Parses", testengine.Test("1", "-1", "42"))
}

func (Arith) Square(n string) (int, error) {
	v, err := strconv.Atoi(n)
	if err != nil {
		return 0, err
	}
	return v * v, nil
}

func (Arith) Halve(n string) (int, error) {
	v, err := strconv.Atoi(n)
	if err != nil {
		return 0, err
	}
	return v / 2, nil
}

func (Arith) HundredOver(n string) (int, error) {
	v, err := strconv.Atoi(n)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, errDivideByZero
	}
	return 100 / v, nil
}

func (Arith) Parses(n string) error {
	_, err := strconv.Atoi(n)
	return err
}
