// Package main is the entry point for the testengine CLI.
package main

import (
	"os"

	"github.com/uj-wmii-pwj-2025/MateuszJedrkowiak-zad-08-test-engine/internal/cli"
	_ "github.com/uj-wmii-pwj-2025/MateuszJedrkowiak-zad-08-test-engine/internal/suites"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
