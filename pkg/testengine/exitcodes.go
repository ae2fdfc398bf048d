package testengine

// Exit codes returned by the testengine CLI.
// These constants allow scripts and CI jobs to check the outcome of a run
// symbolically rather than using magic numbers.
const (
	// ExitSuccess indicates every discovered test succeeded (or none were found).
	ExitSuccess = 0

	// ExitFailure indicates at least one test ended with FAIL or ERROR.
	ExitFailure = 1

	// ExitUsageError indicates a usage or configuration error (missing unit
	// argument, invalid config or manifest, etc.).
	ExitUsageError = 2

	// ExitFatalError indicates the unit under test could not be created.
	ExitFatalError = 3
)
