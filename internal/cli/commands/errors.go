package commands

import "fmt"

// ArgumentError reports an invalid invocation: an unknown flag, a bad flag
// value or an invalid configuration. No classification is performed.
type ArgumentError struct {
	Err error
}

func (e *ArgumentError) Error() string { return e.Err.Error() }

func (e *ArgumentError) Unwrap() error { return e.Err }

// ExitError carries a non-zero run status out of a command. Everything worth
// saying has already been reported by the time it is returned.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
