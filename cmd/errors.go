package cmd

import "fmt"

// inputNotFoundError reports an input path that does not exist.
type inputNotFoundError struct {
	path string
	err  error
}

func (e *inputNotFoundError) Error() string {
	return fmt.Sprintf("Input file '%s' not found", e.path)
}

func (e *inputNotFoundError) Unwrap() error {
	return e.err
}

// errorLine formats err as the single line printed to stderr.
func errorLine(err error) string {
	return "Error: " + err.Error()
}
