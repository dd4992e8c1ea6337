package response

import (
	"errors"
	"fmt"
)

// ErrParse indicates that a response does not match the expected grammar.
var ErrParse = errors.New("failed to parse response")

// ParseError records a response that could not be parsed.
type ParseError struct {
	// Input is the offending response string.
	Input string
	// Pattern describes the expected grammar.
	Pattern string
	// Err is the underlying cause, ErrParse if there is none.
	Err error
}

func newParseError(input string, pattern string, err error) *ParseError {
	if err == nil {
		err = ErrParse
	}

	return &ParseError{Input: input, Pattern: pattern, Err: err}
}

func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrParse) {
		return fmt.Sprintf("%q didn't match %q pattern", e.Input, e.Pattern)
	}

	return fmt.Sprintf("%q didn't match %q pattern: %s", e.Input, e.Pattern, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports ErrParse for any ParseError, so callers can test with errors.Is(err, ErrParse).
func (e *ParseError) Is(target error) bool {
	return target == ErrParse //nolint:errorlint
}
