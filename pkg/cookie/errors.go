package cookie

import "errors"

// Parsing errors. Malformed input is an expected condition: both Parse and
// FromJSON report it through these sentinels, never through a panic.
var (
	// ErrEmptyInput is returned when there is nothing to parse.
	ErrEmptyInput = errors.New("cookie: empty input")

	// ErrMalformedPair is returned when the cookie-pair violates RFC 6265:
	// a missing or empty name in strict mode, or control characters in the
	// name or value.
	ErrMalformedPair = errors.New("cookie: malformed cookie pair")

	// ErrMalformedJSON is returned by FromJSON when the input is not
	// structurally valid JSON.
	ErrMalformedJSON = errors.New("cookie: malformed JSON")
)
