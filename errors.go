package morse

import "errors"

var (
	// ErrInvalidCode indicates a code string containing characters other than '.' and '-'.
	ErrInvalidCode = errors.New("morse: code may only consist of '.' and '-'")
	// ErrConfiguration indicates a scheme or encoder configured with missing or illegal values.
	ErrConfiguration = errors.New("morse: invalid configuration")
	// ErrInvalidVariant indicates a request for a built-in scheme which does not exist.
	ErrInvalidVariant = errors.New("morse: unknown variant")
)
