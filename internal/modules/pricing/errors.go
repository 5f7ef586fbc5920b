package pricing

import "errors"

var (
	// ErrNoQuote means the inputs cannot produce a price (non-positive
	// duration, unknown service type, missing rate card). The caller shows
	// no price summary and keeps submission disabled; it is not a failure.
	ErrNoQuote = errors.New("no quote for given inputs")

	ErrValidation = errors.New("validation error")
)
