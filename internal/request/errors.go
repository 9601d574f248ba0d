package request

import "errors"

// Kinds of invalid queries. Errors returned by this package are *Error
// values wrapping one of these.
var (
	ErrMalformed     = errors.New("malformed query")
	ErrMissingParam  = errors.New("missing shape parameter")
	ErrInvalidParam  = errors.New("invalid shape parameter")
	ErrPenRange      = errors.New("pen parameter out of range")
	ErrInfeasibleFit = errors.New("wheel does not fit inside guide")
)

// Error describes why a query was rejected. Message is meant for the client
// that sent the query.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}
