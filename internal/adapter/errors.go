package adapter

import "errors"

// Sentinel errors corresponding to the HTTP status codes the server emits.
// mapHTTPError wraps the response body into these so callers can branch with
// [errors.Is] without knowing the transport.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrLocked              = errors.New("locked")
	ErrInternalServerError = errors.New("internal server error")
)
