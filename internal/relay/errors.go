package relay

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mandalnilabja/cliprelay/internal/config"
	"github.com/mandalnilabja/cliprelay/internal/types"
)

// Sentinel errors, matched with errors.Is.
var (
	ErrUnknownProvider   = errors.New("unknown provider")
	ErrMissingCredential = errors.New("provider credential not configured")
	ErrUpstream          = errors.New("upstream request failed")
	ErrInvalidUpstream   = errors.New("upstream returned no JSON body")
)

// Error is a relay failure carrying the HTTP status and the client-facing
// message written as {"error": Message}.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func unknownProvider(id string) *Error {
	return &Error{
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf(types.MsgUnknownProvider, id),
		Err:     ErrUnknownProvider,
	}
}

func missingCredential(id string) *Error {
	return &Error{
		Status:  http.StatusInternalServerError,
		Message: fmt.Sprintf(types.MsgMissingCredential, config.CredentialName(id)),
		Err:     ErrMissingCredential,
	}
}

func upstreamFailure(id string, cause error) *Error {
	return &Error{
		Status:  http.StatusBadGateway,
		Message: fmt.Sprintf(types.MsgUpstreamFailure, id, cause),
		Err:     fmt.Errorf("%w: %w", ErrUpstream, cause),
	}
}

func invalidUpstream(id string) *Error {
	return &Error{
		Status:  http.StatusBadGateway,
		Message: fmt.Sprintf(types.MsgInvalidUpstream, id),
		Err:     ErrInvalidUpstream,
	}
}

// StatusOf returns the HTTP status for err: the status of a wrapped *Error,
// or 500 for anything else.
func StatusOf(err error) int {
	var rerr *Error
	if errors.As(err, &rerr) {
		return rerr.Status
	}
	return http.StatusInternalServerError
}
