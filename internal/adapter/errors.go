package adapter

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTimeout             = errors.New("request timed out")
	ErrNetwork             = errors.New("network failure")
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")
	ErrMalformedResponse   = errors.New("malformed response body")
	ErrInvalidReference    = errors.New("invalid artifact reference")
)

// RequestError describes a failed request/response exchange. StatusCode is
// zero when no response was received.
type RequestError struct {
	Op         string
	Target     string
	StatusCode int
	Body       string
	Err        error
}

func (e *RequestError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s", e.Op, e.Target)
	if e.StatusCode != 0 {
		fmt.Fprintf(&sb, ": status %d", e.StatusCode)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	if e.Body != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Body)
	}
	return sb.String()
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// StatusCodeOf returns the HTTP status carried by a [*RequestError] in err's
// chain, or 0.
func StatusCodeOf(err error) int {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode
	}
	return 0
}
