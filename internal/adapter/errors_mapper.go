package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody bounds the response body kept in a RequestError.
const maxErrorBody = 512

// mapHTTPError returns nil when resp carries the expected status, otherwise
// a *RequestError whose Err is the sentinel matching the status.
func mapHTTPError(op, target string, resp *resty.Response, expected int) error {
	if resp.StatusCode() == expected {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}

	var sentinel error
	switch resp.StatusCode() {
	case http.StatusBadRequest:
		sentinel = ErrBadRequest
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusInternalServerError:
		sentinel = ErrInternalServerError
	case http.StatusBadGateway:
		sentinel = ErrBadGateway
	case http.StatusServiceUnavailable:
		sentinel = ErrServiceUnavailable
	default:
		sentinel = ErrUnexpectedStatus
	}

	return &RequestError{Op: op, Target: target, StatusCode: resp.StatusCode(), Body: body, Err: sentinel}
}

// mapTransportError classifies a failure that produced no HTTP response.
func mapTransportError(op, target string, err error) error {
	sentinel := ErrNetwork
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		sentinel = ErrTimeout
	}

	return &RequestError{Op: op, Target: target, Err: fmt.Errorf("%w: %w", sentinel, err)}
}
