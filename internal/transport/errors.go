package transport

import (
	"errors"
	"fmt"
)

// Transport failures. Only the reconnection controller acts on them.
var (
	ErrUnreachable       = errors.New("server unreachable")
	ErrRejected          = errors.New("server rejected session")
	ErrUnexpectedClose   = errors.New("session closed unexpectedly")
	ErrConnectInProgress = errors.New("connection attempt already in flight")
	ErrAlreadyConnected  = errors.New("session already connected")
	ErrConnectAborted    = errors.New("connection attempt aborted")
)

// Frame decoding failures, always wrapped in a *ProtocolError.
var (
	ErrEmptyFrame        = errors.New("empty frame")
	ErrUnknownPacketType = errors.New("unknown packet type")
	ErrMalformedEvent    = errors.New("malformed event")
)

// ProtocolError reports an inbound frame that could not be decoded. It is
// logged and the frame dropped; the session stays up.
type ProtocolError struct {
	Frame string
	Err   error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol error: %v (frame %q)", e.Err, e.Frame)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

func newProtocolError(raw []byte, err error) *ProtocolError {
	const maxFrame = 128
	frame := string(raw)
	if len(frame) > maxFrame {
		frame = frame[:maxFrame] + "..."
	}
	return &ProtocolError{Frame: frame, Err: err}
}
