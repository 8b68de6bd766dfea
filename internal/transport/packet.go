package transport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Engine.IO v4 packet types, the first byte of every text frame.
const (
	engineOpen    byte = '0'
	engineClose   byte = '1'
	enginePing    byte = '2'
	enginePong    byte = '3'
	engineMessage byte = '4'
	engineUpgrade byte = '5'
	engineNoop    byte = '6'
)

// Socket.IO v5 packet types, the byte after an Engine.IO message marker.
const (
	socketConnect      byte = '0'
	socketDisconnect   byte = '1'
	socketEvent        byte = '2'
	socketAck          byte = '3'
	socketConnectError byte = '4'
	socketBinaryEvent  byte = '5'
	socketBinaryAck    byte = '6'
)

// Default heartbeat values used when the open packet omits them.
const (
	defaultPingInterval = 25 * time.Second
	defaultPingTimeout  = 20 * time.Second
)

// openPacket is the payload of the Engine.IO open packet.
type openPacket struct {
	SID          string   `json:"sid"`
	Upgrades     []string `json:"upgrades"`
	PingInterval int      `json:"pingInterval"`
	PingTimeout  int      `json:"pingTimeout"`
	MaxPayload   int      `json:"maxPayload"`
}

// readTimeout is how long the server may stay silent before the connection
// is considered dead.
func (p openPacket) readTimeout() time.Duration {
	interval := time.Duration(p.PingInterval) * time.Millisecond
	if interval <= 0 {
		interval = defaultPingInterval
	}
	timeout := time.Duration(p.PingTimeout) * time.Millisecond
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	return interval + timeout
}

// connectPacket is the payload of a Socket.IO CONNECT acknowledgement.
type connectPacket struct {
	SID string `json:"sid"`
}

// connectErrorPacket is the payload of a Socket.IO CONNECT_ERROR.
type connectErrorPacket struct {
	Message string `json:"message"`
}

type frame struct {
	engine    byte
	socket    byte
	namespace string
	ackID     string
	data      []byte
}

// decodeFrame splits a text frame into its Engine.IO and Socket.IO parts.
// Frames from namespaces other than "/" are returned as-is for the caller
// to ignore.
func decodeFrame(raw []byte) (frame, error) {
	if len(raw) == 0 {
		return frame{}, newProtocolError(raw, ErrEmptyFrame)
	}

	f := frame{engine: raw[0]}
	switch f.engine {
	case engineOpen, engineClose, enginePing, enginePong, engineUpgrade, engineNoop:
		f.data = raw[1:]
		return f, nil
	case engineMessage:
	default:
		return frame{}, newProtocolError(raw, fmt.Errorf("%w: engine %q", ErrUnknownPacketType, f.engine))
	}

	rest := raw[1:]
	if len(rest) == 0 {
		return frame{}, newProtocolError(raw, ErrEmptyFrame)
	}

	f.socket = rest[0]
	switch f.socket {
	case socketConnect, socketDisconnect, socketEvent, socketAck, socketConnectError, socketBinaryEvent, socketBinaryAck:
	default:
		return frame{}, newProtocolError(raw, fmt.Errorf("%w: socket %q", ErrUnknownPacketType, f.socket))
	}
	rest = rest[1:]

	// binary packets carry "<attachments>-" before the namespace
	if f.socket == socketBinaryEvent || f.socket == socketBinaryAck {
		if i := bytes.IndexByte(rest, '-'); i >= 0 {
			rest = rest[i+1:]
		}
	}

	f.namespace = "/"
	if len(rest) > 0 && rest[0] == '/' {
		if i := bytes.IndexByte(rest, ','); i >= 0 {
			f.namespace = string(rest[:i])
			rest = rest[i+1:]
		} else {
			f.namespace = string(rest)
			rest = nil
		}
	}

	i := 0
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		i++
	}
	f.ackID = string(rest[:i])
	f.data = rest[i:]

	return f, nil
}

// decodeEvent parses the data of a Socket.IO EVENT, a JSON array whose first
// element is the event name. A missing payload decodes as JSON null.
func decodeEvent(raw, data []byte) (string, json.RawMessage, error) {
	var args []json.RawMessage
	if err := json.Unmarshal(data, &args); err != nil {
		return "", nil, newProtocolError(raw, fmt.Errorf("%w: %w", ErrMalformedEvent, err))
	}
	if len(args) == 0 {
		return "", nil, newProtocolError(raw, fmt.Errorf("%w: no event name", ErrMalformedEvent))
	}

	var name string
	if err := json.Unmarshal(args[0], &name); err != nil || strings.TrimSpace(name) == "" {
		return "", nil, newProtocolError(raw, fmt.Errorf("%w: event name is not a string", ErrMalformedEvent))
	}

	if len(args) < 2 {
		return name, json.RawMessage("null"), nil
	}
	return name, args[1], nil
}

func encodeConnect() []byte {
	return []byte{engineMessage, socketConnect}
}

func encodeDisconnect() []byte {
	return []byte{engineMessage, socketDisconnect}
}

func encodePong() []byte {
	return []byte{enginePong}
}

func jsonUnmarshal(raw, data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return newProtocolError(raw, err)
	}
	return nil
}
