// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package transport maintains the persistent push channel to the server: a
// Socket.IO v4 session carried over an Engine.IO v4 WebSocket.
//
// A [Session] owns at most one live connection. Each connection has its own
// receive goroutine which answers heartbeats and hands every event to the
// push router without blocking. Connection lifecycle changes are published on
// [Session.Events] for the reconnection controller.
package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/platanus-hack/platanus-hack-25-team-35/internal/config"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/logger"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/push"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/utils"
	"github.com/platanus-hack/platanus-hack-25-team-35/models"
)

const (
	writeTimeout      = 5 * time.Second
	lifecycleBuffer   = 64
	socketIOPath      = "/socket.io/"
	engineIOVersion   = "4"
	disconnectTimeout = 2 * time.Second
)

// EventRouter receives the events of the push channel.
type EventRouter interface {
	Register(name string, h push.Handler)
	Dispatch(ev models.PushEvent)
}

// Signal is a lifecycle notification kind.
type Signal int

const (
	SignalConnected Signal = iota
	SignalDisconnected
	SignalConnectFailed
)

func (s Signal) String() string {
	switch s {
	case SignalConnected:
		return "connected"
	case SignalDisconnected:
		return "disconnected"
	case SignalConnectFailed:
		return "connect_failed"
	default:
		return "unknown"
	}
}

// LifecycleEvent is published on every connection state change.
// Generation identifies the connection attempt it belongs to.
type LifecycleEvent struct {
	Signal     Signal
	Generation uint64
	SessionID  string
	// Clean is true when the disconnect was requested by Disconnect.
	Clean bool
	Err   error
}

// Session is the push channel client.
type Session struct {
	wsURL  string
	dialer *websocket.Dialer
	router EventRouter
	logger *logger.Logger

	connectTimeout time.Duration

	mu            sync.Mutex
	state         models.SessionState
	sessionID     string
	conn          *websocket.Conn
	generation    uint64
	closing       bool
	readDone      chan struct{}
	cancelConnect context.CancelFunc

	writeMu sync.Mutex
	events  chan LifecycleEvent
}

// NewSession builds a disconnected session for the endpoint in cfg. Inbound
// events are dispatched to router.
func NewSession(cfg config.DeviceTransport, router EventRouter, log *logger.Logger) (*Session, error) {
	wsURL, err := socketURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid transport base url: %w", err)
	}

	return &Session{
		wsURL:          wsURL,
		dialer:         &websocket.Dialer{HandshakeTimeout: cfg.ConnectTimeout, Proxy: http.ProxyFromEnvironment},
		router:         router,
		logger:         log.WithComponent("transport"),
		connectTimeout: cfg.ConnectTimeout,
		state:          models.SessionDisconnected,
		events:         make(chan LifecycleEvent, lifecycleBuffer),
	}, nil
}

// socketURL derives ws(s)://host/socket.io/?EIO=4&transport=websocket from an
// http(s) base URL.
func socketURL(base string) (string, error) {
	raw, err := utils.NormalizeBaseURL(base)
	if err != nil {
		return "", err
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	switch u.Scheme {
	case "http", "ws":
		u.Scheme = "ws"
	case "https", "wss":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	u.Path = strings.TrimRight(u.Path, "/") + socketIOPath
	q := url.Values{}
	q.Set("EIO", engineIOVersion)
	q.Set("transport", "websocket")
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// URL returns the WebSocket URL the session dials.
func (s *Session) URL() string {
	return s.wsURL
}

// Events returns the lifecycle notification stream.
func (s *Session) Events() <-chan LifecycleEvent {
	return s.events
}

// On registers the handler for name; the last registration wins.
func (s *Session) On(name string, h push.Handler) {
	s.router.Register(name, h)
}

// State returns the current session state.
func (s *Session) State() models.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// IsConnected reports whether a session is established.
func (s *Session) IsConnected() bool {
	return s.State() == models.SessionConnected
}

// SessionID returns the server-assigned id, or "" when not connected.
func (s *Session) SessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionID
}

// Connect dials the server and performs the session handshake, bounded by
// the configured connect timeout. It returns the session id on success.
//
// Errors wrap [ErrUnreachable] when the server cannot be reached in time and
// [ErrRejected] when it refuses the session.
func (s *Session) Connect(ctx context.Context) (string, error) {
	s.mu.Lock()
	switch s.state {
	case models.SessionConnecting:
		s.mu.Unlock()
		return "", ErrConnectInProgress
	case models.SessionConnected, models.SessionShuttingDown:
		s.mu.Unlock()
		return "", ErrAlreadyConnected
	}
	s.generation++
	gen := s.generation
	s.state = models.SessionConnecting
	attemptCtx, cancel := context.WithTimeout(ctx, s.connectTimeout)
	s.cancelConnect = cancel
	s.mu.Unlock()
	defer cancel()

	log := s.logger.With().Uint64("generation", gen).Logger()
	log.Debug().Str("url", s.wsURL).Msg("connecting")

	conn, open, sid, err := s.dial(attemptCtx)
	if err != nil {
		err = s.classifyConnectError(ctx, attemptCtx, err)
		s.mu.Lock()
		s.state = models.SessionDisconnected
		s.cancelConnect = nil
		s.mu.Unlock()

		log.Warn().Err(err).Msg("connect failed")
		s.emit(LifecycleEvent{Signal: SignalConnectFailed, Generation: gen, Err: err})
		return "", err
	}

	done := make(chan struct{})
	s.mu.Lock()
	s.state = models.SessionConnected
	s.sessionID = sid
	s.conn = conn
	s.closing = false
	s.readDone = done
	s.cancelConnect = nil
	s.mu.Unlock()

	log.Info().Str("sid", sid).Msg("session established")
	s.emit(LifecycleEvent{Signal: SignalConnected, Generation: gen, SessionID: sid})

	go s.readLoop(conn, gen, open.readTimeout(), done)

	return sid, nil
}

type handshakeError struct {
	rejected bool
	err      error
}

func (e *handshakeError) Error() string { return e.err.Error() }
func (e *handshakeError) Unwrap() error { return e.err }

func (s *Session) dial(ctx context.Context) (*websocket.Conn, openPacket, string, error) {
	conn, resp, err := s.dialer.DialContext(ctx, s.wsURL, nil)
	if err != nil {
		if resp != nil {
			return nil, openPacket{}, "", &handshakeError{rejected: true, err: fmt.Errorf("http status %d: %w", resp.StatusCode, err)}
		}
		return nil, openPacket{}, "", err
	}

	// ReadMessage ignores ctx, so closing the conn is what unblocks it.
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })

	open, sid, err := s.handshake(ctx, conn)
	if !stop() {
		_ = conn.Close()
		if err == nil {
			err = ctx.Err()
		}
		return nil, openPacket{}, "", err
	}
	if err != nil {
		_ = conn.Close()
		return nil, openPacket{}, "", err
	}

	return conn, open, sid, nil
}

// handshake reads the Engine.IO open packet, joins the default namespace and
// waits for its acknowledgement.
func (s *Session) handshake(ctx context.Context, conn *websocket.Conn) (openPacket, string, error) {
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetReadDeadline(deadline)
		_ = conn.SetWriteDeadline(deadline)
	}

	var open openPacket
	opened := false

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return openPacket{}, "", err
		}

		f, err := decodeFrame(raw)
		if err != nil {
			return openPacket{}, "", err
		}

		switch {
		case f.engine == engineOpen && !opened:
			if err = jsonUnmarshal(raw, f.data, &open); err != nil {
				return openPacket{}, "", err
			}
			opened = true
			if err = conn.WriteMessage(websocket.TextMessage, encodeConnect()); err != nil {
				return openPacket{}, "", err
			}
		case f.engine == enginePing:
			if err = conn.WriteMessage(websocket.TextMessage, encodePong()); err != nil {
				return openPacket{}, "", err
			}
		case f.engine == engineClose:
			return openPacket{}, "", &handshakeError{rejected: true, err: errors.New("server closed during handshake")}
		case f.engine == engineMessage && f.namespace == "/" && f.socket == socketConnect:
			var ack connectPacket
			if err = jsonUnmarshal(raw, f.data, &ack); err != nil {
				return openPacket{}, "", err
			}
			_ = conn.SetReadDeadline(time.Time{})
			_ = conn.SetWriteDeadline(time.Time{})
			return open, ack.SID, nil
		case f.engine == engineMessage && f.namespace == "/" && f.socket == socketConnectError:
			var cerr connectErrorPacket
			_ = jsonUnmarshal(raw, f.data, &cerr)
			return openPacket{}, "", &handshakeError{rejected: true, err: fmt.Errorf("connect error: %s", cerr.Message)}
		default:
			s.logger.Debug().Str("frame", string(raw)).Msg("ignoring frame during handshake")
		}
	}
}

func (s *Session) classifyConnectError(parent, attempt context.Context, err error) error {
	var hsErr *handshakeError
	switch {
	case errors.As(err, &hsErr) && hsErr.rejected:
		return fmt.Errorf("%w: %w", ErrRejected, err)
	case parent.Err() != nil || (attempt.Err() != nil && !errors.Is(attempt.Err(), context.DeadlineExceeded)):
		return fmt.Errorf("%w: %w", ErrConnectAborted, err)
	default:
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
}

// readLoop owns conn's read side until the connection ends.
func (s *Session) readLoop(conn *websocket.Conn, gen uint64, readTimeout time.Duration, done chan struct{}) {
	defer close(done)

	log := s.logger.With().Uint64("generation", gen).Logger()

	for {
		_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
		msgType, raw, err := conn.ReadMessage()
		if err != nil {
			s.terminate(conn, gen, err)
			return
		}
		if msgType != websocket.TextMessage {
			log.Warn().Int("type", msgType).Msg("binary frame dropped")
			continue
		}

		f, err := decodeFrame(raw)
		if err != nil {
			log.Warn().Err(err).Msg("undecodable frame dropped")
			continue
		}

		switch f.engine {
		case enginePing:
			if err = s.write(conn, encodePong()); err != nil {
				s.terminate(conn, gen, err)
				return
			}
		case engineClose:
			s.terminate(conn, gen, errors.New("server closed transport"))
			return
		case engineNoop, enginePong:
		case engineMessage:
			if f.namespace != "/" {
				log.Debug().Str("namespace", f.namespace).Msg("frame for foreign namespace dropped")
				continue
			}
			switch f.socket {
			case socketEvent:
				name, payload, err := decodeEvent(raw, f.data)
				if err != nil {
					log.Warn().Err(err).Msg("malformed event dropped")
					continue
				}
				s.router.Dispatch(models.PushEvent{Name: name, Payload: payload, ReceivedAt: time.Now()})
			case socketDisconnect:
				s.terminate(conn, gen, errors.New("server disconnected session"))
				return
			default:
				log.Debug().Str("frame", string(raw)).Msg("unsupported packet dropped")
			}
		default:
			log.Debug().Str("frame", string(raw)).Msg("unsupported packet dropped")
		}
	}
}

func (s *Session) write(conn *websocket.Conn, data []byte) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteMessage(websocket.TextMessage, data)
}

// terminate tears down conn once and publishes the Disconnected signal.
func (s *Session) terminate(conn *websocket.Conn, gen uint64, cause error) {
	s.mu.Lock()
	if s.conn != conn {
		s.mu.Unlock()
		return
	}
	clean := s.closing
	sid := s.sessionID
	s.conn = nil
	s.sessionID = ""
	s.closing = false
	s.state = models.SessionDisconnected
	s.mu.Unlock()

	_ = conn.Close()

	ev := LifecycleEvent{Signal: SignalDisconnected, Generation: gen, SessionID: sid, Clean: clean}
	log := s.logger.With().Uint64("generation", gen).Logger()
	if clean {
		log.Info().Msg("session closed")
	} else {
		ev.Err = fmt.Errorf("%w: %w", ErrUnexpectedClose, cause)
		log.Warn().Err(ev.Err).Msg("session lost")
	}
	s.emit(ev)
}

// Disconnect closes the session cleanly. An attempt in flight is aborted.
// Calling it again, or while disconnected, is a no-op.
func (s *Session) Disconnect() {
	s.mu.Lock()
	switch s.state {
	case models.SessionConnecting:
		if s.cancelConnect != nil {
			s.cancelConnect()
		}
		s.mu.Unlock()
		return
	case models.SessionConnected:
	default:
		s.mu.Unlock()
		return
	}
	s.state = models.SessionShuttingDown
	s.closing = true
	conn := s.conn
	done := s.readDone
	s.mu.Unlock()

	_ = s.write(conn, encodeDisconnect())
	s.writeMu.Lock()
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeTimeout))
	s.writeMu.Unlock()
	_ = conn.Close()

	select {
	case <-done:
	case <-time.After(disconnectTimeout):
		s.logger.Warn().Msg("receive loop did not stop in time")
	}
}

func (s *Session) emit(ev LifecycleEvent) {
	select {
	case s.events <- ev:
	default:
		s.logger.Warn().Str("signal", ev.Signal.String()).Msg("lifecycle buffer full, signal dropped")
	}
}
