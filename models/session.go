package models

// SessionState is the state of the push channel session.
type SessionState int

const (
	SessionDisconnected SessionState = iota
	SessionConnecting
	SessionConnected
	SessionShuttingDown
)

func (s SessionState) String() string {
	switch s {
	case SessionDisconnected:
		return "disconnected"
	case SessionConnecting:
		return "connecting"
	case SessionConnected:
		return "connected"
	case SessionShuttingDown:
		return "shutting_down"
	default:
		return "unknown"
	}
}
