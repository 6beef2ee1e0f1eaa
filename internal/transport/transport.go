// Package transport carries raw chunks between the server and the decoder.
// Two modes: direct telnet to the chess server, or the websocket proxy the
// server operators run for browser clients. The decoder never sees which one
// is in use.
package transport

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// State is the connection lifecycle state.
type State string

const (
	StateDisconnected State = "disconnected"
	StateConnecting   State = "connecting"
	StateConnected    State = "connected"
	StateReconnecting State = "reconnecting"
	StateFailed       State = "failed"
	StateClosed       State = "closed"
)

// StateCallback observes connection state changes.
type StateCallback func(State)

type stateCallbackEntry struct {
	id       int
	callback StateCallback
}

// Conn is one server connection. ReadChunk returns chunks in network-arrival
// order; Send with line=true appends the protocol line terminator.
type Conn interface {
	ReadChunk(ctx context.Context) ([]byte, error)
	Send(ctx context.Context, data []byte, line bool) error
	OnStateChange(cb StateCallback) int
	Close(ctx context.Context) error
}

// Config selects and parameterizes the transport.
type Config struct {
	Mode        string // "telnet", "ws" or "auto"
	TelnetAddr  string
	WSURL       string
	DialTimeout time.Duration

	// websocket reconnect policy
	MaxReconnectAttempts int
	ReconnectDelay       time.Duration
}

var ErrClosed = errors.New("transport closed")

// Dial opens a connection per cfg.Mode. Auto prefers telnet and falls back to
// the websocket proxy once.
func Dial(ctx context.Context, cfg Config) (Conn, error) {
	timeout := cfg.DialTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Mode)) {
	case "", "telnet":
		return DialTelnet(cfg.TelnetAddr, timeout)
	case "ws":
		return DialWebSocket(ctx, cfg)
	case "auto":
		c, err := DialTelnet(cfg.TelnetAddr, timeout)
		if err == nil {
			return c, nil
		}
		if strings.TrimSpace(cfg.WSURL) == "" {
			return nil, err
		}
		return DialWebSocket(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown transport mode: %s", cfg.Mode)
	}
}

func backoffDuration(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	if attempt > 6 {
		attempt = 6
	}
	base := 100 * time.Millisecond
	return time.Duration(1<<uint(attempt-1)) * base // 100ms, 200ms ...
}
