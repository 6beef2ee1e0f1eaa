package transport

import (
	"context"
	"sync"
	"time"

	"github.com/ziutek/telnet"
)

// Telnet is the direct TCP mode. The telnet library answers option
// negotiation for us; everything else arrives as raw chunks.
type Telnet struct {
	addr string
	conn *telnet.Conn

	writeMu sync.Mutex

	state  State
	stateM sync.RWMutex

	stateCbs []stateCallbackEntry
	cbM      sync.RWMutex

	closed bool
}

// DialTelnet connects to addr ("host:port") within timeout.
func DialTelnet(addr string, timeout time.Duration) (*Telnet, error) {
	conn, err := telnet.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return nil, err
	}
	conn.SetUnixWriteMode(true)
	t := &Telnet{addr: addr, conn: conn, state: StateConnected}
	return t, nil
}

// ReadChunk blocks for the next chunk. A context deadline is honored via the
// socket read deadline; cancellation without a deadline takes effect on the
// next chunk boundary.
func (t *Telnet) ReadChunk(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if dl, ok := ctx.Deadline(); ok {
		_ = t.conn.SetReadDeadline(dl)
	} else {
		_ = t.conn.SetReadDeadline(time.Time{})
	}
	buf := make([]byte, 4096)
	n, err := t.conn.Read(buf)
	if err != nil {
		t.setState(StateDisconnected)
		return nil, err
	}
	return buf[:n], nil
}

func (t *Telnet) Send(ctx context.Context, data []byte, line bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.writeMu.Lock()
	defer t.writeMu.Unlock()
	if t.closed {
		return ErrClosed
	}
	if dl, ok := ctx.Deadline(); ok {
		_ = t.conn.SetWriteDeadline(dl)
	} else {
		_ = t.conn.SetWriteDeadline(time.Time{})
	}
	if line {
		data = append(append([]byte(nil), data...), '\n')
	}
	_, err := t.conn.Write(data)
	return err
}

func (t *Telnet) OnStateChange(cb StateCallback) int {
	t.cbM.Lock()
	defer t.cbM.Unlock()
	id := len(t.stateCbs) + 1
	t.stateCbs = append(t.stateCbs, stateCallbackEntry{id: id, callback: cb})
	return id
}

func (t *Telnet) Close(_ context.Context) error {
	t.writeMu.Lock()
	if t.closed {
		t.writeMu.Unlock()
		return nil
	}
	t.closed = true
	t.writeMu.Unlock()
	t.setState(StateClosed)
	if t.conn == nil {
		return nil
	}
	return t.conn.Close()
}

func (t *Telnet) setState(state State) {
	t.stateM.Lock()
	if t.state == state {
		t.stateM.Unlock()
		return
	}
	t.state = state
	t.stateM.Unlock()

	t.cbM.RLock()
	callbacks := make([]stateCallbackEntry, len(t.stateCbs))
	copy(callbacks, t.stateCbs)
	t.cbM.RUnlock()
	for _, entry := range callbacks {
		if entry.callback != nil {
			entry.callback(state)
		}
	}
}
