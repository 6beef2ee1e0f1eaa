package fics

import "sync"

// SendFunc is the outbound side channel. isCommand true means the payload is a
// protocol command line and the transport should append the line terminator;
// false is a raw transport-level write (keep-alive ack).
type SendFunc func(data []byte, isCommand bool) error

// State is the small per-connection decoder state. It is a value: Decode
// returns the successor state and never mutates shared memory, so replaying a
// chunk sequence from a zero State is always possible. One State per
// connection; never share across connections.
type State struct {
	Authenticated   bool
	Username        string
	PendingPassword string
	Registered      bool
}

// Decode runs one chunk through the decoder. The returned slice is ordered;
// nil means the chunk was absorbed (login flow, pure control bytes, empty).
func Decode(st State, chunk []byte, send SendFunc) (State, []Event) {
	return normalize(st, chunk, send)
}

// DecodeString is Decode for callers that already hold text.
func DecodeString(st State, chunk string, send SendFunc) (State, []Event) {
	return normalize(st, []byte(chunk), send)
}

// Decoder is a convenience wrapper owning one State for one connection.
type Decoder struct {
	mu   sync.Mutex
	st   State
	send SendFunc
}

// NewDecoder stages the credentials used during the login handshake. An empty
// password selects the guest path until StagePassword is called.
func NewDecoder(username, password string, send SendFunc) *Decoder {
	return &Decoder{
		st:   State{Username: username, PendingPassword: password},
		send: send,
	}
}

// Feed decodes one network chunk. Chunks must be fed in arrival order.
func (d *Decoder) Feed(chunk []byte) []Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	st, evs := Decode(d.st, chunk, d.send)
	d.st = st
	return evs
}

// FeedString is Feed for text chunks.
func (d *Decoder) FeedString(chunk string) []Event {
	return d.Feed([]byte(chunk))
}

// State returns a snapshot of the current decoder state.
func (d *Decoder) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.st
}

// StagePassword supplies the password requested via LoginNeedPassword. The
// caller resubmits nothing; the next password: prompt picks it up.
func (d *Decoder) StagePassword(pw string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.st.PendingPassword = pw
}
