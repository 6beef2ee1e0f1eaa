package statushttp

import (
	"sync"

	"github.com/kapu/ficsline/pkg/ficsdto"
)

// EventRing keeps the last N event envelopes for the /events endpoint.
type EventRing struct {
	mu   sync.Mutex
	buf  []ficsdto.Envelope
	next int
	full bool
}

func NewEventRing(size int) *EventRing {
	if size <= 0 {
		size = 256
	}
	return &EventRing{buf: make([]ficsdto.Envelope, size)}
}

func (r *EventRing) Add(env ficsdto.Envelope) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buf[r.next] = env
	r.next++
	if r.next == len(r.buf) {
		r.next = 0
		r.full = true
	}
}

// Snapshot returns the buffered envelopes oldest-first.
func (r *EventRing) Snapshot() []ficsdto.Envelope {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.full {
		out := make([]ficsdto.Envelope, r.next)
		copy(out, r.buf[:r.next])
		return out
	}
	out := make([]ficsdto.Envelope, 0, len(r.buf))
	out = append(out, r.buf[r.next:]...)
	out = append(out, r.buf[:r.next]...)
	return out
}

func (r *EventRing) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.full {
		return len(r.buf)
	}
	return r.next
}
