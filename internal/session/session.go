// Package session binds one transport connection to one decoder instance and
// fans decoded events out to subscribers. One Session per connection; the
// decoder state never leaves it.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kapu/ficsline/internal/fics"
	"github.com/kapu/ficsline/internal/transport"
)

// EventCallback receives decoded events in arrival order.
type EventCallback func(ev fics.Event)

type callbackEntry struct {
	id       int
	callback EventCallback
}

type Session struct {
	id     string
	conn   transport.Conn
	dec    *fics.Decoder
	logger *zap.Logger

	evCbs []callbackEntry
	cbM   sync.RWMutex

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	started   bool
	startedAt time.Time
	startM    sync.Mutex
}

// New stages the login credentials on a fresh decoder. The password may be
// empty for the guest path; StagePassword supplies it later if the server
// asks.
func New(conn transport.Conn, username, password string, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		id:     uuid.NewString(),
		conn:   conn,
		logger: logger,
		stopCh: make(chan struct{}),
	}
	s.dec = fics.NewDecoder(username, password, s.decoderSend)
	return s
}

func (s *Session) ID() string { return s.id }

// Start launches the read pump. Chunks are fed to the decoder strictly in
// network-arrival order; later logic depends on that sequencing.
func (s *Session) Start() {
	s.startM.Lock()
	defer s.startM.Unlock()
	if s.started {
		return
	}
	s.started = true
	s.startedAt = time.Now()
	s.wg.Add(1)
	go s.pump()
}

func (s *Session) pump() {
	defer s.wg.Done()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-s.stopCh
		cancel()
	}()

	for {
		chunk, err := s.conn.ReadChunk(ctx)
		if err != nil {
			if s.isStopping() {
				return
			}
			s.logger.Warn("session_read_error", zap.String("session", s.id), zap.Error(err))
			return
		}
		for _, ev := range s.dec.Feed(chunk) {
			if ev == nil {
				continue
			}
			s.dispatch(ev)
		}
	}
}

func (s *Session) dispatch(ev fics.Event) {
	s.logger.Debug("session_event", zap.String("session", s.id), zap.String("kind", string(ev.Kind())))
	s.cbM.RLock()
	callbacks := make([]callbackEntry, len(s.evCbs))
	copy(callbacks, s.evCbs)
	s.cbM.RUnlock()
	for _, entry := range callbacks {
		if entry.callback != nil {
			entry.callback(ev)
		}
	}
}

// decoderSend is the decoder's outbound side channel: login echoes go out as
// command lines, the keep-alive ack as raw bytes.
func (s *Session) decoderSend(data []byte, isCommand bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.conn.Send(ctx, data, isCommand)
}

// Send writes one user command line.
func (s *Session) Send(ctx context.Context, command string) error {
	return s.conn.Send(ctx, []byte(command), true)
}

// StagePassword supplies the password after a LoginNeedPassword prompt.
func (s *Session) StagePassword(pw string) {
	s.dec.StagePassword(pw)
}

// DecoderState returns a snapshot of the login state.
func (s *Session) DecoderState() fics.State {
	return s.dec.State()
}

// StartedAt reports when the pump began; zero before Start.
func (s *Session) StartedAt() time.Time {
	s.startM.Lock()
	defer s.startM.Unlock()
	return s.startedAt
}

func (s *Session) OnEvent(cb EventCallback) int {
	s.cbM.Lock()
	defer s.cbM.Unlock()
	id := len(s.evCbs) + 1
	s.evCbs = append(s.evCbs, callbackEntry{id: id, callback: cb})
	return id
}

func (s *Session) RemoveEventCallback(id int) {
	s.cbM.Lock()
	defer s.cbM.Unlock()
	for i, cb := range s.evCbs {
		if cb.id == id {
			s.evCbs = append(s.evCbs[:i], s.evCbs[i+1:]...)
			break
		}
	}
}

func (s *Session) Close(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stopCh) })

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
	}
	return s.conn.Close(ctx)
}

func (s *Session) isStopping() bool {
	select {
	case <-s.stopCh:
		return true
	default:
		return false
	}
}
