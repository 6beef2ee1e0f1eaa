// Package statushttp serves a small read-only JSON view of the running
// client: login state, live seeks and the recent event stream.
package statushttp

import (
	"encoding/json"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/kapu/ficsline/internal/presenter"
	"github.com/kapu/ficsline/internal/seekpool"
	"github.com/kapu/ficsline/pkg/ficsdto"
)

// SessionInfo is the /session payload.
type SessionInfo struct {
	SessionID     string    `json:"session_id"`
	Authenticated bool      `json:"authenticated"`
	Username      string    `json:"username,omitempty"`
	Transport     string    `json:"transport"`
	StartedAt     time.Time `json:"started_at,omitempty"`
}

// Server exposes /healthz, /session, /seeks and /events. All endpoints are
// GET-only and never mutate anything.
type Server struct {
	addr    string
	session func() SessionInfo
	pool    *seekpool.Pool
	ring    *EventRing
	logger  *zap.Logger

	srv *fasthttp.Server
}

func New(addr string, session func() SessionInfo, pool *seekpool.Pool, ring *EventRing, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{addr: addr, session: session, pool: pool, ring: ring, logger: logger}
	s.srv = &fasthttp.Server{
		Handler:      s.handle,
		Name:         "ficsline-status",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

// Start runs the listener in a goroutine and returns immediately.
func (s *Server) Start() {
	go func() {
		s.logger.Info("status_http_listen", zap.String("addr", s.addr))
		if err := s.srv.ListenAndServe(s.addr); err != nil {
			s.logger.Warn("status_http_stopped", zap.Error(err))
		}
	}()
}

func (s *Server) Shutdown() error {
	return s.srv.Shutdown()
}

func (s *Server) handle(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		return
	}
	switch string(ctx.Path()) {
	case "/healthz":
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("ok")
	case "/session":
		s.writeJSON(ctx, s.session())
	case "/seeks":
		seeks := s.pool.Seeks()
		out := make([]ficsdto.SeekAd, 0, len(seeks))
		for _, ad := range seeks {
			out = append(out, presenter.SeekAdDTO(ad))
		}
		s.writeJSON(ctx, map[string]any{"seeks": out, "count": len(out)})
	case "/events":
		events := s.ring.Snapshot()
		s.writeJSON(ctx, map[string]any{"events": events, "count": len(events)})
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
	}
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.logger.Warn("status_http_encode", zap.Error(err))
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetContentType("application/json; charset=utf-8")
	ctx.SetBody(body)
}
