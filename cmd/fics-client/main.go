package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	appcfg "github.com/kapu/ficsline/internal/config"
	"github.com/kapu/ficsline/internal/fics"
	"github.com/kapu/ficsline/internal/msgcat"
	"github.com/kapu/ficsline/internal/obslog"
	"github.com/kapu/ficsline/internal/presenter"
	"github.com/kapu/ficsline/internal/seekpool"
	"github.com/kapu/ficsline/internal/session"
	"github.com/kapu/ficsline/internal/statushttp"
	"github.com/kapu/ficsline/internal/transport"
)

func main() {
	cfg, err := appcfg.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if err := obslog.InitFromEnv(); err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer obslog.Sync()
	logger := obslog.L()

	catalog, err := msgcat.New(cfg.MsgTemplateDir)
	if err != nil {
		logger.Fatal("message catalog init", zap.Error(err))
	}

	dialCtx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	conn, err := transport.Dial(dialCtx, transport.Config{
		Mode:                 cfg.Transport,
		TelnetAddr:           cfg.Addr(),
		WSURL:                cfg.WSURL,
		DialTimeout:          cfg.DialTimeout,
		MaxReconnectAttempts: cfg.MaxReconnectAttempts,
	})
	cancel()
	if err != nil {
		logger.Fatal("dial", zap.String("addr", cfg.Addr()), zap.Error(err))
	}
	conn.OnStateChange(func(state transport.State) {
		logger.Info("transport_state", zap.String("state", string(state)))
	})

	sess := session.New(conn, cfg.Username, cfg.Password, logger)
	pool := seekpool.New(logger)
	ring := statushttp.NewEventRing(cfg.EventBuffer)

	display := presenter.New(catalog, func(line string) { fmt.Println(line) }, logger)

	sess.OnEvent(func(ev fics.Event) {
		pool.Apply(ev)
		ring.Add(presenter.ToEnvelope(ev, time.Now()))
		display.Present(ev)
		if lp, ok := ev.(fics.LoginPrompt); ok && lp.Prompt == fics.LoginNeedPassword && cfg.Password != "" {
			sess.StagePassword(cfg.Password)
		}
	})
	sess.Start()

	var status *statushttp.Server
	if cfg.StatusAddr != "" {
		status = statushttp.New(cfg.StatusAddr, func() statushttp.SessionInfo {
			st := sess.DecoderState()
			return statushttp.SessionInfo{
				SessionID:     sess.ID(),
				Authenticated: st.Authenticated,
				Username:      st.Username,
				Transport:     cfg.Transport,
				StartedAt:     sess.StartedAt(),
			}
		}, pool, ring, logger)
		status.Start()
	}

	// stdin lines become server commands
	go func() {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := sess.Send(ctx, line); err != nil {
				logger.Warn("send_failed", zap.Error(err))
			}
			cancel()
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutCtx, shutCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutCancel()
	if status != nil {
		_ = status.Shutdown()
	}
	_ = sess.Close(shutCtx)
}
