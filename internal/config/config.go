// Package config loads the client configuration from the environment.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

type AppConfig struct {
	// connection
	Host      string
	Port      int
	WSURL     string
	Transport string // "telnet", "ws" or "auto"

	// login
	Username string
	Password string

	// status endpoint; empty disables the HTTP server
	StatusAddr string

	// rendering
	MsgTemplateDir string

	// how many decoded events the status endpoint keeps
	EventBuffer int

	DialTimeout          time.Duration
	MaxReconnectAttempts int
}

// Load reads FICS_* variables. Only the username has no usable default.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		Host:                 "freechess.org",
		Port:                 5000,
		Transport:            "telnet",
		Username:             "guest",
		EventBuffer:          256,
		DialTimeout:          10 * time.Second,
		MaxReconnectAttempts: 5,
	}

	if v := strings.TrimSpace(os.Getenv("FICS_HOST")); v != "" {
		cfg.Host = v
	}
	if v := strings.TrimSpace(os.Getenv("FICS_PORT")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 65535 {
			return nil, errors.New("FICS_PORT must be a valid port number")
		}
		cfg.Port = n
	}
	cfg.WSURL = strings.TrimSpace(os.Getenv("FICS_WS_URL"))
	if v := strings.TrimSpace(os.Getenv("FICS_TRANSPORT")); v != "" {
		switch strings.ToLower(v) {
		case "telnet", "ws", "auto":
			cfg.Transport = strings.ToLower(v)
		default:
			return nil, errors.New("FICS_TRANSPORT must be telnet, ws or auto")
		}
	}
	if cfg.Transport == "ws" && cfg.WSURL == "" {
		return nil, errors.New("FICS_WS_URL is required for the ws transport")
	}

	if v := strings.TrimSpace(os.Getenv("FICS_USER")); v != "" {
		cfg.Username = v
	}
	cfg.Password = os.Getenv("FICS_PASSWORD")

	cfg.StatusAddr = strings.TrimSpace(os.Getenv("STATUS_ADDR"))
	cfg.MsgTemplateDir = strings.TrimSpace(os.Getenv("MSG_TEMPLATE_DIR"))

	if v := strings.TrimSpace(os.Getenv("EVENT_BUFFER")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.EventBuffer = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("DIAL_TIMEOUT")); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.DialTimeout = d
		}
	}
	if v := strings.TrimSpace(os.Getenv("MAX_RECONNECT_ATTEMPTS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxReconnectAttempts = n
		}
	}

	return cfg, nil
}

// Addr returns the telnet dial address.
func (c *AppConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}
