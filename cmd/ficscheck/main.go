package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/kapu/ficsline/internal/fics"
	"github.com/kapu/ficsline/internal/session"
	"github.com/kapu/ficsline/internal/transport"
)

// ficscheck dials the server, logs in as a guest and prints decoded events
// for a short window. Useful to verify connectivity and the login handshake.
func main() {
	addr := os.Getenv("FICS_HOST")
	if addr == "" {
		addr = "freechess.org"
	}
	port := os.Getenv("FICS_PORT")
	if port == "" {
		port = "5000"
	}
	user := os.Getenv("FICS_USER")
	if user == "" {
		user = "guest"
	}

	dialCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	conn, err := transport.Dial(dialCtx, transport.Config{
		Mode:       "telnet",
		TelnetAddr: addr + ":" + port,
	})
	cancel()
	if err != nil {
		log.Fatalf("dial error: %v", err)
	}
	conn.OnStateChange(func(state transport.State) {
		log.Printf("transport state: %s", state)
	})

	sess := session.New(conn, user, os.Getenv("FICS_PASSWORD"), nil)
	sess.OnEvent(func(ev fics.Event) {
		switch e := ev.(type) {
		case fics.LoginResult:
			if e.OK {
				fmt.Printf("logged in as %s\n", e.Username)
			} else {
				fmt.Printf("login failed: %s\n", e.ErrorText)
			}
		case fics.PlainText:
			fmt.Println(e.Text)
		default:
			fmt.Printf("event %s: %+v\n", ev.Kind(), ev)
		}
	})
	sess.Start()

	// observe for a short window
	t := time.NewTimer(15 * time.Second)
	<-t.C

	closeCtx, closeCancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer closeCancel()
	_ = sess.Close(closeCtx)
}
