package fics

import (
	"bytes"
	"testing"
)

type sendRecorder struct {
	writes   [][]byte
	commands []bool
}

func (r *sendRecorder) send(data []byte, isCommand bool) error {
	r.writes = append(r.writes, append([]byte(nil), data...))
	r.commands = append(r.commands, isCommand)
	return nil
}

func authedState() State {
	return State{Authenticated: true, Username: "tester"}
}

func TestEmptyChunkIsAbsorbed(t *testing.T) {
	var rec sendRecorder
	for _, in := range []string{"", "   ", "\r\n", "\x07\x00\x01"} {
		st, evs := DecodeString(authedState(), in, rec.send)
		if len(evs) != 0 {
			t.Fatalf("input %q: expected no events, got %v", in, evs)
		}
		if !st.Authenticated {
			t.Fatalf("input %q: state lost", in)
		}
	}
	if len(rec.writes) != 0 {
		t.Fatalf("expected no outbound writes, got %d", len(rec.writes))
	}
}

func TestKeepAliveAck(t *testing.T) {
	var rec sendRecorder
	chunk := append([]byte("hello there"), keepAliveProbe...)
	_, evs := Decode(authedState(), chunk, rec.send)
	if len(rec.writes) != 1 || !bytes.Equal(rec.writes[0], keepAliveAck) {
		t.Fatalf("expected one ack write, got %v", rec.writes)
	}
	if rec.commands[0] {
		t.Fatalf("ack must not be sent as a command line")
	}
	if len(evs) != 1 {
		t.Fatalf("expected the text to survive, got %v", evs)
	}
	pt, ok := evs[0].(PlainText)
	if !ok || pt.Text != "hello there" {
		t.Fatalf("probe bytes leaked into text: %#v", evs[0])
	}
}

func TestSplitPreservesOrder(t *testing.T) {
	_, evs := DecodeString(authedState(), "msgA fics% msgB", nil)
	if len(evs) != 2 {
		t.Fatalf("expected two events, got %v", evs)
	}
	a, ok1 := evs[0].(PlainText)
	b, ok2 := evs[1].(PlainText)
	if !ok1 || !ok2 || a.Text != "msgA" || b.Text != "msgB" {
		t.Fatalf("split order wrong: %#v", evs)
	}
}

func TestNoSentinelSinglePass(t *testing.T) {
	_, evs := DecodeString(authedState(), "just one message", nil)
	if len(evs) != 1 {
		t.Fatalf("expected exactly one event, got %v", evs)
	}
}

func TestSplitSkipsEmptyPieces(t *testing.T) {
	_, evs := DecodeString(authedState(), "fics% only fics% ", nil)
	if len(evs) != 1 {
		t.Fatalf("expected one event, got %v", evs)
	}
	if pt := evs[0].(PlainText); pt.Text != "only" {
		t.Fatalf("unexpected text %q", pt.Text)
	}
}

func TestControlBytesStripped(t *testing.T) {
	_, evs := DecodeString(authedState(), "a\x07b\x00c\x01d\x1b[0me", nil)
	if len(evs) != 1 {
		t.Fatalf("expected one event, got %v", evs)
	}
	if pt := evs[0].(PlainText); pt.Text != "abcde" {
		t.Fatalf("cleanup failed: %q", pt.Text)
	}
}
