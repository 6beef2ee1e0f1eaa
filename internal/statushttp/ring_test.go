package statushttp

import (
	"fmt"
	"testing"

	"github.com/kapu/ficsline/pkg/ficsdto"
)

func textEnv(i int) ficsdto.Envelope {
	return ficsdto.Envelope{Kind: "plain_text", Text: &ficsdto.Text{Text: fmt.Sprintf("msg-%d", i)}}
}

func TestRingBelowCapacity(t *testing.T) {
	r := NewEventRing(4)
	r.Add(textEnv(1))
	r.Add(textEnv(2))

	if r.Len() != 2 {
		t.Fatalf("len = %d, want 2", r.Len())
	}
	snap := r.Snapshot()
	if len(snap) != 2 || snap[0].Text.Text != "msg-1" || snap[1].Text.Text != "msg-2" {
		t.Fatalf("snapshot: %+v", snap)
	}
}

func TestRingWrapsOldestFirst(t *testing.T) {
	r := NewEventRing(3)
	for i := 1; i <= 5; i++ {
		r.Add(textEnv(i))
	}

	if r.Len() != 3 {
		t.Fatalf("len = %d, want 3", r.Len())
	}
	snap := r.Snapshot()
	want := []string{"msg-3", "msg-4", "msg-5"}
	for i, w := range want {
		if snap[i].Text.Text != w {
			t.Fatalf("snapshot[%d] = %q, want %q", i, snap[i].Text.Text, w)
		}
	}
}

func TestRingDefaultSize(t *testing.T) {
	r := NewEventRing(0)
	if len(r.buf) != 256 {
		t.Fatalf("default capacity = %d, want 256", len(r.buf))
	}
}
