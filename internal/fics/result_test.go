package fics

import "testing"

func TestClassifyResult(t *testing.T) {
	cases := []struct {
		name       string
		white      string
		black      string
		who        string
		action     string
		wantWinner string
		wantLoser  string
		wantReason Reason
	}{
		{"resign by side label", "bob", "alice", "White", "resigns", "alice", "bob", ReasonResign},
		{"resign by name", "bob", "alice", "alice", "resigns", "bob", "alice", ReasonResign},
		{"checkmate", "bob", "alice", "bob", "checkmated", "alice", "bob", ReasonCheckmate},
		{"disconnect forfeit", "bob", "alice", "Black", "forfeits by disconnection", "bob", "alice", ReasonDisconnect},
		{"time forfeit", "bob", "alice", "bob", "forfeits on time", "alice", "bob", ReasonTimeForfeit},
		{"partner won", "bob", "alice", "alice", "partner won", "alice", "bob", ReasonPartnerWon},
		{"mutual draw", "bob", "alice", "", "Game drawn by mutual agreement", "bob", "alice", ReasonDraw},
		{"stalemate", "bob", "alice", "", "Game drawn by stalemate", "bob", "alice", ReasonDraw},
		{"abort move one", "bob", "alice", "", "Game aborted on move 1", "bob", "alice", ReasonAbort},
		{"mutual adjourn", "bob", "alice", "", "Game adjourned by mutual agreement", "bob", "alice", ReasonAdjourn},
		{"courtesy adjourn", "bob", "alice", "", "Game courtesy adjourned by alice", "bob", "alice", ReasonAdjourn},
		{"courtesy abort", "bob", "alice", "", "Game courtesy aborted by bob", "bob", "alice", ReasonAbort},
		{"lost connection adjourn", "bob", "alice", "bob", "lost connection; game adjourned", "bob", "alice", ReasonAdjourn},
		{"no material draw", "bob", "alice", "", "bob ran out of time and alice has no material to mate", "bob", "alice", ReasonDraw},
		{"unknown", "bob", "alice", "", "something nobody has seen before", "bob", "alice", ReasonUnknown},
	}
	for _, tc := range cases {
		winner, loser, reason := ClassifyResult(tc.white, tc.black, tc.who, tc.action)
		if winner != tc.wantWinner || loser != tc.wantLoser || reason != tc.wantReason {
			t.Fatalf("%s: got (%q, %q, %v), want (%q, %q, %v)",
				tc.name, winner, loser, reason, tc.wantWinner, tc.wantLoser, tc.wantReason)
		}
	}
}

func TestClassifyResultIsTotal(t *testing.T) {
	// Garbage in every slot must still produce the symmetric unknown tuple.
	w, l, r := ClassifyResult("", "", "???", "")
	if r != ReasonUnknown || w != "" || l != "" {
		t.Fatalf("unexpected: (%q, %q, %v)", w, l, r)
	}
}
