package fics

import "testing"

func TestGuestLoginFlow(t *testing.T) {
	var rec sendRecorder
	st := State{Username: "guest"}

	st, evs := DecodeString(st, "login:", rec.send)
	if len(evs) != 0 {
		t.Fatalf("login prompt should be absorbed, got %v", evs)
	}
	if len(rec.writes) != 1 || string(rec.writes[0]) != "guest" || !rec.commands[0] {
		t.Fatalf("expected username echo, got %v", rec.writes)
	}

	st, evs = DecodeString(st, `Press return to enter the server as "GuestXYZW":`, rec.send)
	if len(evs) != 0 {
		t.Fatalf("press-return should be absorbed, got %v", evs)
	}
	if len(rec.writes) != 2 || string(rec.writes[1]) != "" {
		t.Fatalf("expected empty line echo, got %v", rec.writes)
	}
	if st.PendingPassword != "" {
		t.Fatalf("pending password should be cleared")
	}

	st, evs = DecodeString(st, "**** Starting FICS session as GuestXYZW(U) ****\n\nfics% ", rec.send)
	if !st.Authenticated || st.Username != "GuestXYZW" {
		t.Fatalf("expected authenticated GuestXYZW, got %+v", st)
	}
	if len(evs) != 2 {
		t.Fatalf("expected LoginResult+PlainText, got %v", evs)
	}
	lr, ok := evs[0].(LoginResult)
	if !ok || !lr.OK || lr.Username != "GuestXYZW" {
		t.Fatalf("bad login result: %#v", evs[0])
	}
	if _, ok := evs[1].(PlainText); !ok {
		t.Fatalf("banner should follow as PlainText: %#v", evs[1])
	}
}

func TestPasswordPromptWithoutStagedPassword(t *testing.T) {
	var rec sendRecorder
	st := State{Username: "alice"}
	st, evs := DecodeString(st, "password:", rec.send)
	if len(evs) != 1 {
		t.Fatalf("expected a prompt event, got %v", evs)
	}
	lp, ok := evs[0].(LoginPrompt)
	if !ok || lp.Prompt != LoginNeedPassword {
		t.Fatalf("expected need-password prompt, got %#v", evs[0])
	}
	if len(rec.writes) != 0 {
		t.Fatalf("nothing should be sent without a password")
	}
	if st.Registered {
		t.Fatalf("must not be marked registered yet")
	}
}

func TestPasswordPromptWithStagedPassword(t *testing.T) {
	var rec sendRecorder
	st := State{Username: "alice", PendingPassword: "hunter2"}
	st, evs := DecodeString(st, "password:", rec.send)
	if len(evs) != 0 {
		t.Fatalf("expected silent send, got %v", evs)
	}
	if len(rec.writes) != 1 || string(rec.writes[0]) != "hunter2" {
		t.Fatalf("expected password echo, got %v", rec.writes)
	}
	if !st.Registered || st.PendingPassword != "" {
		t.Fatalf("state not advanced: %+v", st)
	}
}

func TestInvalidPassword(t *testing.T) {
	st := State{Username: "alice", Registered: true}
	_, evs := DecodeString(st, "**** Invalid password! ****", nil)
	if len(evs) != 1 {
		t.Fatalf("expected one event, got %v", evs)
	}
	lr, ok := evs[0].(LoginResult)
	if !ok || lr.OK || lr.ErrorText == "" {
		t.Fatalf("expected failed login result, got %#v", evs[0])
	}
}

func TestBadHandleComplaint(t *testing.T) {
	st := State{Username: "x"}
	_, evs := DecodeString(st, "A name should be at least three characters long!  Try again.", nil)
	if len(evs) != 1 {
		t.Fatalf("expected one event, got %v", evs)
	}
	lp, ok := evs[0].(LoginPrompt)
	if !ok || lp.Prompt != LoginError {
		t.Fatalf("expected login error prompt, got %#v", evs[0])
	}
}

func TestUnmatchedPreAuthTextIsBuffered(t *testing.T) {
	st := State{Username: "alice"}
	_, evs := DecodeString(st, "some MOTD banner line", nil)
	if len(evs) != 0 {
		t.Fatalf("pre-auth noise must be absorbed, got %v", evs)
	}
}
