package fics

import (
	"regexp"
	"strings"
)

var (
	reBadHandle = regexp.MustCompile(`(?i)(name should be at least|names may be at most|names can only consist|is not a valid handle)`)
	reSession   = regexp.MustCompile(`\*{4} Starting FICS session as ([a-zA-Z]+)(?:\([A-Z*]+\))* \*{4}`)
)

// loginStep runs the pre-authentication handshake. Rules are ordered and
// terminal: the first match decides the outcome for the whole chunk. No match
// emits nothing; the caller keeps waiting for more input.
func loginStep(st State, text string, send SendFunc) (State, []Event) {
	switch {
	case reBadHandle.MatchString(text):
		return st, []Event{LoginPrompt{Prompt: LoginError, Text: text}}

	case strings.Contains(text, "login:"):
		sendLine(send, st.Username)
		return st, nil

	case strings.Contains(text, "Press return to enter the server as"):
		st.PendingPassword = ""
		sendLine(send, "")
		return st, nil

	case strings.Contains(text, "password:"):
		if st.PendingPassword == "" {
			return st, []Event{LoginPrompt{Prompt: LoginNeedPassword, Text: text}}
		}
		st.Registered = true
		sendLine(send, st.PendingPassword)
		st.PendingPassword = ""
		return st, nil

	case reSession.MatchString(text):
		m := reSession.FindStringSubmatch(text)
		st.Authenticated = true
		st.Username = m[1]
		// The banner itself is worth displaying, hence the trailing PlainText.
		return st, []Event{
			LoginResult{OK: true, Username: st.Username},
			PlainText{Text: text},
		}

	case strings.Contains(text, "**** Invalid password! ****"):
		return st, []Event{LoginResult{OK: false, ErrorText: text}}
	}
	return st, nil
}

func sendLine(send SendFunc, line string) {
	if send != nil {
		_ = send([]byte(line), true)
	}
}
