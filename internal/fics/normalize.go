package fics

import (
	"bytes"
	"strings"
)

// splitSentinel is the literal the server uses to pack several logical
// messages into one delivery.
const splitSentinel = "fics%"

// Transport keep-alive: the server probes with IAC GA and expects IAC NOP
// back. This is a transport-level handshake, not a protocol message.
var (
	keepAliveProbe = []byte{0xff, 0xf9}
	keepAliveAck   = []byte{0xff, 0xf1}
)

// Stray artifacts stripped before any parsing.
var chunkCleaner = strings.NewReplacer(
	"\x07", "",
	"\x00", "",
	"\x01", "",
	"\x1b[0m", "",
)

// normalize strips control bytes, answers the keep-alive probe, splits packed
// deliveries on the sentinel and hands single messages to the login machine or
// the classifier.
func normalize(st State, chunk []byte, send SendFunc) (State, []Event) {
	if len(chunk) == 0 {
		return st, nil
	}
	if bytes.Contains(chunk, keepAliveProbe) {
		if send != nil {
			_ = send(keepAliveAck, false)
		}
		chunk = bytes.ReplaceAll(chunk, keepAliveProbe, nil)
	}
	return decodeText(st, latin1(chunk), send)
}

func decodeText(st State, text string, send SendFunc) (State, []Event) {
	text = chunkCleaner.Replace(text)
	text = strings.TrimRight(text, "\r\n \t")
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return st, nil
	}

	if strings.Contains(trimmed, splitSentinel) {
		parts := strings.Split(trimmed, splitSentinel)
		var out []Event
		for _, part := range parts {
			var evs []Event
			st, evs = decodeText(st, part, send)
			out = append(out, evs...)
		}
		return st, out
	}

	if !st.Authenticated {
		return loginStep(st, trimmed, send)
	}
	return st, classify(st, trimmed, send)
}

// latin1 decodes a byte buffer as 8-bit-clean Latin-range text. The protocol
// is ASCII with the occasional high byte; never run it through UTF-8.
func latin1(b []byte) string {
	for _, c := range b {
		if c >= 0x80 {
			rs := make([]rune, len(b))
			for i, cc := range b {
				rs[i] = rune(cc)
			}
			return string(rs)
		}
	}
	return string(b)
}
