package fics

import (
	"regexp"
	"strings"
)

// Result outcomes keyed by the exact action phrase after the acting player's
// name. Loser-side phrases assign the win to the other player.
var loserPhrases = map[string]Reason{
	"resigns":                   ReasonResign,
	"forfeits by disconnection": ReasonDisconnect,
	"forfeits on time":          ReasonTimeForfeit,
	"checkmated":                ReasonCheckmate,
}

// Symmetric phrases map to (white, black, reason) with no winner/loser
// asymmetry.
var symmetricPhrases = map[string]Reason{
	"drawn by mutual agreement":                       ReasonDraw,
	"drawn by stalemate":                              ReasonDraw,
	"drawn by repetition":                             ReasonDraw,
	"drawn by the 50 move rule":                       ReasonDraw,
	"drawn because both players ran out of time":      ReasonDraw,
	"aborted on move 1":                               ReasonAbort,
	"aborted by mutual agreement":                     ReasonAbort,
	"adjourned by mutual agreement":                   ReasonAdjourn,
	"lost connection and too few moves; game aborted": ReasonAbort,
	"lost connection; game adjourned":                 ReasonAdjourn,
}

var reNoMaterial = regexp.MustCompile(`ran out of time and \w+ has no material to mate`)
var reCourtesy = regexp.MustCompile(`courtesy (adjourned|aborted) by \w+`)

// ClassifyResult maps a game-end phrase to (winner, loser, reason). who is
// either a player name or the side label "White"/"Black", resolved against
// the white/black mapping. Total and deterministic: unmatched input returns
// (white, black, ReasonUnknown).
func ClassifyResult(white, black, who, action string) (string, string, Reason) {
	actor := who
	switch who {
	case "White":
		actor = white
	case "Black":
		actor = black
	}
	other := black
	if actor == black {
		other = white
	}

	action = strings.TrimSpace(action)

	if r, ok := loserPhrases[action]; ok {
		return other, actor, r
	}
	if action == "partner won" || strings.HasSuffix(action, "'s partner won") {
		return actor, other, ReasonPartnerWon
	}
	// Symmetric endings arrive as "Game drawn by ..." with no actor.
	if r, ok := symmetricPhrases[strings.TrimPrefix(action, "Game ")]; ok {
		return white, black, r
	}
	if m := reCourtesy.FindStringSubmatch(action); m != nil {
		if m[1] == "adjourned" {
			return white, black, ReasonAdjourn
		}
		return white, black, ReasonAbort
	}
	if reNoMaterial.MatchString(action) {
		return white, black, ReasonDraw
	}
	return white, black, ReasonUnknown
}
