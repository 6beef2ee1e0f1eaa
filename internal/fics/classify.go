package fics

import (
	"regexp"
	"strconv"
	"strings"
)

// A rule recognizes one message shape. Rules run strictly in order and the
// first one whose pattern matches and whose build returns events wins; a nil
// build result lets later rules have a go.
type rule struct {
	name  string
	re    *regexp.Regexp
	build func(st State, m []string, text string, send SendFunc) []Event
}

var (
	reStyle12  = regexp.MustCompile(`(?m)^<12> (.+)$`)
	reCreating = regexp.MustCompile(`Creating: ([A-Za-z]+) \((\S+)\) ([A-Za-z]+) \((\S+)\)`)
	reHoldings = regexp.MustCompile(`<b1> game (\d+) white \[([A-Za-z]*)\] black \[([A-Za-z]*)\](?: <- (\w+))?`)
	reGameNew  = regexp.MustCompile(`\{Game (\d+) \(([A-Za-z]+) vs\. ([A-Za-z]+)\) (?:Creating|Continuing)`)
	reGameEnd  = regexp.MustCompile(`\{Game (\d+) \(([A-Za-z]+) vs\. ([A-Za-z]+)\) ([^}]+)\}(?:\s+(\S+))?`)
	reChanTell = regexp.MustCompile(`(?s)^([A-Za-z]+)(?:\([A-Z0-9*!]+\))*\((\d{1,3})\): (.*)$`)
	rePrivTell = regexp.MustCompile(`(?s)^([A-Za-z]+)(?:\([A-Z0-9*!]+\))* (?:tells you|says): (.*)$`)
	reRoomSay  = regexp.MustCompile(`(?s)^([A-Za-z]+)(?:\([A-Z*!]+\))*\(\s*([0-9+-]+|\+{4}|-{4})\)\[(\d+)\] (kibitzes|whispers): (.*)$`)
	reMailHead = regexp.MustCompile(`(?m)^(Messages:|Unread messages:|The following message was (received|sent)\b.*)$`)
	reMailItem = regexp.MustCompile(`(?m)^\s*(\d+)\. ([A-Za-z]+) at (.+?): (.*)$`)
	reMailBare = regexp.MustCompile(`(?m)^([A-Za-z]+) at (.+? \d{4}): (.*)$`)

	reSeekGoneOne = regexp.MustCompile(`Your seek (\d+) has been removed`)
	reSeekGoneAll = regexp.MustCompile(`Your seeks? ha(?:ve|s) been removed`)
)

// Populated in init: the board/game-end builders re-delegate to decodeText,
// which reaches classify, so a composite literal here would be an
// initialization cycle.
var classifyRules []rule

func init() {
	classifyRules = []rule{
		{name: "board_update", re: reStyle12, build: buildBoardUpdate},
		{name: "holdings", re: reHoldings, build: buildHoldings},
		{name: "game_start", re: reGameNew, build: buildGameStart},
		{name: "game_end", re: reGameEnd, build: buildGameEnd},
		{name: "channel_tell", re: reChanTell, build: buildChannelTell},
		{name: "private_tell", re: rePrivTell, build: buildPrivateTell},
		{name: "room_utterance", re: reRoomSay, build: buildRoomUtterance},
		{name: "mail_block", re: reMailHead, build: buildMailBlock},
	}
}

// classify dispatches one logical message. It never fails: anything the rule
// table and the offer probe do not claim becomes PlainText.
func classify(st State, text string, send SendFunc) []Event {
	// Server help files carry their own markup; pass them through untouched.
	if strings.HasPrefix(firstLine(text), "Last Modified") {
		return []Event{PlainText{Text: text}}
	}
	for _, r := range classifyRules {
		if m := r.re.FindStringSubmatch(text); m != nil {
			if evs := r.build(st, m, text, send); evs != nil {
				return evs
			}
		}
	}
	if evs := parseOfferBlock(text); evs != nil {
		return evs
	}
	if evs := seekRemovalBanner(text); evs != nil {
		return evs
	}
	return []Event{PlainText{Text: text}}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// fieldErr accumulates the names of numeric fields that failed to parse so a
// malformed number degrades one field, not the whole event.
type fieldErr struct {
	invalid []string
}

func (f *fieldErr) atoi(name, s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		f.invalid = append(f.invalid, name)
		return 0
	}
	return n
}

func buildBoardUpdate(st State, m []string, text string, send SendFunc) []Event {
	// Packed sub-messages can hide inside a matched line; the top-level split
	// only inspects whole chunks, so re-delegate when the sentinel shows up.
	if strings.Contains(m[0], splitSentinel) {
		_, evs := decodeText(st, text, send)
		return evs
	}
	f := strings.Fields(m[1])
	if len(f) < 30 {
		return nil
	}
	var fe fieldErr
	moveNo := fe.atoi("moveNumber", f[25])
	b := Board{
		Turn:           f[8],
		DoublePushFile: fe.atoi("doublePushFile", f[9]),
		WhiteShort:     f[10] == "1",
		WhiteLong:      f[11] == "1",
		BlackShort:     f[12] == "1",
		BlackLong:      f[13] == "1",
		HalfMoveClock:  fe.atoi("halfMoveClock", f[14]),
		FullMove:       moveNo,
		Verbose:        f[26],
		Pretty:         f[28],
	}
	for i := 0; i < 8; i++ {
		if len(f[i]) != 8 {
			return nil
		}
		b.Ranks[i] = f[i]
	}

	ev := BoardUpdate{
		FEN:          b.FEN(),
		Turn:         strings.ToLower(b.Turn),
		GameID:       fe.atoi("gameId", f[15]),
		White:        f[16],
		Black:        f[17],
		WhiteClockMS: fe.atoi("whiteClock", f[23]),
		BlackClockMS: fe.atoi("blackClock", f[24]),
		MoveNo:       moveNo,
		VerboseMove:  b.Move(),
		PrevMoveTime: f[27],
		PrettyMove:   f[28],
		Flip:         f[29] == "1",
	}
	if cm := reCreating.FindStringSubmatch(text); cm != nil {
		ev.WhiteRating = absentToEmpty(cm[2])
		ev.BlackRating = absentToEmpty(cm[4])
	}
	ev.Invalid = fe.invalid
	return []Event{ev}
}

func buildHoldings(_ State, m []string, _ string, _ SendFunc) []Event {
	var fe fieldErr
	return []Event{HoldingsUpdate{
		GameID:       fe.atoi("gameId", m[1]),
		WhiteHolding: m[2],
		BlackHolding: m[3],
		NewPiece:     m[4],
	}}
}

func buildGameStart(_ State, m []string, _ string, _ SendFunc) []Event {
	var fe fieldErr
	return []Event{GameStart{
		GameID:  fe.atoi("gameId", m[1]),
		PlayerA: m[2],
		PlayerB: m[3],
	}}
}

func buildGameEnd(st State, m []string, text string, send SendFunc) []Event {
	if strings.Contains(m[0], splitSentinel) {
		_, evs := decodeText(st, text, send)
		return evs
	}
	white, black := m[2], m[3]
	who, action := splitActor(white, black, strings.TrimSpace(m[4]))
	winner, loser, reason := ClassifyResult(white, black, who, action)

	var fe fieldErr
	return []Event{GameEnd{
		GameID: fe.atoi("gameId", m[1]),
		Winner: winner,
		Loser:  loser,
		Reason: reason,
		Score:  m[5],
		Raw:    m[0],
	}}
}

// splitActor peels the acting player (or side label) off the front of the
// result phrase. Symmetric phrases ("Game drawn by...") keep an empty actor.
func splitActor(white, black, phrase string) (string, string) {
	tok, rest, ok := strings.Cut(phrase, " ")
	if !ok {
		return "", phrase
	}
	// "X's partner won" makes the actor possessive.
	base := strings.TrimSuffix(tok, "'s")
	switch base {
	case white, black, "White", "Black":
		return base, rest
	}
	return "", phrase
}

func buildChannelTell(_ State, m []string, _ string, _ SendFunc) []Event {
	var fe fieldErr
	return []Event{ChannelTell{
		Channel: fe.atoi("channel", m[2]),
		User:    m[1],
		Text:    strings.TrimSpace(m[3]),
	}}
}

func buildPrivateTell(_ State, m []string, _ string, _ SendFunc) []Event {
	return []Event{PrivateTell{User: m[1], Text: strings.TrimSpace(m[2])}}
}

func buildRoomUtterance(_ State, m []string, _ string, _ SendFunc) []Event {
	var fe fieldErr
	kind := Kibitz
	if m[4] == "whispers" {
		kind = Whisper
	}
	return []Event{RoomUtterance{
		GameID: fe.atoi("gameId", m[3]),
		User:   m[1],
		What:   kind,
		Suffix: m[2],
		Text:   strings.TrimSpace(m[5]),
	}}
}

func buildMailBlock(_ State, m []string, text string, _ SendFunc) []Event {
	what := "messages"
	switch m[2] {
	case "received":
		what = "received"
	case "sent":
		what = "sent"
	}
	var entries []MailEntry
	for _, im := range reMailItem.FindAllStringSubmatch(text, -1) {
		var fe fieldErr
		entries = append(entries, MailEntry{
			ID:       fe.atoi("id", im[1]),
			User:     im[2],
			DateTime: im[3],
			Text:     im[4],
		})
	}
	if len(entries) == 0 {
		for _, im := range reMailBare.FindAllStringSubmatch(text, -1) {
			entries = append(entries, MailEntry{User: im[1], DateTime: im[2], Text: im[3]})
		}
	}
	return []Event{MailBlock{What: what, Entries: entries, Raw: text}}
}

func seekRemovalBanner(text string) []Event {
	if m := reSeekGoneOne.FindStringSubmatch(text); m != nil {
		var fe fieldErr
		return []Event{SeekRemoved{IDs: []int{fe.atoi("id", m[1])}}}
	}
	if reSeekGoneAll.MatchString(text) {
		return []Event{SeekRemoved{Cleared: true}}
	}
	return nil
}

// absentToEmpty maps the protocol's "-"/"none" absence markers to empty.
func absentToEmpty(s string) string {
	if s == "-" || s == "none" {
		return ""
	}
	return s
}
