package fics

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reOfferTagLine = regexp.MustCompile(`(?m)^<(pt|pf|pr|s|sc|sn|sr)>`)
	rePending      = regexp.MustCompile(`^<p([tf])> (\d+) w=([A-Za-z]+) t=(\S+)(?: p=(.*))?$`)
	reMatchParams  = regexp.MustCompile(`^([A-Za-z]+) \((\S+)\)(?: \[(black|white)\])? ([A-Za-z]+) \((\S+)\) (rated|unrated) (\S+) (\d+) (\d+)(?: Loaded from (\S+))?( \(adjourned\))?$`)
	reSeekLine     = regexp.MustCompile(`^<s(n?)> (\d+) w=(\S+) ti=([0-9A-Fa-f]+) rt=(\S+)\s+t=(\d+) i=(\d+) r=([ru]) tp=(\S+) c=([WB?]) rr=(\d+-\d+) a=([tf]) f=([tf])$`)
	reIDLine       = regexp.MustCompile(`^<(pr|sr)> ([\d ]+)$`)
)

// parseOfferBlock is the fallback probe for tagged offer/seek blocks. Returns
// nil when no line carries one of the tag tokens. Plain text ahead of the
// first tagged line becomes its own event; unmatched lines inside the block
// are dropped silently.
func parseOfferBlock(text string) []Event {
	loc := reOfferTagLine.FindStringIndex(text)
	if loc == nil {
		return nil
	}

	var out []Event
	if lead := strings.TrimSpace(text[:loc[0]]); lead != "" {
		out = append(out, PlainText{Text: lead})
	}

	var offers []OfferRecord
	for _, line := range strings.Split(text[loc[0]:], "\n") {
		line = strings.TrimSpace(line)
		if rec := parseOfferLine(line); rec != nil {
			offers = append(offers, rec)
		}
	}
	out = append(out, OfferBlock{Offers: offers})
	return out
}

func parseOfferLine(line string) OfferRecord {
	switch {
	case line == "<sc>":
		return SeekCleared{}

	case strings.HasPrefix(line, "<pt>") || strings.HasPrefix(line, "<pf>"):
		m := rePending.FindStringSubmatch(line)
		if m == nil {
			return nil
		}
		tag, dir := TagPendingTo, DirTo
		if m[1] == "f" {
			tag, dir = TagPendingFrom, DirFrom
		}
		var fe fieldErr
		id := fe.atoi("id", m[2])
		if m[4] == "match" {
			if pm := reMatchParams.FindStringSubmatch(strings.TrimSpace(m[5])); pm != nil {
				return MatchOffer{
					From:           tag,
					ID:             id,
					Direction:      dir,
					Player:         pm[1],
					PlayerRating:   offerRating(pm[2]),
					Opponent:       pm[4],
					OpponentRating: offerRating(pm[5]),
					Color:          pm[3],
					Rated:          pm[6],
					Category:       pm[7],
					InitialTime:    fe.atoi("initialTime", pm[8]),
					Increment:      fe.atoi("increment", pm[9]),
					Source:         pm[10],
					Adjourned:      pm[11] != "",
					Invalid:        fe.invalid,
				}
			}
		}
		return GenericOffer{From: tag, ID: id, Direction: dir, Subtype: m[4], Params: m[5]}

	case strings.HasPrefix(line, "<s>") || strings.HasPrefix(line, "<sn>"):
		m := reSeekLine.FindStringSubmatch(line)
		if m == nil {
			return nil
		}
		tag, dir := TagSeek, DirFrom
		if m[1] == "n" {
			tag, dir = TagSeekOwn, DirTo
		}
		var fe fieldErr
		code, err := strconv.ParseInt(m[4], 16, 32)
		if err != nil {
			fe.invalid = append(fe.invalid, "titleCode")
		}
		return SeekAd{
			From:        tag,
			ID:          fe.atoi("id", m[2]),
			Direction:   dir,
			Player:      m[3],
			Title:       titleForCode(int(code)),
			Rating:      seekRating(m[5]),
			InitialTime: fe.atoi("initialTime", m[6]),
			Increment:   fe.atoi("increment", m[7]),
			Rated:       m[8],
			Category:    m[9],
			Color:       m[10],
			RatingRange: m[11],
			Automatic:   m[12] == "t",
			Formula:     m[13] == "t",
			Invalid:     fe.invalid,
		}

	case strings.HasPrefix(line, "<pr>") || strings.HasPrefix(line, "<sr>"):
		m := reIDLine.FindStringSubmatch(line)
		if m == nil {
			return nil
		}
		what := PendingRemovedIDs
		if m[1] == "sr" {
			what = SeekRemovedIDs
		}
		var ids []int
		for _, tok := range strings.Fields(m[2]) {
			if n, err := strconv.Atoi(tok); err == nil {
				ids = append(ids, n)
			}
		}
		return IDList{What: what, IDs: ids}
	}
	return nil
}

// seekRating maps the "0P" unrated marker to empty and strips the
// provisional/estimated suffix from everything else.
func seekRating(raw string) string {
	if raw == "0P" {
		return ""
	}
	return strings.TrimRight(raw, "PE")
}

// offerRating maps the all-dashes unrated marker to empty.
func offerRating(raw string) string {
	if strings.Trim(raw, "-") == "" {
		return ""
	}
	return raw
}
