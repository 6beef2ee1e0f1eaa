package presenter

import (
	"time"

	"github.com/kapu/ficsline/internal/fics"
	"github.com/kapu/ficsline/pkg/ficsdto"
)

// ToEnvelope maps an internal event to its wire DTO. Unknown event types
// degrade to a text payload so consumers never lose stream entries.
func ToEnvelope(ev fics.Event, at time.Time) ficsdto.Envelope {
	env := ficsdto.Envelope{Kind: string(ev.Kind()), At: at}

	switch e := ev.(type) {
	case fics.LoginPrompt:
		env.LoginPrompt = &ficsdto.LoginPrompt{Prompt: string(e.Prompt), Text: e.Text}
	case fics.LoginResult:
		env.LoginResult = &ficsdto.LoginResult{OK: e.OK, Username: e.Username, Error: e.ErrorText}
	case fics.BoardUpdate:
		env.Board = &ficsdto.Board{
			FEN:          e.FEN,
			Turn:         e.Turn,
			GameID:       e.GameID,
			White:        e.White,
			Black:        e.Black,
			WhiteRating:  e.WhiteRating,
			BlackRating:  e.BlackRating,
			WhiteClockMS: e.WhiteClockMS,
			BlackClockMS: e.BlackClockMS,
			MoveNo:       e.MoveNo,
			LastMove:     e.PrettyMove,
			Flip:         e.Flip,
			Invalid:      e.Invalid,
		}
	case fics.HoldingsUpdate:
		env.Holdings = &ficsdto.Holdings{
			GameID:   e.GameID,
			White:    e.WhiteHolding,
			Black:    e.BlackHolding,
			NewPiece: e.NewPiece,
		}
	case fics.GameStart:
		env.GameStart = &ficsdto.GameStart{GameID: e.GameID, PlayerA: e.PlayerA, PlayerB: e.PlayerB}
	case fics.GameEnd:
		env.GameEnd = &ficsdto.GameEnd{
			GameID: e.GameID,
			Winner: e.Winner,
			Loser:  e.Loser,
			Reason: e.Reason.String(),
			Score:  e.Score,
			Raw:    e.Raw,
		}
	case fics.ChannelTell:
		env.Tell = &ficsdto.Tell{Channel: e.Channel, User: e.User, Text: e.Text}
	case fics.PrivateTell:
		env.Tell = &ficsdto.Tell{User: e.User, Text: e.Text}
	case fics.RoomUtterance:
		env.Utterance = &ficsdto.Utterance{
			GameID: e.GameID,
			User:   e.User,
			What:   string(e.What),
			Suffix: e.Suffix,
			Text:   e.Text,
		}
	case fics.MailBlock:
		m := &ficsdto.Mail{What: e.What, Entries: make([]ficsdto.MailEntry, 0, len(e.Entries))}
		for _, entry := range e.Entries {
			m.Entries = append(m.Entries, ficsdto.MailEntry{
				ID:       entry.ID,
				User:     entry.User,
				DateTime: entry.DateTime,
				Text:     entry.Text,
			})
		}
		env.Mail = m
	case fics.OfferBlock:
		env.Offers = offersDTO(e)
	case fics.SeekRemoved:
		env.SeekRemoved = &ficsdto.SeekRemoved{IDs: e.IDs, Cleared: e.Cleared}
	case fics.PlainText:
		env.Text = &ficsdto.Text{Text: e.Text}
	default:
		env.Text = &ficsdto.Text{}
	}
	return env
}

func offersDTO(block fics.OfferBlock) *ficsdto.Offers {
	out := &ficsdto.Offers{}
	for _, rec := range block.Offers {
		switch r := rec.(type) {
		case fics.SeekAd:
			out.Seeks = append(out.Seeks, SeekAdDTO(r))
		case fics.SeekCleared:
			out.Cleared = true
		case fics.MatchOffer:
			out.Pending = append(out.Pending, ficsdto.PendingOffer{
				ID:        r.ID,
				Direction: string(r.Direction),
				Subtype:   "match",
				Player:    r.Player,
				Opponent:  r.Opponent,
				Detail:    matchDetail(r),
			})
		case fics.GenericOffer:
			out.Pending = append(out.Pending, ficsdto.PendingOffer{
				ID:        r.ID,
				Direction: string(r.Direction),
				Subtype:   r.Subtype,
				Detail:    r.Params,
			})
		case fics.IDList:
			out.RemovedIDs = append(out.RemovedIDs, r.IDs...)
		}
	}
	return out
}

// SeekAdDTO converts one seek ad; the seek list endpoint reuses it.
func SeekAdDTO(s fics.SeekAd) ficsdto.SeekAd {
	return ficsdto.SeekAd{
		ID:          s.ID,
		Player:      s.Player,
		Title:       s.Title,
		Rating:      s.Rating,
		InitialTime: s.InitialTime,
		Increment:   s.Increment,
		Rated:       s.Rated == "r",
		Category:    s.Category,
		Color:       colorName(s.Color),
		RatingRange: s.RatingRange,
		Automatic:   s.Automatic,
		Formula:     s.Formula,
		Own:         s.From == fics.TagSeekOwn,
	}
}

func matchDetail(m fics.MatchOffer) string {
	detail := m.Category
	if m.Rated != "" {
		detail = m.Rated + " " + detail
	}
	if m.Adjourned {
		detail += " (adjourned)"
	}
	return detail
}

func colorName(c string) string {
	switch c {
	case "W":
		return "white"
	case "B":
		return "black"
	default:
		return ""
	}
}
