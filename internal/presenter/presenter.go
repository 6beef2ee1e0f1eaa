// Package presenter turns decoded events into display lines without coupling
// the decoder to any output device.
package presenter

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kapu/ficsline/internal/fics"
	"github.com/kapu/ficsline/internal/msgcat"
)

// Presenter renders events through the message catalog and hands the result
// to an output callback, one line per call.
type Presenter struct {
	catalog *msgcat.Catalog
	output  func(line string)
	logger  *zap.Logger
}

func New(catalog *msgcat.Catalog, output func(line string), logger *zap.Logger) *Presenter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Presenter{catalog: catalog, output: output, logger: logger}
}

// Present renders one event. Render failures fall back to a plain dump so the
// stream never goes silent over a bad template.
func (p *Presenter) Present(ev fics.Event) {
	if p == nil || p.output == nil {
		return
	}
	for _, line := range p.lines(ev) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		p.output(line)
	}
}

func (p *Presenter) lines(ev fics.Event) []string {
	switch e := ev.(type) {
	case fics.LoginPrompt:
		if e.Prompt == fics.LoginNeedPassword {
			return []string{p.render("event.login_need_password", nil, e.Text)}
		}
		return []string{p.render("event.login_error", map[string]any{"Text": e.Text}, e.Text)}

	case fics.LoginResult:
		if e.OK {
			return []string{p.render("event.login_ok", map[string]any{"Username": e.Username}, "")}
		}
		return []string{p.render("event.login_failed", map[string]any{"Error": e.ErrorText}, e.ErrorText)}

	case fics.BoardUpdate:
		head := p.render("event.board_update", map[string]any{
			"GameID":     e.GameID,
			"White":      e.White,
			"Black":      e.Black,
			"MoveNo":     e.MoveNo,
			"SideToMove": sideName(e.Turn),
			"PrettyMove": e.PrettyMove,
		}, "")
		fen := p.render("event.board_fen", map[string]any{"FEN": e.FEN}, e.FEN)
		return []string{head, fen}

	case fics.HoldingsUpdate:
		return []string{p.render("event.holdings", map[string]any{
			"GameID":   e.GameID,
			"White":    e.WhiteHolding,
			"Black":    e.BlackHolding,
			"NewPiece": e.NewPiece,
		}, "")}

	case fics.GameStart:
		return []string{p.render("event.game_start", map[string]any{
			"GameID":  e.GameID,
			"PlayerA": e.PlayerA,
			"PlayerB": e.PlayerB,
		}, "")}

	case fics.GameEnd:
		return []string{p.render("event.game_end", map[string]any{
			"GameID": e.GameID,
			"Raw":    e.Raw,
			"Score":  e.Score,
		}, e.Raw)}

	case fics.ChannelTell:
		return []string{p.render("event.channel_tell", map[string]any{
			"Channel": e.Channel,
			"User":    e.User,
			"Text":    e.Text,
		}, "")}

	case fics.PrivateTell:
		return []string{p.render("event.private_tell", map[string]any{
			"User": e.User,
			"Text": e.Text,
		}, "")}

	case fics.RoomUtterance:
		key := "event.kibitz"
		if e.What == fics.Whisper {
			key = "event.whisper"
		}
		return []string{p.render(key, map[string]any{
			"GameID": e.GameID,
			"User":   e.User,
			"Text":   e.Text,
		}, "")}

	case fics.MailBlock:
		return []string{p.render("event.mail_block", map[string]any{
			"What":  e.What,
			"Count": len(e.Entries),
		}, "")}

	case fics.OfferBlock:
		return p.offerLines(e)

	case fics.SeekRemoved:
		if e.Cleared {
			return []string{p.render("event.seek_cleared", nil, "")}
		}
		return []string{p.render("event.seek_removed", map[string]any{"IDs": idsText(e.IDs)}, "")}

	case fics.PlainText:
		return []string{p.render("event.plain_text", map[string]any{"Text": e.Text}, e.Text)}
	}
	return nil
}

func (p *Presenter) offerLines(block fics.OfferBlock) []string {
	var out []string
	for _, rec := range block.Offers {
		switch r := rec.(type) {
		case fics.SeekAd:
			ratedText := "unrated"
			if r.Rated == "r" {
				ratedText = "rated"
			}
			out = append(out, p.render("event.seek_ad", map[string]any{
				"ID":        r.ID,
				"Player":    r.Player,
				"Title":     r.Title,
				"Rating":    r.Rating,
				"Time":      r.InitialTime,
				"Inc":       r.Increment,
				"RatedText": ratedText,
				"Category":  r.Category,
			}, ""))
		case fics.SeekCleared:
			out = append(out, p.render("event.seek_cleared", nil, ""))
		case fics.IDList:
			if r.What == fics.SeekRemovedIDs {
				out = append(out, p.render("event.seek_removed", map[string]any{"IDs": idsText(r.IDs)}, ""))
			}
		}
	}
	if len(out) == 0 {
		out = append(out, p.render("event.offer_block", map[string]any{"Count": len(block.Offers)}, ""))
	}
	return out
}

func (p *Presenter) render(key string, data map[string]any, fallback string) string {
	out, err := p.catalog.Render(key, data)
	if err != nil {
		p.logger.Warn("render_failed", zap.String("key", key), zap.Error(err))
		return fallback
	}
	return out
}

func sideName(turn string) string {
	if turn == "b" {
		return "black"
	}
	return "white"
}

func idsText(ids []int) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("%d", id))
	}
	return strings.Join(parts, ", ")
}
