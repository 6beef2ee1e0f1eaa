package fics

import (
	"regexp"
	"strconv"
	"strings"
)

// MoveDescriptor is the verbose form of the previous move, ready for a
// downstream move/SAN collaborator. Drop means the piece came from hand
// (origin literal "@@") and From is empty.
type MoveDescriptor struct {
	Piece     string
	From      string
	To        string
	Promotion string
	Drop      bool
}

// Board is one style12 position before FEN encoding. Ranks run 8 down to 1,
// eight characters each, '-' for an empty square.
type Board struct {
	Ranks          [8]string
	Turn           string // "W" or "B", as sent
	WhiteShort     bool
	WhiteLong      bool
	BlackShort     bool
	BlackLong      bool
	DoublePushFile int // 0-7, -1 when none
	HalfMoveClock  int
	FullMove       int
	Verbose        string // previous move, verbose form or "none"
	Pretty         string // previous move, SAN-like form or "none"
}

// FEN renders the position. Empty runs are length-encoded per rank (a run
// ending exactly at the 8th file still gets its count); castling is always a
// KQkq-ordered subset or "-"; the half-move clock is forced to 0 when the
// previous move is the literal "none" — the server reports 1 on the first
// Black-to-move position.
func (b *Board) FEN() string {
	ranks := make([]string, 0, 8)
	for _, r := range b.Ranks {
		ranks = append(ranks, encodeRank(r))
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(ranks, "/"))
	sb.WriteByte(' ')
	sb.WriteString(strings.ToLower(b.Turn))
	sb.WriteByte(' ')
	sb.WriteString(b.castleField())
	sb.WriteByte(' ')
	sb.WriteString(b.enPassantField())
	sb.WriteByte(' ')
	clock := b.HalfMoveClock
	if b.Verbose == "none" {
		clock = 0
	}
	sb.WriteString(strconv.Itoa(clock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.FullMove))
	return sb.String()
}

// Move decodes the previous move. Returns nil when there is none or the text
// matches no supported shape.
func (b *Board) Move() *MoveDescriptor {
	return decodeMove(b.Verbose, b.Pretty, b.Turn)
}

func encodeRank(rank string) string {
	var sb strings.Builder
	run := 0
	for i := 0; i < len(rank); i++ {
		if rank[i] == '-' {
			run++
			continue
		}
		if run > 0 {
			sb.WriteString(strconv.Itoa(run))
			run = 0
		}
		sb.WriteByte(rank[i])
	}
	if run > 0 {
		sb.WriteString(strconv.Itoa(run))
	}
	return sb.String()
}

func (b *Board) castleField() string {
	var sb strings.Builder
	if b.WhiteShort {
		sb.WriteByte('K')
	}
	if b.WhiteLong {
		sb.WriteByte('Q')
	}
	if b.BlackShort {
		sb.WriteByte('k')
	}
	if b.BlackLong {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// enPassantField converts the double-push file index to the capture target
// square. The push was made by the side that is no longer on move: White to
// move means Black just pushed (rank 6 target), Black to move means White
// just pushed (rank 3).
func (b *Board) enPassantField() string {
	if b.DoublePushFile < 0 || b.DoublePushFile > 7 {
		return "-"
	}
	file := string(rune('a' + b.DoublePushFile))
	if b.Turn == "W" {
		return file + "6"
	}
	return file + "3"
}

var reVerboseMove = regexp.MustCompile(`^([A-Za-z])/([a-h][1-8]|@@)-([a-h][1-8])(?:=([A-Za-z]))?$`)

func decodeMove(verbose, pretty, turn string) *MoveDescriptor {
	if m := reVerboseMove.FindStringSubmatch(verbose); m != nil {
		d := &MoveDescriptor{Piece: m[1], From: m[2], To: m[3], Promotion: m[4]}
		if d.From == "@@" {
			d.From = ""
			d.Drop = true
		}
		return d
	}
	// Castling arrives only in pretty form. The mover is the side not on move.
	rank := "1"
	if turn == "W" {
		rank = "8"
	}
	switch pretty {
	case "O-O":
		return &MoveDescriptor{Piece: "K", From: "e" + rank, To: "g" + rank}
	case "O-O-O":
		return &MoveDescriptor{Piece: "K", From: "e" + rank, To: "c" + rank}
	}
	return nil
}
