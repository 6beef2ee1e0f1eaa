// Package ficsdto is the external JSON shape of decoded server events. The
// internal event types stay free to change; this package is the contract the
// status endpoint and other consumers see.
package ficsdto

import "time"

// Envelope wraps one decoded event. Exactly one payload pointer is set,
// matching Kind.
type Envelope struct {
	Kind string    `json:"kind"`
	At   time.Time `json:"at"`

	LoginPrompt *LoginPrompt `json:"login_prompt,omitempty"`
	LoginResult *LoginResult `json:"login_result,omitempty"`
	Board       *Board       `json:"board,omitempty"`
	Holdings    *Holdings    `json:"holdings,omitempty"`
	GameStart   *GameStart   `json:"game_start,omitempty"`
	GameEnd     *GameEnd     `json:"game_end,omitempty"`
	Tell        *Tell        `json:"tell,omitempty"`
	Utterance   *Utterance   `json:"utterance,omitempty"`
	Mail        *Mail        `json:"mail,omitempty"`
	Offers      *Offers      `json:"offers,omitempty"`
	SeekRemoved *SeekRemoved `json:"seek_removed,omitempty"`
	Text        *Text        `json:"text,omitempty"`
}

type LoginPrompt struct {
	Prompt string `json:"prompt"`
	Text   string `json:"text"`
}

type LoginResult struct {
	OK       bool   `json:"ok"`
	Username string `json:"username,omitempty"`
	Error    string `json:"error,omitempty"`
}

type Board struct {
	FEN          string `json:"fen"`
	Turn         string `json:"turn"`
	GameID       int    `json:"game_id"`
	White        string `json:"white"`
	Black        string `json:"black"`
	WhiteRating  string `json:"white_rating,omitempty"`
	BlackRating  string `json:"black_rating,omitempty"`
	WhiteClockMS int    `json:"white_clock_ms"`
	BlackClockMS int    `json:"black_clock_ms"`
	MoveNo       int    `json:"move_no"`
	LastMove     string `json:"last_move,omitempty"`
	Flip         bool   `json:"flip,omitempty"`

	// numeric source fields that failed to parse
	Invalid []string `json:"invalid,omitempty"`
}

type Holdings struct {
	GameID   int    `json:"game_id"`
	White    string `json:"white"`
	Black    string `json:"black"`
	NewPiece string `json:"new_piece,omitempty"`
}

type GameStart struct {
	GameID  int    `json:"game_id"`
	PlayerA string `json:"player_a"`
	PlayerB string `json:"player_b"`
}

type GameEnd struct {
	GameID int    `json:"game_id"`
	Winner string `json:"winner,omitempty"`
	Loser  string `json:"loser,omitempty"`
	Reason string `json:"reason"`
	Score  string `json:"score,omitempty"`
	Raw    string `json:"raw"`
}

// Tell covers channel and private tells; Channel is 0 for private.
type Tell struct {
	Channel int    `json:"channel,omitempty"`
	User    string `json:"user"`
	Text    string `json:"text"`
}

type Utterance struct {
	GameID int    `json:"game_id"`
	User   string `json:"user"`
	What   string `json:"what"` // kibitz or whisper
	Suffix string `json:"suffix,omitempty"`
	Text   string `json:"text"`
}

type MailEntry struct {
	ID       int    `json:"id"`
	User     string `json:"user"`
	DateTime string `json:"date_time,omitempty"`
	Text     string `json:"text"`
}

type Mail struct {
	What    string      `json:"what"`
	Entries []MailEntry `json:"entries"`
}

type SeekAd struct {
	ID          int    `json:"id"`
	Player      string `json:"player"`
	Title       string `json:"title,omitempty"`
	Rating      string `json:"rating,omitempty"`
	InitialTime int    `json:"initial_time"`
	Increment   int    `json:"increment"`
	Rated       bool   `json:"rated"`
	Category    string `json:"category"`
	Color       string `json:"color,omitempty"`
	RatingRange string `json:"rating_range,omitempty"`
	Automatic   bool   `json:"automatic"`
	Formula     bool   `json:"formula"`
	Own         bool   `json:"own,omitempty"`
}

type PendingOffer struct {
	ID        int    `json:"id"`
	Direction string `json:"direction"` // to or from
	Subtype   string `json:"subtype"`
	Player    string `json:"player,omitempty"`
	Opponent  string `json:"opponent,omitempty"`
	Detail    string `json:"detail,omitempty"`
}

type Offers struct {
	Seeks      []SeekAd       `json:"seeks,omitempty"`
	Pending    []PendingOffer `json:"pending,omitempty"`
	RemovedIDs []int          `json:"removed_ids,omitempty"`
	Cleared    bool           `json:"cleared,omitempty"`
}

type SeekRemoved struct {
	IDs     []int `json:"ids,omitempty"`
	Cleared bool  `json:"cleared,omitempty"`
}

type Text struct {
	Text string `json:"text"`
}
