// Package fics decodes the line-oriented FICS-style server protocol into
// typed events. The decoder is synchronous and holds no I/O: it maps
// (State, chunk) to (State, []Event) plus at most a couple of writes on the
// caller-supplied send callback (login echo, keep-alive ack).
package fics

// EventKind identifies a decoded message shape.
type EventKind string

const (
	KindLoginPrompt   EventKind = "login_prompt"
	KindLoginResult   EventKind = "login_result"
	KindBoardUpdate   EventKind = "board_update"
	KindHoldings      EventKind = "holdings"
	KindGameStart     EventKind = "game_start"
	KindGameEnd       EventKind = "game_end"
	KindChannelTell   EventKind = "channel_tell"
	KindPrivateTell   EventKind = "private_tell"
	KindRoomUtterance EventKind = "room_utterance"
	KindMailBlock     EventKind = "mail_block"
	KindOfferBlock    EventKind = "offer_block"
	KindSeekRemoved   EventKind = "seek_removed"
	KindPlainText     EventKind = "plain_text"
)

// Event is one decoded server message. Unrecognized input degrades to
// PlainText; a non-empty chunk never yields a mix of events and leftover text.
type Event interface {
	Kind() EventKind
}

// PromptKind distinguishes the login prompts surfaced to the caller.
type PromptKind string

const (
	LoginError        PromptKind = "error"
	LoginNeedPassword PromptKind = "need_password"
)

type LoginPrompt struct {
	Prompt PromptKind
	Text   string
}

func (LoginPrompt) Kind() EventKind { return KindLoginPrompt }

type LoginResult struct {
	OK        bool
	Username  string
	ErrorText string
}

func (LoginResult) Kind() EventKind { return KindLoginResult }

// BoardUpdate carries one style12 position. Invalid lists the names of
// numeric fields that failed to parse; the event is still emitted.
type BoardUpdate struct {
	FEN          string
	Turn         string // "w" or "b"
	GameID       int
	White        string
	Black        string
	WhiteRating  string
	BlackRating  string
	WhiteClockMS int
	BlackClockMS int
	MoveNo       int
	VerboseMove  *MoveDescriptor
	PrevMoveTime string
	PrettyMove   string
	Flip         bool
	Invalid      []string
}

func (BoardUpdate) Kind() EventKind { return KindBoardUpdate }

// HoldingsUpdate is the crazyhouse/bughouse piece-in-hand line.
type HoldingsUpdate struct {
	GameID       int
	WhiteHolding string
	BlackHolding string
	NewPiece     string
}

func (HoldingsUpdate) Kind() EventKind { return KindHoldings }

type GameStart struct {
	GameID  int
	PlayerA string
	PlayerB string
}

func (GameStart) Kind() EventKind { return KindGameStart }

type GameEnd struct {
	GameID int
	Winner string
	Loser  string
	Reason Reason
	Score  string
	Raw    string
}

func (GameEnd) Kind() EventKind { return KindGameEnd }

type ChannelTell struct {
	Channel int
	User    string
	Text    string
}

func (ChannelTell) Kind() EventKind { return KindChannelTell }

type PrivateTell struct {
	User string
	Text string
}

func (PrivateTell) Kind() EventKind { return KindPrivateTell }

// UtteranceKind is the in-game chat flavor.
type UtteranceKind string

const (
	Kibitz  UtteranceKind = "kibitz"
	Whisper UtteranceKind = "whisper"
)

// RoomUtterance is a kibitz or whisper scoped to one observed game.
type RoomUtterance struct {
	GameID int
	User   string
	What   UtteranceKind
	Suffix string // rating bracket as sent, e.g. "1833" or "----"
	Text   string
}

func (RoomUtterance) Kind() EventKind { return KindRoomUtterance }

type MailEntry struct {
	ID       int
	User     string
	DateTime string
	Text     string
}

type MailBlock struct {
	What    string // "messages", "received" or "sent"
	Entries []MailEntry
	Raw     string
}

func (MailBlock) Kind() EventKind { return KindMailBlock }

type OfferBlock struct {
	Offers []OfferRecord
}

func (OfferBlock) Kind() EventKind { return KindOfferBlock }

// SeekRemoved normalizes the "your seek has been removed" banners. Cleared
// means the whole seek list is gone rather than individual ids.
type SeekRemoved struct {
	IDs     []int
	Cleared bool
}

func (SeekRemoved) Kind() EventKind { return KindSeekRemoved }

type PlainText struct {
	Text string
}

func (PlainText) Kind() EventKind { return KindPlainText }
