package fics

// Reason classifies why a game ended. Computed once per GameEnd.
type Reason int

const (
	ReasonUnknown Reason = iota
	ReasonResign
	ReasonDisconnect
	ReasonCheckmate
	ReasonTimeForfeit
	ReasonDraw
	ReasonAdjourn
	ReasonAbort
	ReasonPartnerWon
)

var reasonNames = map[Reason]string{
	ReasonUnknown:     "unknown",
	ReasonResign:      "resign",
	ReasonDisconnect:  "disconnect",
	ReasonCheckmate:   "checkmate",
	ReasonTimeForfeit: "time_forfeit",
	ReasonDraw:        "draw",
	ReasonAdjourn:     "adjourn",
	ReasonAbort:       "abort",
	ReasonPartnerWon:  "partner_won",
}

func (r Reason) String() string {
	if s, ok := reasonNames[r]; ok {
		return s
	}
	return "unknown"
}
