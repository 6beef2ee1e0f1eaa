package fics

// OfferTag is the angle-bracket token that introduced an offer line.
type OfferTag string

const (
	TagPendingTo   OfferTag = "pt"
	TagPendingFrom OfferTag = "pf"
	TagPendingGone OfferTag = "pr"
	TagSeek        OfferTag = "s"
	TagSeekClear   OfferTag = "sc"
	TagSeekOwn     OfferTag = "sn"
	TagSeekGone    OfferTag = "sr"
)

// Direction says whether a record was sent by us or offered to us.
type Direction string

const (
	DirTo   Direction = "to"
	DirFrom Direction = "from"
)

// OfferRecord is one parsed line of a tagged offer/seek block. Record ids are
// unique only within their tag namespace (pt/pf/pr vs s/sn/sr).
type OfferRecord interface {
	Tag() OfferTag
}

// MatchOffer is a pending match request (t=match).
type MatchOffer struct {
	From           OfferTag
	ID             int
	Direction      Direction
	Player         string
	PlayerRating   string
	Opponent       string
	OpponentRating string
	Color          string // empty when unspecified
	Rated          string // "rated" or "unrated"
	Category       string
	InitialTime    int
	Increment      int
	Source         string // optional "Loaded from" origin
	Adjourned      bool
	Invalid        []string
}

func (m MatchOffer) Tag() OfferTag { return m.From }

// GenericOffer covers the non-match pending subtypes (draw, abort, takeback...).
type GenericOffer struct {
	From      OfferTag
	ID        int
	Direction Direction
	Subtype   string
	Params    string
}

func (g GenericOffer) Tag() OfferTag { return g.From }

// SeekAd is one advertised seek.
type SeekAd struct {
	From        OfferTag
	ID          int
	Direction   Direction
	Player      string
	Title       string
	Rating      string // empty for the unrated "0P" marker
	InitialTime int
	Increment   int
	Rated       string // "r" or "u"
	Category    string
	Color       string
	RatingRange string
	Automatic   bool
	Formula     bool
	Invalid     []string
}

func (s SeekAd) Tag() OfferTag { return s.From }

// SeekCleared marks a bare <sc> line.
type SeekCleared struct{}

func (SeekCleared) Tag() OfferTag { return TagSeekClear }

// IDListKind names the two removal namespaces.
type IDListKind string

const (
	PendingRemovedIDs IDListKind = "pendingRemoved"
	SeekRemovedIDs    IDListKind = "seekRemoved"
)

// IDList is a <pr>/<sr> removal line.
type IDList struct {
	What IDListKind
	IDs  []int
}

func (l IDList) Tag() OfferTag {
	if l.What == PendingRemovedIDs {
		return TagPendingGone
	}
	return TagSeekGone
}

// Seek title codes as sent in the ti= field.
var titleByCode = map[int]string{
	0x0:  "",
	0x1:  "U",
	0x2:  "C",
	0x4:  "GM",
	0x8:  "IM",
	0x10: "FM",
	0x20: "WGM",
	0x40: "WIM",
	0x80: "WFM",
}

// titleForCode resolves a ti= value; combined bitmasks resolve to the lowest
// set bit, unknown codes to untitled.
func titleForCode(code int) string {
	if t, ok := titleByCode[code]; ok {
		return t
	}
	for bit := 1; bit <= 0x80; bit <<= 1 {
		if code&bit != 0 {
			return titleByCode[bit]
		}
	}
	return ""
}
