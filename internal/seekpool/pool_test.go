package seekpool

import (
	"testing"

	"github.com/kapu/ficsline/internal/fics"
)

func seek(id int, player string) fics.SeekAd {
	return fics.SeekAd{From: fics.TagSeek, ID: id, Direction: fics.DirFrom, Player: player}
}

func TestPoolSeekLifecycle(t *testing.T) {
	p := New(nil)

	p.Apply(fics.OfferBlock{Offers: []fics.OfferRecord{
		seek(11, "alice"),
		seek(7, "bob"),
	}})
	if got := p.SeekCount(); got != 2 {
		t.Fatalf("seek count = %d, want 2", got)
	}

	seeks := p.Seeks()
	if seeks[0].ID != 7 || seeks[1].ID != 11 {
		t.Fatalf("seeks not ordered by id: %v", seeks)
	}

	// Re-advertising the same id replaces the entry.
	p.Apply(fics.OfferBlock{Offers: []fics.OfferRecord{seek(7, "carol")}})
	if s, ok := p.Seek(7); !ok || s.Player != "carol" {
		t.Fatalf("seek 7 not replaced: %+v ok=%v", s, ok)
	}

	p.Apply(fics.OfferBlock{Offers: []fics.OfferRecord{
		fics.IDList{What: fics.SeekRemovedIDs, IDs: []int{7}},
	}})
	if _, ok := p.Seek(7); ok {
		t.Fatal("seek 7 still present after removal")
	}
	if got := p.SeekCount(); got != 1 {
		t.Fatalf("seek count = %d, want 1", got)
	}
}

func TestPoolSeekClearedWipesTable(t *testing.T) {
	p := New(nil)
	p.Apply(fics.OfferBlock{Offers: []fics.OfferRecord{seek(1, "a"), seek(2, "b")}})

	p.Apply(fics.OfferBlock{Offers: []fics.OfferRecord{fics.SeekCleared{}}})
	if got := p.SeekCount(); got != 0 {
		t.Fatalf("seek count after <sc> = %d, want 0", got)
	}
}

func TestPoolSeekRemovedBanner(t *testing.T) {
	p := New(nil)
	p.Apply(fics.OfferBlock{Offers: []fics.OfferRecord{seek(3, "a"), seek(4, "b")}})

	p.Apply(fics.SeekRemoved{IDs: []int{3}})
	if _, ok := p.Seek(3); ok {
		t.Fatal("seek 3 survived removal banner")
	}

	p.Apply(fics.SeekRemoved{Cleared: true})
	if got := p.SeekCount(); got != 0 {
		t.Fatalf("seek count after clear banner = %d, want 0", got)
	}
}

func TestPoolPendingOffers(t *testing.T) {
	p := New(nil)

	p.Apply(fics.OfferBlock{Offers: []fics.OfferRecord{
		fics.MatchOffer{From: fics.TagPendingFrom, ID: 5, Direction: fics.DirFrom, Player: "bob", Opponent: "me"},
		fics.GenericOffer{From: fics.TagPendingTo, ID: 9, Direction: fics.DirTo, Subtype: "draw"},
	}})
	if got := p.PendingCount(); got != 2 {
		t.Fatalf("pending count = %d, want 2", got)
	}

	pending := p.Pending()
	if mo, ok := pending[0].(fics.MatchOffer); !ok || mo.ID != 5 {
		t.Fatalf("expected match offer 5 first, got %#v", pending[0])
	}

	p.Apply(fics.OfferBlock{Offers: []fics.OfferRecord{
		fics.IDList{What: fics.PendingRemovedIDs, IDs: []int{5, 9}},
	}})
	if got := p.PendingCount(); got != 0 {
		t.Fatalf("pending count after <pr> = %d, want 0", got)
	}
}

func TestPoolIgnoresUnrelatedEvents(t *testing.T) {
	p := New(nil)
	p.Apply(fics.PlainText{Text: "fics% "})
	p.Apply(fics.ChannelTell{Channel: 50, User: "x", Text: "hi"})
	if p.SeekCount() != 0 || p.PendingCount() != 0 {
		t.Fatal("unrelated events changed pool state")
	}
}
