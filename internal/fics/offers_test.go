package fics

import "testing"

func TestSeekAdLine(t *testing.T) {
	ev := decodeOne(t, "<s> 5 w=bob ti=0 rt=1900 t=5 i=0 r=u tp=blitz c=? rr=0-9999 a=t f=f")
	ob, ok := ev.(OfferBlock)
	if !ok || len(ob.Offers) != 1 {
		t.Fatalf("expected one offer, got %#v", ev)
	}
	ad, ok := ob.Offers[0].(SeekAd)
	if !ok {
		t.Fatalf("expected SeekAd, got %#v", ob.Offers[0])
	}
	if ad.ID != 5 || ad.Player != "bob" || ad.Rating != "1900" {
		t.Fatalf("seek header wrong: %+v", ad)
	}
	if ad.InitialTime != 5 || ad.Increment != 0 || ad.Rated != "u" || ad.Category != "blitz" {
		t.Fatalf("seek params wrong: %+v", ad)
	}
	if ad.Color != "?" || ad.RatingRange != "0-9999" || !ad.Automatic || ad.Formula {
		t.Fatalf("seek flags wrong: %+v", ad)
	}
}

func TestSeekAdTitleAndUnratedMarker(t *testing.T) {
	ob := decodeOne(t, "<s> 9 w=carol ti=10 rt=0P t=15 i=5 r=r tp=standard c=W rr=1800-2200 a=f f=t").(OfferBlock)
	ad := ob.Offers[0].(SeekAd)
	if ad.Title != "FM" {
		t.Fatalf("ti=10 (hex) should resolve to FM, got %q", ad.Title)
	}
	if ad.Rating != "" {
		t.Fatalf("0P rating should map to empty, got %q", ad.Rating)
	}
	if !ad.Formula || ad.Automatic {
		t.Fatalf("flags wrong: %+v", ad)
	}
}

func TestOwnSeekDirection(t *testing.T) {
	ob := decodeOne(t, "<sn> 17 w=tester ti=0 rt=1500 t=3 i=2 r=r tp=blitz c=? rr=0-9999 a=t f=f").(OfferBlock)
	ad := ob.Offers[0].(SeekAd)
	if ad.Tag() != TagSeekOwn || ad.Direction != DirTo {
		t.Fatalf("own seek direction wrong: %+v", ad)
	}
}

func TestMatchOffer(t *testing.T) {
	ob := decodeOne(t, "<pf> 3 w=alice t=match p=alice (1820) [black] bob (1750) rated blitz 5 2").(OfferBlock)
	mo, ok := ob.Offers[0].(MatchOffer)
	if !ok {
		t.Fatalf("expected MatchOffer, got %#v", ob.Offers[0])
	}
	if mo.ID != 3 || mo.Direction != DirFrom || mo.Player != "alice" || mo.Opponent != "bob" {
		t.Fatalf("match offer header wrong: %+v", mo)
	}
	if mo.PlayerRating != "1820" || mo.OpponentRating != "1750" || mo.Color != "black" {
		t.Fatalf("ratings/color wrong: %+v", mo)
	}
	if mo.Rated != "rated" || mo.Category != "blitz" || mo.InitialTime != 5 || mo.Increment != 2 || mo.Adjourned {
		t.Fatalf("params wrong: %+v", mo)
	}
}

func TestMatchOfferAdjourned(t *testing.T) {
	ob := decodeOne(t, "<pt> 4 w=bob t=match p=bob (----) alice (----) unrated standard 15 0 (adjourned)").(OfferBlock)
	mo := ob.Offers[0].(MatchOffer)
	if !mo.Adjourned || mo.Direction != DirTo || mo.PlayerRating != "" {
		t.Fatalf("adjourned offer wrong: %+v", mo)
	}
}

func TestGenericOffer(t *testing.T) {
	ob := decodeOne(t, "<pf> 8 w=bob t=draw p=").(OfferBlock)
	g, ok := ob.Offers[0].(GenericOffer)
	if !ok || g.Subtype != "draw" || g.ID != 8 {
		t.Fatalf("generic offer wrong: %#v", ob.Offers[0])
	}
}

func TestRemovalAndClearLines(t *testing.T) {
	ob := decodeOne(t, "<pr> 3 8").(OfferBlock)
	l := ob.Offers[0].(IDList)
	if l.What != PendingRemovedIDs || len(l.IDs) != 2 || l.IDs[0] != 3 || l.IDs[1] != 8 {
		t.Fatalf("pr list wrong: %+v", l)
	}

	ob = decodeOne(t, "<sr> 5 17").(OfferBlock)
	l = ob.Offers[0].(IDList)
	if l.What != SeekRemovedIDs || len(l.IDs) != 2 {
		t.Fatalf("sr list wrong: %+v", l)
	}

	ob = decodeOne(t, "<sc>").(OfferBlock)
	if _, ok := ob.Offers[0].(SeekCleared); !ok {
		t.Fatalf("expected SeekCleared, got %#v", ob.Offers[0])
	}
}

func TestLeadingTextSplitsOffBlock(t *testing.T) {
	_, evs := DecodeString(authedState(), "You have 2 offers pending.\n<pr> 3", nil)
	if len(evs) != 2 {
		t.Fatalf("expected PlainText+OfferBlock, got %v", evs)
	}
	if _, ok := evs[0].(PlainText); !ok {
		t.Fatalf("expected leading PlainText, got %#v", evs[0])
	}
	if _, ok := evs[1].(OfferBlock); !ok {
		t.Fatalf("expected OfferBlock, got %#v", evs[1])
	}
}

func TestUnmatchedBlockLinesDropped(t *testing.T) {
	ob := decodeOne(t, "<pr> 3\n<pt> garbage that does not parse\n<sr> 9").(OfferBlock)
	if len(ob.Offers) != 2 {
		t.Fatalf("garbage line should be dropped: %+v", ob.Offers)
	}
}

func TestSeekRemovalBanners(t *testing.T) {
	ev := decodeOne(t, "Your seek 5 has been removed.")
	sr, ok := ev.(SeekRemoved)
	if !ok || sr.Cleared || len(sr.IDs) != 1 || sr.IDs[0] != 5 {
		t.Fatalf("single removal wrong: %#v", ev)
	}
	ev = decodeOne(t, "Your seeks have been removed.")
	sr, ok = ev.(SeekRemoved)
	if !ok || !sr.Cleared {
		t.Fatalf("clear-all wrong: %#v", ev)
	}
}
