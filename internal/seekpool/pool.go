// Package seekpool keeps the live view of advertised seeks and pending
// offers. It is a pure consumer of decoder events: feed it every event and
// read back the current tables.
package seekpool

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/kapu/ficsline/internal/fics"
)

// Pool is safe for concurrent use. Seek ids and pending ids live in separate
// namespaces, matching the server's numbering.
type Pool struct {
	mu      sync.RWMutex
	seeks   map[int]fics.SeekAd
	pending map[int]fics.OfferRecord
	logger  *zap.Logger
}

func New(logger *zap.Logger) *Pool {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pool{
		seeks:   make(map[int]fics.SeekAd),
		pending: make(map[int]fics.OfferRecord),
		logger:  logger,
	}
}

// Apply folds one decoder event into the tables. Events that do not concern
// seeks or offers are ignored, so the whole stream can be piped through.
func (p *Pool) Apply(ev fics.Event) {
	switch e := ev.(type) {
	case fics.OfferBlock:
		p.applyBlock(e)
	case fics.SeekRemoved:
		p.mu.Lock()
		if e.Cleared {
			p.seeks = make(map[int]fics.SeekAd)
		} else {
			for _, id := range e.IDs {
				delete(p.seeks, id)
			}
		}
		p.mu.Unlock()
	}
}

func (p *Pool) applyBlock(block fics.OfferBlock) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, rec := range block.Offers {
		switch r := rec.(type) {
		case fics.SeekAd:
			p.seeks[r.ID] = r
		case fics.SeekCleared:
			p.seeks = make(map[int]fics.SeekAd)
		case fics.MatchOffer:
			p.pending[r.ID] = r
		case fics.GenericOffer:
			p.pending[r.ID] = r
		case fics.IDList:
			switch r.What {
			case fics.SeekRemovedIDs:
				for _, id := range r.IDs {
					delete(p.seeks, id)
				}
			case fics.PendingRemovedIDs:
				for _, id := range r.IDs {
					delete(p.pending, id)
				}
			}
		default:
			p.logger.Debug("seekpool_unhandled_record", zap.String("tag", string(rec.Tag())))
		}
	}
}

// Seeks returns the live seek ads ordered by id.
func (p *Pool) Seeks() []fics.SeekAd {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]fics.SeekAd, 0, len(p.seeks))
	for _, s := range p.seeks {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Pending returns the open offers ordered by id.
func (p *Pool) Pending() []fics.OfferRecord {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]int, 0, len(p.pending))
	for id := range p.pending {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]fics.OfferRecord, 0, len(ids))
	for _, id := range ids {
		out = append(out, p.pending[id])
	}
	return out
}

// Seek looks up one ad by id.
func (p *Pool) Seek(id int) (fics.SeekAd, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	s, ok := p.seeks[id]
	return s, ok
}

func (p *Pool) SeekCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.seeks)
}

func (p *Pool) PendingCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.pending)
}
