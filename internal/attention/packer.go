package attention

import (
	"sort"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

type interval struct {
	start time.Time
	end   time.Time
}

// slotPacker finds open slots on the day while respecting everything that
// stays where it is. Uncategorized items count as occupied time too: they
// are excluded from category analysis but not from the calendar.
type slotPacker struct {
	occupied []interval
	byID     map[string]interval
}

// newSlotPacker builds a packer over the day's items, minus any items that
// are themselves being moved.
func newSlotPacker(items []domain.ScheduledItem, excludeIDs map[string]bool) *slotPacker {
	p := &slotPacker{byID: make(map[string]interval, len(items))}
	for _, it := range items {
		iv := interval{start: it.StartTime, end: it.EndTime()}
		p.byID[it.ID] = iv
		if excludeIDs[it.ID] {
			continue
		}
		p.occupied = append(p.occupied, iv)
	}
	p.sortOccupied()
	return p
}

// exclude removes one item's block from the occupied set, for callers that
// decide item by item what moves.
func (p *slotPacker) exclude(id string) {
	iv, ok := p.byID[id]
	if !ok {
		return
	}
	for i, occ := range p.occupied {
		if occ == iv {
			p.occupied = append(p.occupied[:i], p.occupied[i+1:]...)
			break
		}
	}
}

// place returns the earliest open start at or after anchor that fits
// durMin minutes, then records the placement as occupied. Collisions push
// the candidate past the blocking item plus the standard buffer.
func (p *slotPacker) place(anchor time.Time, durMin int) time.Time {
	if durMin < 0 {
		durMin = 0
	}
	dur := time.Duration(durMin) * time.Minute

	cand := anchor
	for bumped := true; bumped; {
		bumped = false
		for _, occ := range p.occupied {
			if cand.Before(occ.end) && occ.start.Before(cand.Add(dur)) {
				cand = occ.end.Add(packBufferMin * time.Minute)
				bumped = true
			}
		}
	}

	p.occupied = append(p.occupied, interval{start: cand, end: cand.Add(dur)})
	p.sortOccupied()
	return cand
}

func (p *slotPacker) sortOccupied() {
	sort.Slice(p.occupied, func(i, j int) bool {
		return p.occupied[i].start.Before(p.occupied[j].start)
	})
}
