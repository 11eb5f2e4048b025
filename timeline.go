package lifecast

import (
	"fmt"
	"iter"

	"github.com/lifecast/lifecast/date"
)

// Period identifies one discrete time slot within a simulation horizon.
// It is the index of a calendar period on the Timeline, starting at 0,
// and the universal join key across all series.
type Period int

// Timeline is the canonical ordered sequence of calendar periods for a
// simulation run. It is built once per run and immutable thereafter: every
// rate series and cashflow series is aligned to it.
type Timeline struct {
	granularity date.Period
	ranges      []date.Range
}

// NewTimeline builds a timeline covering every period of the given
// granularity from the one containing `from` to the one containing `to`,
// inclusive. It wraps ErrInvalidRange when `to` precedes `from`.
func NewTimeline(from, to date.Date, granularity date.Period) (*Timeline, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: end %s precedes start %s", ErrInvalidRange, to, from)
	}
	tl := &Timeline{granularity: granularity}
	for d := from.StartOf(granularity); !d.After(to); d = d.EndOf(granularity).Add(1) {
		tl.ranges = append(tl.ranges, date.NewRange(d, granularity))
	}
	return tl, nil
}

// NewTimelineFor builds a timeline of exactly `periods` periods starting at
// the period containing `from`. It wraps ErrInvalidRange when periods <= 0.
func NewTimelineFor(from date.Date, periods int, granularity date.Period) (*Timeline, error) {
	if periods <= 0 {
		return nil, fmt.Errorf("%w: non-positive duration %d", ErrInvalidRange, periods)
	}
	start := from.StartOf(granularity)
	end := start.AddMonth(granularity.Months() * (periods - 1))
	return NewTimeline(start, end, granularity)
}

// Len returns the number of periods on the timeline.
func (tl *Timeline) Len() int { return len(tl.ranges) }

// Granularity returns the period granularity of the timeline.
func (tl *Timeline) Granularity() date.Period { return tl.granularity }

// PerYear returns the number of timeline periods in one year.
func (tl *Timeline) PerYear() int { return tl.granularity.PerYear() }

// Range returns the calendar range covered by period p.
// It panics if p is outside the timeline, like a slice index would.
func (tl *Timeline) Range(p Period) date.Range { return tl.ranges[p] }

// Contains reports whether p is a period of this timeline.
func (tl *Timeline) Contains(p Period) bool { return p >= 0 && int(p) < len(tl.ranges) }

// Start returns the first day of the timeline.
func (tl *Timeline) Start() date.Date { return tl.ranges[0].From }

// End returns the last day of the timeline.
func (tl *Timeline) End() date.Date { return tl.ranges[len(tl.ranges)-1].To }

// Periods returns an iterator over all periods in order.
func (tl *Timeline) Periods() iter.Seq[Period] {
	return func(yield func(Period) bool) {
		for p := range tl.ranges {
			if !yield(Period(p)) {
				return
			}
		}
	}
}
