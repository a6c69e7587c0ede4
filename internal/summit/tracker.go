package summit

import "sort"

// ResetGap is the minimum number of sample indices a peak must be absent
// before a later re-match counts as a new, distinct summit rather than GPS
// jitter around the geofence boundary.
const ResetGap = 300

// Event is one distinct, counted visit of a trace to a peak's vicinity.
type Event struct {
	PeakID      string `json:"peak_id"`
	SampleIndex int    `json:"sample_index"`
}

// record tracks one peak across a single extraction run. A missing map entry
// means the peak is unvisited; a present entry always carries the full shape.
type record struct {
	summits         []int
	awaitingReentry bool
	lastSeen        int
}

// Tracker folds the ordered sequence of per-point match sets into distinct
// summit events. Each peak moves through three states: unvisited (no record),
// in vicinity (matched at the latest index), and awaiting re-entry (matched
// before, absent since, the gap clock running). One Tracker serves exactly
// one run; it holds no state across runs.
type Tracker struct {
	records map[string]*record
}

func NewTracker() *Tracker {
	return &Tracker{records: map[string]*record{}}
}

// Observe consumes the set of peak ids matched at sample index i. Indices
// must be fed strictly front to back; each step depends on the state left by
// the previous one.
func (t *Tracker) Observe(i int, matched []string) {
	seen := make(map[string]struct{}, len(matched))
	for _, peakID := range matched {
		seen[peakID] = struct{}{}

		rec, ok := t.records[peakID]
		if !ok {
			t.records[peakID] = &record{summits: []int{i}, lastSeen: i}
			continue
		}
		if rec.awaitingReentry && i-rec.lastSeen > ResetGap {
			rec.summits = append(rec.summits, i)
			rec.awaitingReentry = false
			rec.lastSeen = i
			continue
		}
		// Continuation of the current dwell, or re-entry within the gap:
		// the visit merges into the existing summit.
		rec.lastSeen = i
	}

	for peakID, rec := range t.records {
		if _, ok := seen[peakID]; !ok {
			rec.awaitingReentry = true
		}
	}
}

// Events returns one event per counted summit, ordered by sample index and
// then peak id.
func (t *Tracker) Events() []Event {
	var events []Event
	for peakID, rec := range t.records {
		for _, idx := range rec.summits {
			events = append(events, Event{PeakID: peakID, SampleIndex: idx})
		}
	}
	sort.Slice(events, func(a, b int) bool {
		if events[a].SampleIndex != events[b].SampleIndex {
			return events[a].SampleIndex < events[b].SampleIndex
		}
		return events[a].PeakID < events[b].PeakID
	})
	return events
}
