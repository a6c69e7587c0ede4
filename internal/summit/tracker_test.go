package summit

import (
	"reflect"
	"testing"
)

func summitsOf(events []Event, peakID string) []int {
	var indices []int
	for _, ev := range events {
		if ev.PeakID == peakID {
			indices = append(indices, ev.SampleIndex)
		}
	}
	return indices
}

func TestTrackerSingleDwellOneSummit(t *testing.T) {
	tr := NewTracker()
	// Matched at every consecutive index across a long dwell.
	for i := 0; i < 500; i++ {
		tr.Observe(i, []string{"peak-1"})
	}

	got := summitsOf(tr.Events(), "peak-1")
	if !reflect.DeepEqual(got, []int{0}) {
		t.Fatalf("expected single summit at index 0, got %v", got)
	}
}

func TestTrackerShortGapMerges(t *testing.T) {
	tr := NewTracker()
	for i := 0; i <= 5; i++ {
		tr.Observe(i, []string{"peak-1"})
	}
	for i := 6; i < 300; i++ {
		tr.Observe(i, nil)
	}
	// gap = 300 - 5 = 295 <= ResetGap: merges into the same summit.
	tr.Observe(300, []string{"peak-1"})

	got := summitsOf(tr.Events(), "peak-1")
	if !reflect.DeepEqual(got, []int{0}) {
		t.Fatalf("expected merged summit [0], got %v", got)
	}
}

func TestTrackerLongGapAppendsNewSummit(t *testing.T) {
	tr := NewTracker()
	for i := 0; i <= 5; i++ {
		tr.Observe(i, []string{"peak-1"})
	}
	for i := 6; i <= 310; i++ {
		tr.Observe(i, nil)
	}
	// gap = 311 - 5 = 306 > ResetGap: a second distinct summit.
	tr.Observe(311, []string{"peak-1"})

	got := summitsOf(tr.Events(), "peak-1")
	if !reflect.DeepEqual(got, []int{0, 311}) {
		t.Fatalf("expected summits [0 311], got %v", got)
	}
}

func TestTrackerGapClockRunsFromLastSeen(t *testing.T) {
	tr := NewTracker()
	tr.Observe(0, []string{"peak-1"})
	for i := 1; i <= 200; i++ {
		tr.Observe(i, nil)
	}
	// Re-entry within the gap: merged, but lastSeen moves to 201.
	tr.Observe(201, []string{"peak-1"})
	for i := 202; i <= 501; i++ {
		tr.Observe(i, nil)
	}
	// gap = 502 - 201 = 301 > ResetGap: counts again.
	tr.Observe(502, []string{"peak-1"})

	got := summitsOf(tr.Events(), "peak-1")
	if !reflect.DeepEqual(got, []int{0, 502}) {
		t.Fatalf("expected summits [0 502], got %v", got)
	}
}

func TestTrackerGapBoundaryExactlyResetGap(t *testing.T) {
	tr := NewTracker()
	tr.Observe(0, []string{"peak-1"})
	for i := 1; i < ResetGap; i++ {
		tr.Observe(i, nil)
	}
	// gap = ResetGap exactly: still noise, merged.
	tr.Observe(ResetGap, []string{"peak-1"})

	got := summitsOf(tr.Events(), "peak-1")
	if !reflect.DeepEqual(got, []int{0}) {
		t.Fatalf("expected merged summit [0], got %v", got)
	}
}

func TestTrackerIndependentPeaks(t *testing.T) {
	tr := NewTracker()
	tr.Observe(0, []string{"peak-1", "peak-2"})
	tr.Observe(1, []string{"peak-1"})
	for i := 2; i <= 400; i++ {
		tr.Observe(i, nil)
	}
	tr.Observe(401, []string{"peak-2"})

	if got := summitsOf(tr.Events(), "peak-1"); !reflect.DeepEqual(got, []int{0}) {
		t.Fatalf("peak-1 summits: %v", got)
	}
	// peak-2 last seen at 0, gap = 401 > ResetGap.
	if got := summitsOf(tr.Events(), "peak-2"); !reflect.DeepEqual(got, []int{0, 401}) {
		t.Fatalf("peak-2 summits: %v", got)
	}
}

func TestTrackerEventsOrdered(t *testing.T) {
	tr := NewTracker()
	tr.Observe(0, []string{"peak-b", "peak-a"})
	for i := 1; i <= 400; i++ {
		tr.Observe(i, nil)
	}
	tr.Observe(401, []string{"peak-b"})

	events := tr.Events()
	want := []Event{
		{PeakID: "peak-a", SampleIndex: 0},
		{PeakID: "peak-b", SampleIndex: 0},
		{PeakID: "peak-b", SampleIndex: 401},
	}
	if !reflect.DeepEqual(events, want) {
		t.Fatalf("unexpected event order: %+v", events)
	}
}

func TestTrackerSummitIndicesStrictlyIncreasing(t *testing.T) {
	tr := NewTracker()
	for i := 0; i < 2000; i++ {
		// Present one index out of every 350, so each appearance is a
		// fresh summit after the first.
		if i%350 == 0 {
			tr.Observe(i, []string{"peak-1"})
		} else {
			tr.Observe(i, nil)
		}
	}

	got := summitsOf(tr.Events(), "peak-1")
	if len(got) < 2 {
		t.Fatalf("expected multiple summits, got %v", got)
	}
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Fatalf("summit indices not strictly increasing: %v", got)
		}
	}
}
