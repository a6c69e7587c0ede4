package summit

import (
	"context"
	"fmt"

	"backend-peaktrack/internal/geo"
	"backend-peaktrack/internal/peak"
)

// CandidateSource returns every peak whose coordinates fall inside the
// rectangle, bounds inclusive. *peak.Service satisfies this.
type CandidateSource interface {
	PeaksInBox(ctx context.Context, box geo.BoundingBox) ([]peak.Peak, error)
}

// Extractor runs the full matching pipeline for one trace: degree delta from
// the trace's first latitude, one envelope query for candidates, a per-point
// inclusive buffer check, and the tracker fold.
type Extractor struct {
	peaks   CandidateSource
	radiusM float64
}

func NewExtractor(peaks CandidateSource, radiusM float64) *Extractor {
	return &Extractor{peaks: peaks, radiusM: radiusM}
}

// Extract returns the distinct summit events for the ordered trace. It is
// deterministic and side-effect free; a candidate lookup failure aborts the
// run and surfaces to the caller.
func (e *Extractor) Extract(ctx context.Context, points []geo.Point) ([]Event, error) {
	if len(points) == 0 {
		return nil, geo.ErrEmptyTrace
	}

	delta := geo.DeltaForRadius(e.radiusM, points[0].Lat)
	box, err := geo.Envelope(points, delta)
	if err != nil {
		return nil, err
	}

	candidates, err := e.peaks.PeaksInBox(ctx, box)
	if err != nil {
		return nil, fmt.Errorf("candidate peaks: %w", err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	tracker := NewTracker()
	for i, p := range points {
		var matched []string
		for _, cand := range candidates {
			if geo.WithinBuffer(p, delta, cand.Lat, cand.Lng) {
				matched = append(matched, cand.ID)
			}
		}
		tracker.Observe(i, matched)
	}
	return tracker.Events(), nil
}
