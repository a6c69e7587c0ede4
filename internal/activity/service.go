package activity

import (
	"context"
	"errors"
	"time"

	"backend-peaktrack/internal/db"
	"backend-peaktrack/internal/geo"
	"backend-peaktrack/internal/notify"
	"backend-peaktrack/internal/summit"

	"github.com/google/uuid"
)

var (
	ErrNoTrackPoints  = errors.New("activity has no track points")
	ErrStreamMismatch = errors.New("latlng and elapsed streams differ in length")
)

// SummitExtractor runs the matching pipeline for one trace.
// *summit.Extractor satisfies this.
type SummitExtractor interface {
	Extract(ctx context.Context, points []geo.Point) ([]summit.Event, error)
}

type Service struct {
	db        db.Querier
	extractor SummitExtractor
	summits   *summit.Store
	hub       *notify.Hub
}

func NewService(db db.Querier, extractor SummitExtractor, summits *summit.Store, hub *notify.Hub) *Service {
	return &Service{db: db, extractor: extractor, summits: summits, hub: hub}
}

// Ingest stores the activity, runs summit extraction over its trace, persists
// the enriched summit rows, and publishes each summit to the notify hub.
// Summit rows are saved before notifications go out; a publish failure is not
// fatal to the run.
func (s *Service) Ingest(ctx context.Context, input IngestRequest) (Activity, []summit.Summit, error) {
	if len(input.LatLng) == 0 {
		return Activity{}, nil, ErrNoTrackPoints
	}
	if len(input.ElapsedSec) != len(input.LatLng) {
		return Activity{}, nil, ErrStreamMismatch
	}

	points := make([]geo.Point, len(input.LatLng))
	for i, ll := range input.LatLng {
		points[i] = geo.Point{Lat: ll[0], Lng: ll[1]}
	}

	act := Activity{
		ID:         uuid.NewString(),
		Name:       input.Name,
		StartedAt:  input.StartedAt,
		DistanceKm: traceDistanceKm(points),
		PointCount: len(points),
	}
	if act.StartedAt.IsZero() {
		act.StartedAt = time.Now()
	}

	// Extract before any write so a candidate-source failure leaves no
	// orphaned activity row behind.
	events, err := s.extractor.Extract(ctx, points)
	if err != nil {
		return Activity{}, nil, err
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO activities (id, name, started_at, distance_km, point_count)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING created_at
	`, act.ID, act.Name, act.StartedAt, act.DistanceKm, act.PointCount)
	if err := row.Scan(&act.CreatedAt); err != nil {
		return Activity{}, nil, err
	}

	rows := make([]summit.Summit, len(events))
	for i, ev := range events {
		rows[i] = summit.Summit{
			ActivityID:  act.ID,
			PeakID:      ev.PeakID,
			SampleIndex: ev.SampleIndex,
			SummitedAt:  act.StartedAt.Add(time.Duration(input.ElapsedSec[ev.SampleIndex] * float64(time.Second))),
		}
	}
	if err := s.summits.SaveAll(ctx, rows); err != nil {
		return Activity{}, nil, err
	}

	if s.hub != nil {
		for _, sm := range rows {
			s.hub.PublishSummit(act.ID, sm)
		}
	}
	return act, rows, nil
}

func (s *Service) Get(ctx context.Context, id string) (Activity, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, name, started_at, COALESCE(distance_km,0), point_count, created_at
		FROM activities WHERE id=$1
	`, id)
	var act Activity
	if err := row.Scan(&act.ID, &act.Name, &act.StartedAt, &act.DistanceKm, &act.PointCount, &act.CreatedAt); err != nil {
		return Activity{}, err
	}
	return act, nil
}

func traceDistanceKm(points []geo.Point) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += geo.HaversineKm(points[i-1].Lat, points[i-1].Lng, points[i].Lat, points[i].Lng)
	}
	return total
}
