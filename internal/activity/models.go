package activity

import "time"

type Activity struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	StartedAt  time.Time `json:"started_at"`
	DistanceKm float64   `json:"distance_km"`
	PointCount int       `json:"point_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// IngestRequest carries a recorded trace as parallel streams: one
// [lat, lng] pair and one elapsed-seconds value per sample, plus the
// activity's absolute start time for timestamp enrichment.
type IngestRequest struct {
	Name       string       `json:"name"`
	StartedAt  time.Time    `json:"started_at"`
	LatLng     [][2]float64 `json:"latlng"`
	ElapsedSec []float64    `json:"elapsed_sec"`
}
