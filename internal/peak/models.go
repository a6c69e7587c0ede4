package peak

import "time"

// Peak is immutable reference data for one named summit. Coordinates are
// WGS84 degrees stored as plain columns so candidate lookups stay simple
// inclusive range queries.
type Peak struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	ElevationM float64   `json:"elevation_m"`
	CreatedAt  time.Time `json:"created_at"`
}

// PeakPatch is a partial update; nil fields are left unchanged. Pointers keep
// zero coordinates (equator, prime meridian) settable.
type PeakPatch struct {
	Name       *string  `json:"name"`
	Lat        *float64 `json:"lat"`
	Lng        *float64 `json:"lng"`
	ElevationM *float64 `json:"elevation_m"`
}
