package geo

import (
	"errors"
	"math"
)

// Meters per degree, treated as constants over the small windows we buffer.
const (
	metersPerDegLat = 110574.0
	metersPerDegLng = 111320.0

	// Floor for cos(lat) so the longitude delta stays bounded near the poles.
	minCosLat = 0.1
)

var ErrEmptyTrace = errors.New("trace has no points")

// Point is one GPS sample in WGS84 degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Delta is the degree-space half-width of a square proximity buffer.
// Both components are non-negative.
type Delta struct {
	Lat float64
	Lng float64
}

// DeltaForRadius converts a physical radius in meters into degree offsets at
// the given reference latitude. The result is computed once per trace from the
// first point's latitude and reused for every point, so buffer width drifts
// slightly for traces spanning large latitude ranges.
func DeltaForRadius(radiusM, refLat float64) Delta {
	cosLat := math.Cos(refLat * math.Pi / 180)
	if math.Abs(cosLat) < minCosLat {
		cosLat = minCosLat
	}
	return Delta{
		Lat: math.Abs(radiusM / metersPerDegLat),
		Lng: math.Abs(radiusM / (metersPerDegLng * cosLat)),
	}
}

// BoundingBox is the rectangle covering a trace's buffered extent.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// Envelope folds every point's buffered box into one search rectangle.
func Envelope(points []Point, d Delta) (BoundingBox, error) {
	if len(points) == 0 {
		return BoundingBox{}, ErrEmptyTrace
	}

	box := BoundingBox{
		MinLat: points[0].Lat - d.Lat,
		MaxLat: points[0].Lat + d.Lat,
		MinLng: points[0].Lng - d.Lng,
		MaxLng: points[0].Lng + d.Lng,
	}
	for _, p := range points[1:] {
		box.MinLat = math.Min(box.MinLat, p.Lat-d.Lat)
		box.MaxLat = math.Max(box.MaxLat, p.Lat+d.Lat)
		box.MinLng = math.Min(box.MinLng, p.Lng-d.Lng)
		box.MaxLng = math.Max(box.MaxLng, p.Lng+d.Lng)
	}
	return box, nil
}

// ContainsBuffered reports whether the whole buffered box of p lies inside the envelope.
func (b BoundingBox) ContainsBuffered(p Point, d Delta) bool {
	return p.Lat-d.Lat >= b.MinLat && p.Lat+d.Lat <= b.MaxLat &&
		p.Lng-d.Lng >= b.MinLng && p.Lng+d.Lng <= b.MaxLng
}

// WithinBuffer reports whether (lat, lng) falls inside the axis-aligned buffer
// around center. All four bounds are inclusive.
func WithinBuffer(center Point, d Delta, lat, lng float64) bool {
	return lat >= center.Lat-d.Lat && lat <= center.Lat+d.Lat &&
		lng >= center.Lng-d.Lng && lng <= center.Lng+d.Lng
}

// HaversineKm returns the great-circle distance between two coordinates in km.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKm = 6371.0

	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180
	la1 := lat1 * math.Pi / 180
	la2 := lat2 * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(la1)*math.Cos(la2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
