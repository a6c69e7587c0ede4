package peak

import (
	"context"

	"backend-peaktrack/internal/db"
	"backend-peaktrack/internal/geo"

	"github.com/google/uuid"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

func (s *Service) CreatePeak(ctx context.Context, input Peak) (Peak, error) {
	input.ID = uuid.NewString()
	row := s.db.QueryRow(ctx, `
		INSERT INTO peaks (id, name, lat, lng, elevation_m)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING created_at
	`, input.ID, input.Name, input.Lat, input.Lng, input.ElevationM)
	if err := row.Scan(&input.CreatedAt); err != nil {
		return Peak{}, err
	}
	return input, nil
}

func (s *Service) GetPeak(ctx context.Context, id string) (Peak, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, name, lat, lng, COALESCE(elevation_m,0), created_at
		FROM peaks WHERE id=$1
	`, id)
	var p Peak
	if err := row.Scan(&p.ID, &p.Name, &p.Lat, &p.Lng, &p.ElevationM, &p.CreatedAt); err != nil {
		return Peak{}, err
	}
	return p, nil
}

func (s *Service) UpdatePeak(ctx context.Context, id string, patch PeakPatch) (Peak, error) {
	p, err := s.GetPeak(ctx, id)
	if err != nil {
		return Peak{}, err
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Lat != nil {
		p.Lat = *patch.Lat
	}
	if patch.Lng != nil {
		p.Lng = *patch.Lng
	}
	if patch.ElevationM != nil {
		p.ElevationM = *patch.ElevationM
	}

	_, err = s.db.Exec(ctx, `
		UPDATE peaks SET name=$2, lat=$3, lng=$4, elevation_m=$5
		WHERE id=$1
	`, p.ID, p.Name, p.Lat, p.Lng, p.ElevationM)
	if err != nil {
		return Peak{}, err
	}
	return p, nil
}

func (s *Service) DeletePeak(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM peaks WHERE id=$1`, id)
	return err
}

func (s *Service) ListPeaks(ctx context.Context) ([]Peak, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, lat, lng, COALESCE(elevation_m,0), created_at
		FROM peaks ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var peaks []Peak
	for rows.Next() {
		var p Peak
		if err := rows.Scan(&p.ID, &p.Name, &p.Lat, &p.Lng, &p.ElevationM, &p.CreatedAt); err != nil {
			return nil, err
		}
		peaks = append(peaks, p)
	}
	return peaks, nil
}

// PeaksInBox returns every peak whose coordinates fall inside the rectangle,
// bounds inclusive. It is a coarse prefilter over a whole trace's envelope;
// per-point buffer checks happen downstream.
func (s *Service) PeaksInBox(ctx context.Context, box geo.BoundingBox) ([]Peak, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, lat, lng, COALESCE(elevation_m,0), created_at
		FROM peaks
		WHERE lat BETWEEN $1 AND $2 AND lng BETWEEN $3 AND $4
		ORDER BY id
	`, box.MinLat, box.MaxLat, box.MinLng, box.MaxLng)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var peaks []Peak
	for rows.Next() {
		var p Peak
		if err := rows.Scan(&p.ID, &p.Name, &p.Lat, &p.Lng, &p.ElevationM, &p.CreatedAt); err != nil {
			return nil, err
		}
		peaks = append(peaks, p)
	}
	return peaks, nil
}
