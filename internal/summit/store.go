package summit

import (
	"context"
	"time"

	"backend-peaktrack/internal/db"

	"github.com/google/uuid"
)

// Summit is one persisted summit occurrence, enriched with the wall-clock
// timestamp derived from the activity's elapsed-time stream.
type Summit struct {
	ID          string    `json:"id"`
	ActivityID  string    `json:"activity_id"`
	PeakID      string    `json:"peak_id"`
	SampleIndex int       `json:"sample_index"`
	SummitedAt  time.Time `json:"summited_at"`
	CreatedAt   time.Time `json:"created_at"`
}

type Store struct {
	db db.Querier
}

func NewStore(db db.Querier) *Store {
	return &Store{db: db}
}

// SaveAll persists summit rows for one activity. Rows key on
// (activity_id, peak_id, summited_at) so repeated summits of the same peak
// stay distinguishable, and re-ingesting an activity is idempotent.
func (s *Store) SaveAll(ctx context.Context, rows []Summit) error {
	for i := range rows {
		if rows[i].ID == "" {
			rows[i].ID = uuid.NewString()
		}
		_, err := s.db.Exec(ctx, `
			INSERT INTO summits (id, activity_id, peak_id, sample_index, summited_at)
			VALUES ($1,$2,$3,$4,$5)
			ON CONFLICT (activity_id, peak_id, summited_at) DO NOTHING
		`, rows[i].ID, rows[i].ActivityID, rows[i].PeakID, rows[i].SampleIndex, rows[i].SummitedAt)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) ByActivity(ctx context.Context, activityID string) ([]Summit, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, activity_id, peak_id, sample_index, summited_at, created_at
		FROM summits WHERE activity_id=$1
		ORDER BY sample_index
	`, activityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summits []Summit
	for rows.Next() {
		var sm Summit
		if err := rows.Scan(&sm.ID, &sm.ActivityID, &sm.PeakID, &sm.SampleIndex, &sm.SummitedAt, &sm.CreatedAt); err != nil {
			return nil, err
		}
		summits = append(summits, sm)
	}
	return summits, nil
}

func (s *Store) ByPeak(ctx context.Context, peakID string) ([]Summit, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, activity_id, peak_id, sample_index, summited_at, created_at
		FROM summits WHERE peak_id=$1
		ORDER BY summited_at DESC
	`, peakID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summits []Summit
	for rows.Next() {
		var sm Summit
		if err := rows.Scan(&sm.ID, &sm.ActivityID, &sm.PeakID, &sm.SampleIndex, &sm.SummitedAt, &sm.CreatedAt); err != nil {
			return nil, err
		}
		summits = append(summits, sm)
	}
	return summits, nil
}
