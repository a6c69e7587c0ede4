package activity

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend-peaktrack/internal/summit"

	"github.com/gofiber/fiber/v2"
	"github.com/pashagolub/pgxmock/v3"
)

func passthrough(c *fiber.Ctx) error { return c.Next() }

func TestActivityIngestHandler(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO activities`).
		WithArgs(pgxmock.AnyArg(), "Hike", pgxmock.AnyArg(), pgxmock.AnyArg(), 2).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	app := fiber.New()
	svc := NewService(mock, &stubExtractor{}, summit.NewStore(mock), nil)
	RegisterRoutes(app.Group("/activities"), svc, passthrough)

	body, _ := json.Marshal(IngestRequest{
		Name:       "Hike",
		StartedAt:  time.Now(),
		LatLng:     [][2]float64{{46, 7}, {46.001, 7.001}},
		ElapsedSec: []float64{0, 10},
	})
	req := httptest.NewRequest(http.MethodPost, "/activities/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusCreated {
		t.Fatalf("ingest status: %v %v", err, resp.StatusCode)
	}
}

func TestActivityIngestHandlerEmptyTrace(t *testing.T) {
	app := fiber.New()
	RegisterRoutes(app.Group("/activities"), NewService(nil, &stubExtractor{}, nil, nil), passthrough)

	body, _ := json.Marshal(IngestRequest{Name: "Hike"})
	req := httptest.NewRequest(http.MethodPost, "/activities/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for empty trace, got %d", resp.StatusCode)
	}
}

func TestActivityIngestHandlerParseError(t *testing.T) {
	app := fiber.New()
	RegisterRoutes(app.Group("/activities"), NewService(nil, &stubExtractor{}, nil, nil), passthrough)

	req := httptest.NewRequest(http.MethodPost, "/activities/", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected bad request")
	}
}

func TestActivityGetHandler(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT id, name, started_at`).
		WithArgs("act-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "started_at", "distance_km", "point_count", "created_at"}).
			AddRow("act-1", "Hike", now, 12.5, 900, now))

	app := fiber.New()
	RegisterRoutes(app.Group("/activities"), NewService(mock, &stubExtractor{}, nil, nil), passthrough)

	req := httptest.NewRequest(http.MethodGet, "/activities/act-1", nil)
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("get activity status: %v", err)
	}
}
