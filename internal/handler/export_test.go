package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/wanderlist/backend/internal/domain"
	"github.com/pkordes/wanderlist/backend/internal/handler"
)

func TestExportCSV(t *testing.T) {
	tripID := uuid.New()
	export := &mockExportService{
		csv: func(_ context.Context, id uuid.UUID) (string, string, error) {
			require.Equal(t, tripID, id)
			return "Summer_in_Europe_itinerary.csv", "Time,Duration,Location,Topic,Type,Notes\n", nil
		},
	}
	srv := handler.NewServer(&mockTripService{}, export, nil, testTileURL)

	rec := serve(t, srv, http.MethodGet, "/trips/"+tripID.String()+"/export", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Summer_in_Europe_itinerary.csv"`,
		rec.Header().Get("Content-Disposition"))
	assert.Contains(t, rec.Body.String(), "Time,Duration,Location,Topic,Type,Notes")
}

func TestExportCSV_NotFound(t *testing.T) {
	export := &mockExportService{
		csv: func(_ context.Context, _ uuid.UUID) (string, string, error) {
			return "", "", domain.ErrNotFound
		},
	}
	srv := handler.NewServer(&mockTripService{}, export, nil, testTileURL)

	rec := serve(t, srv, http.MethodGet, "/trips/"+uuid.NewString()+"/export", "", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
