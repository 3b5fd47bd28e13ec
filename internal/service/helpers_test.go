package service

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/jengzang/placeintel-backend-go/internal/database"
	"github.com/jengzang/placeintel-backend-go/internal/models"
	"github.com/jengzang/placeintel-backend-go/internal/repository"
)

const testSearchID = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"

func newTestRepo(t *testing.T) *repository.PlaceRepository {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))

	return repository.NewPlaceRepository(db)
}

// seedClusteredSearch stores three places where two share a coordinate, so
// the duplicate pair forms the leading hotspot
func seedClusteredSearch(t *testing.T, repo *repository.PlaceRepository) {
	t.Helper()

	search := &models.SearchRecord{
		ID:           testSearchID,
		Query:        "San Francisco, CA",
		CenterLat:    37.0,
		CenterLng:    -122.0,
		RadiusMeters: 1000,
		PlaceType:    "restaurant",
	}
	places := []models.Place{
		{Name: "A", Lat: 37.0, Lng: -122.0},
		{Name: "B", Lat: 37.0, Lng: -122.0},
		{Name: "C", Lat: 37.1, Lng: -122.1},
	}

	require.NoError(t, repo.CreateSearch(search, places))
}
