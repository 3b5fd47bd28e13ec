package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jengzang/placeintel-backend-go/internal/models"
)

// ErrSearchNotFound is returned when a search id does not exist
var ErrSearchNotFound = errors.New("search not found")

// PlaceRepository handles database operations for searches and places
type PlaceRepository struct {
	db *sql.DB
}

// NewPlaceRepository creates a new place repository
func NewPlaceRepository(db *sql.DB) *PlaceRepository {
	return &PlaceRepository{db: db}
}

// CreateSearch stores a search record together with its places in one transaction
func (r *PlaceRepository) CreateSearch(search *models.SearchRecord, places []models.Place) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if search.CreatedAt.IsZero() {
		search.CreatedAt = time.Now().UTC()
	}

	_, err = tx.Exec(`
		INSERT INTO searches (id, query, center_lat, center_lng, radius_m, place_type, place_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		search.ID, search.Query, search.CenterLat, search.CenterLng,
		search.RadiusMeters, search.PlaceType, len(places), search.CreatedAt,
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to insert search: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO places (search_id, name, lat, lng, rating, address, distance_m)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare place insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range places {
		if _, err := stmt.Exec(search.ID, p.Name, p.Lat, p.Lng, p.Rating, p.Address, p.DistanceMeters); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert place %q: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit search: %w", err)
	}

	search.PlaceCount = len(places)
	return nil
}

// GetSearch retrieves a search record by id
func (r *PlaceRepository) GetSearch(id string) (*models.SearchRecord, error) {
	query := `
		SELECT id, query, center_lat, center_lng, radius_m, place_type, place_count, created_at
		FROM searches WHERE id = ?
	`

	s := &models.SearchRecord{}
	err := r.db.QueryRow(query, id).Scan(
		&s.ID, &s.Query, &s.CenterLat, &s.CenterLng,
		&s.RadiusMeters, &s.PlaceType, &s.PlaceCount, &s.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSearchNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get search: %w", err)
	}

	return s, nil
}

// ListSearches retrieves search records, newest first
func (r *PlaceRepository) ListSearches(limit, offset int) ([]*models.SearchRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, query, center_lat, center_lng, radius_m, place_type, place_count, created_at
		FROM searches ORDER BY created_at DESC LIMIT ? OFFSET ?
	`

	rows, err := r.db.Query(query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query searches: %w", err)
	}
	defer rows.Close()

	var searches []*models.SearchRecord
	for rows.Next() {
		s := &models.SearchRecord{}
		if err := rows.Scan(
			&s.ID, &s.Query, &s.CenterLat, &s.CenterLng,
			&s.RadiusMeters, &s.PlaceType, &s.PlaceCount, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan search: %w", err)
		}
		searches = append(searches, s)
	}

	return searches, rows.Err()
}

// GetPlaces retrieves all places belonging to a search
func (r *PlaceRepository) GetPlaces(searchID string) ([]models.Place, error) {
	if _, err := r.GetSearch(searchID); err != nil {
		return nil, err
	}

	query := `
		SELECT id, search_id, name, lat, lng, rating, address, distance_m, created_at
		FROM places WHERE search_id = ? ORDER BY id
	`

	rows, err := r.db.Query(query, searchID)
	if err != nil {
		return nil, fmt.Errorf("failed to query places: %w", err)
	}
	defer rows.Close()

	var places []models.Place
	for rows.Next() {
		var p models.Place
		var rating sql.NullFloat64
		var address sql.NullString

		if err := rows.Scan(
			&p.ID, &p.SearchID, &p.Name, &p.Lat, &p.Lng,
			&rating, &address, &p.DistanceMeters, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan place: %w", err)
		}

		if rating.Valid {
			v := rating.Float64
			p.Rating = &v
		}
		if address.Valid {
			v := address.String
			p.Address = &v
		}

		places = append(places, p)
	}

	return places, rows.Err()
}
