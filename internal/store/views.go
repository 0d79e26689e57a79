package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/tcarver/tix/internal/models"
)

// ListViews returns all saved views, oldest first.
func (s *Store) ListViews() ([]models.View, error) {
	rows, err := s.Query(`
		SELECT id, name, description, filters, grouping_field, sort_field, sort_direction, is_default, created_at
		FROM views
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []models.View
	for rows.Next() {
		v, err := scanView(rows.Scan)
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, rows.Err()
}

// GetView retrieves a saved view by id.
func (s *Store) GetView(id int64) (*models.View, error) {
	row := s.QueryRow(`
		SELECT id, name, description, filters, grouping_field, sort_field, sort_direction, is_default, created_at
		FROM views WHERE id = ?
	`, id)

	v, err := scanView(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return v, err
}

// CreateView persists a new view and returns the stored record.
func (s *Store) CreateView(req models.ViewRequest) (*models.View, error) {
	filters, err := json.Marshal(req.Filters)
	if err != nil {
		return nil, fmt.Errorf("encoding filters: %w", err)
	}

	direction := req.SortDirection
	if direction == "" {
		direction = "asc"
	}

	result, err := s.Exec(`
		INSERT INTO views (name, description, filters, grouping_field, sort_field, sort_direction, is_default)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, req.Name, req.Description, string(filters), req.GroupingField, req.SortField, direction, req.IsDefault)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return s.GetView(id)
}

// DeleteView removes a saved view. Deleting an unknown id reports
// ErrNotFound so the API can answer 404.
func (s *Store) DeleteView(id int64) error {
	result, err := s.Exec("DELETE FROM views WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanView(scan func(dest ...any) error) (*models.View, error) {
	v := &models.View{}
	var filters string
	err := scan(&v.ID, &v.Name, &v.Description, &filters, &v.GroupingField,
		&v.SortField, &v.SortDirection, &v.IsDefault, &v.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(filters), &v.Filters); err != nil {
		return nil, fmt.Errorf("decoding filters for view %d: %w", v.ID, err)
	}
	return v, nil
}
