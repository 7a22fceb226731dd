// ABOUTME: Catalog persistence methods for SQLiteStore
// ABOUTME: Field-level CRUD for sweets, sorted listings by creation time

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// CreateSweet inserts a new catalog item.
func (s *SQLiteStore) CreateSweet(ctx context.Context, sweet *Sweet) error {
	query := `
		INSERT INTO sweets (id, name, category, price, stock, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		sweet.ID,
		sweet.Name,
		sweet.Category,
		sweet.Price,
		sweet.Stock,
		sweet.CreatedAt.UTC().Format(time.RFC3339),
		sweet.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting sweet: %w", err)
	}

	s.logger.Debug("created sweet", "id", sweet.ID, "name", sweet.Name)
	return nil
}

// GetSweet retrieves a catalog item by ID.
// Returns ErrSweetNotFound if the item doesn't exist.
func (s *SQLiteStore) GetSweet(ctx context.Context, id string) (*Sweet, error) {
	query := `
		SELECT id, name, category, price, stock, created_at, updated_at
		FROM sweets
		WHERE id = ?
	`

	return s.scanSweet(s.db.QueryRowContext(ctx, query, id))
}

// ListSweets returns all catalog items ordered by creation time.
func (s *SQLiteStore) ListSweets(ctx context.Context) ([]*Sweet, error) {
	query := `
		SELECT id, name, category, price, stock, created_at, updated_at
		FROM sweets
		ORDER BY created_at ASC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying sweets: %w", err)
	}
	defer rows.Close()

	var sweets []*Sweet
	for rows.Next() {
		var sweet Sweet
		var createdAtStr, updatedAtStr string

		if err := rows.Scan(
			&sweet.ID,
			&sweet.Name,
			&sweet.Category,
			&sweet.Price,
			&sweet.Stock,
			&createdAtStr,
			&updatedAtStr,
		); err != nil {
			return nil, fmt.Errorf("scanning sweet: %w", err)
		}

		if sweet.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		if sweet.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", err)
		}

		sweets = append(sweets, &sweet)
	}

	return sweets, rows.Err()
}

// UpdateSweet overwrites the mutable fields of an existing catalog item.
// Returns ErrSweetNotFound if the item doesn't exist.
func (s *SQLiteStore) UpdateSweet(ctx context.Context, sweet *Sweet) error {
	query := `
		UPDATE sweets
		SET name = ?, category = ?, price = ?, stock = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		sweet.Name,
		sweet.Category,
		sweet.Price,
		sweet.Stock,
		sweet.UpdatedAt.UTC().Format(time.RFC3339),
		sweet.ID,
	)
	if err != nil {
		return fmt.Errorf("updating sweet: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return ErrSweetNotFound
	}

	s.logger.Debug("updated sweet", "id", sweet.ID)
	return nil
}

// DeleteSweet removes a catalog item.
// Returns ErrSweetNotFound if the item doesn't exist.
func (s *SQLiteStore) DeleteSweet(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM sweets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting sweet: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return ErrSweetNotFound
	}

	s.logger.Debug("deleted sweet", "id", id)
	return nil
}

// scanSweet reads a single sweet row.
func (s *SQLiteStore) scanSweet(row *sql.Row) (*Sweet, error) {
	var sweet Sweet
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&sweet.ID,
		&sweet.Name,
		&sweet.Category,
		&sweet.Price,
		&sweet.Stock,
		&createdAtStr,
		&updatedAtStr,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSweetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying sweet: %w", err)
	}

	if sweet.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if sweet.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	return &sweet, nil
}
