package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

var ErrNotFound = errors.New("record not found")

// FindUser loads the user whose primary key equals id.
func (db *DB) FindUser(ctx context.Context, id string) (*User, error) {
	query := `SELECT id FROM users WHERE id = $1`

	var user User
	err := db.Pool.QueryRow(ctx, query, id).Scan(&user.Id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("Unable to query user, error: %w", err)
	}

	return &user, nil
}
