package repository

import (
	"context"
	"fmt"
)

type UsersR struct {
	db QueryI
}

func NewUsersRepository(db QueryI) *UsersR {
	return &UsersR{db: db}
}

// UpsertUser creates the user and their score row on first contact. A user
// that already exists is left untouched, so the first recorded username
// wins.
func (u *UsersR) UpsertUser(ctx context.Context, userID int64, username string) error {
	query := `
		INSERT INTO users (user_id, username)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
	`
	if _, err := u.db.ExecContext(ctx, query, userID, username); err != nil {
		return fmt.Errorf("failed to upsert user %d: %w", userID, err)
	}

	scoreQuery := `
		INSERT INTO scores (user_id, username, score)
		VALUES ($1, $2, 0)
		ON CONFLICT (user_id) DO NOTHING
	`
	if _, err := u.db.ExecContext(ctx, scoreQuery, userID, username); err != nil {
		return fmt.Errorf("failed to init score for user %d: %w", userID, err)
	}

	return nil
}
