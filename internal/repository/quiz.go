package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/arsenstet/quizzy-cards-bot/internal/models"
)

type QuizR struct {
	db QueryI
}

func NewQuizRepository(db QueryI) *QuizR {
	return &QuizR{
		db: db,
	}
}

// RecordOutcome stores the latest result for (user, word), overwriting any
// prior one, and bumps the leaderboard score when the outcome turned correct
// for the first time. One statement, so a retry cannot double-count the
// score.
//
// Supersede semantics live entirely in the ON CONFLICT clause: a
// re-answered word replaces its row, so stats count current truth per
// word, not attempt history. Verifiable only against a real database.
func (q *QuizR) RecordOutcome(ctx context.Context, outcome models.Outcome) error {
	query := `
		WITH prev AS (
			SELECT is_correct FROM quiz_outcomes
			WHERE user_id = $1 AND word = $2
		), upsert AS (
			INSERT INTO quiz_outcomes (user_id, word, is_correct, answered_at)
			VALUES ($1, $2, $3, NOW())
			ON CONFLICT (user_id, word)
			DO UPDATE SET is_correct = EXCLUDED.is_correct, answered_at = NOW()
		)
		UPDATE scores
		SET score = score + 1
		WHERE user_id = $1
			AND $3
			AND NOT EXISTS (SELECT 1 FROM prev WHERE is_correct)
	`

	_, err := q.db.ExecContext(ctx, query, outcome.UserID, outcome.Word, outcome.IsCorrect)
	if err != nil {
		return fmt.Errorf("failed to record outcome for user %d: %w", outcome.UserID, err)
	}

	return nil
}

// QuizStats reports distinct words attempted and how many of them are
// currently correct. Outcomes are upserted per (user, word), so plain
// counts over the table already give "current truth", not attempt history.
func (q *QuizR) QuizStats(ctx context.Context, userID int64) (models.QuizStats, error) {
	query := `SELECT
		COUNT(*) AS total_count,
		COALESCE(SUM(CASE WHEN is_correct THEN 1 ELSE 0 END), 0) AS right_count
	FROM quiz_outcomes
	WHERE user_id = $1`

	var stats models.QuizStats
	if err := q.db.GetContext(ctx, &stats, query, userID); err != nil {
		return models.QuizStats{}, fmt.Errorf("failed to get quiz stats for user %d: %w", userID, err)
	}

	scoreQuery := `SELECT score FROM scores WHERE user_id = $1`
	if err := q.db.GetContext(ctx, &stats.Score, scoreQuery, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return stats, nil
		}
		return models.QuizStats{}, fmt.Errorf("failed to get score for user %d: %w", userID, err)
	}

	return stats, nil
}

func (q *QuizR) Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	query := `
		SELECT user_id, username, score
		FROM scores
		ORDER BY score DESC, user_id
		LIMIT $1
	`

	entries := make([]models.LeaderboardEntry, 0, limit)
	if err := q.db.SelectContext(ctx, &entries, query, limit); err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return entries, nil
}

func (q *QuizR) UserRank(ctx context.Context, userID int64) (int, error) {
	query := `
		SELECT COUNT(*) + 1
		FROM scores
		WHERE score > (SELECT score FROM scores WHERE user_id = $1)
	`

	var rank int
	if err := q.db.GetContext(ctx, &rank, query, userID); err != nil {
		return 0, fmt.Errorf("failed to get rank for user %d: %w", userID, err)
	}

	return rank, nil
}
