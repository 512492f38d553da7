package models

import "time"

// Outcome is the durable result for one (user, word) pair. A later result
// for the same pair supersedes the earlier one.
type Outcome struct {
	UserID     int64     `db:"user_id"`
	Word       string    `db:"word"`
	IsCorrect  bool      `db:"is_correct"`
	AnsweredAt time.Time `db:"answered_at"`
}

// QuizStats aggregates the current outcome per (user, word), not the
// attempt history.
type QuizStats struct {
	TotalCount int `db:"total_count"`
	RightCount int `db:"right_count"`
	Score      int `db:"score"`
}

type LeaderboardEntry struct {
	UserID   int64  `db:"user_id"`
	Username string `db:"username"`
	Score    int    `db:"score"`
}
