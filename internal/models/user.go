package models

import "time"

type User struct {
	UserID    int64     `db:"user_id"`
	Username  string    `db:"username"`
	CreatedAt time.Time `db:"created_at"`
}
