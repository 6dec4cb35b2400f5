package domain

import "time"

// User is a registered account. The core never mutates or deletes it.
type User struct {
	ID             int64
	Email          string
	HashedPassword string
	CreatedAt      time.Time
}
