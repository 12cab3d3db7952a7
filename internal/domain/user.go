package domain

import "time"

// User is a directory entry tickets are assigned to. Identity is the username.
type User struct {
	Username       string
	Email          string
	AccountManager bool
	CreatedAt      time.Time
}
