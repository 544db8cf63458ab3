package domain

import "time"

type ID string

// User is a registered board member. Password material never leaves the user
// and identity packages.
type User struct {
	ID           ID
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Summary is the public slice of a user attached to questions and answers.
type Summary struct {
	ID       ID
	Username string
}

func (u User) Summary() Summary {
	return Summary{ID: u.ID, Username: u.Username}
}
