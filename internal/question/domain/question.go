package domain

import (
	"time"

	userdomain "github.com/LEEEUNCHEOL96/sbb-board/internal/user/domain"
)

// Question is a top-level post. Author is nil for posts whose account was
// created before authorship tracking existed.
type Question struct {
	ID         int64
	Subject    string
	Content    string
	CreateDate time.Time
	Author     *userdomain.Summary
	VoterCount int
}

// Page is one slice of a newest-first question listing.
type Page struct {
	Content       []Question
	Number        int
	Size          int
	TotalElements int64
	TotalPages    int
}

func (p Page) HasNext() bool {
	return p.Number < p.TotalPages-1
}

func (p Page) HasPrevious() bool {
	return p.Number > 0
}
