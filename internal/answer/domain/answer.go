package domain

import (
	"time"

	userdomain "github.com/LEEEUNCHEOL96/sbb-board/internal/user/domain"
)

// Answer is a reply attached to exactly one question.
type Answer struct {
	ID         int64
	Content    string
	CreateDate time.Time
	QuestionID int64
	Author     *userdomain.Summary
}
