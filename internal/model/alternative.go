package model

import (
	"strconv"
	"strings"
)

// Alternative is one answer option of a question
type Alternative struct {
	ID          int64
	Description string
	IsCorrect   bool
	Question    *Question // nil when not assigned yet
}

// NewAlternative returns an empty, not yet persisted alternative
func NewAlternative() Alternative {
	return Alternative{}
}

// IsNew reports whether the alternative has not been stored yet
func (a Alternative) IsNew() bool {
	return a.ID == 0
}

// Clone returns a copy that shares nothing mutable with a
func (a Alternative) Clone() Alternative {
	c := a
	if a.Question != nil {
		q := *a.Question
		c.Question = &q
	}
	return c
}

// IDString returns the id for display, empty for new records
func (a Alternative) IDString() string {
	if a.IsNew() {
		return ""
	}
	return strconv.FormatInt(a.ID, 10)
}

// QuestionText returns the referenced question text or an empty string
func (a Alternative) QuestionText() string {
	if a.Question == nil {
		return ""
	}
	return a.Question.String()
}

// QuestionID returns the referenced question id, 0 when unassigned
func (a Alternative) QuestionID() int64 {
	if a.Question == nil {
		return 0
	}
	return a.Question.ID
}

// Normalize trims display text the same way rows render it
func (a *Alternative) Normalize() {
	a.Description = strings.Join(strings.Fields(a.Description), " ")
}
