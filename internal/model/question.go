package model

import "strings"

// Question is a quiz question that alternatives belong to
type Question struct {
	ID   int64  `yaml:"id,omitempty"`
	Text string `yaml:"text"`
}

// String returns the question text used in selectors
func (q Question) String() string {
	return strings.TrimSpace(q.Text)
}

// IndexOfQuestion returns the position of the question with the given id
// in list, or -1
func IndexOfQuestion(list []Question, id int64) int {
	for i, q := range list {
		if q.ID == id {
			return i
		}
	}
	return -1
}
