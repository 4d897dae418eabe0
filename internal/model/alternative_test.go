package model

import "testing"

func TestAlternative_IsNew(t *testing.T) {
	tests := []struct {
		id       int64
		expected bool
	}{
		{0, true},
		{1, false},
		{42, false},
	}

	for _, test := range tests {
		alt := Alternative{ID: test.id}
		if result := alt.IsNew(); result != test.expected {
			t.Errorf("Alternative{ID: %d}.IsNew() = %v, expected %v", test.id, result, test.expected)
		}
	}
}

func TestAlternative_DisplayValues(t *testing.T) {
	alt := Alternative{ID: 7, Description: "Paris", IsCorrect: true, Question: &Question{ID: 3, Text: " Capital of France? "}}

	if alt.IDString() != "7" {
		t.Errorf("Expected IDString '7', got '%s'", alt.IDString())
	}
	if alt.QuestionText() != "Capital of France?" {
		t.Errorf("Expected trimmed question text, got '%s'", alt.QuestionText())
	}
	if alt.QuestionID() != 3 {
		t.Errorf("Expected QuestionID 3, got %d", alt.QuestionID())
	}

	empty := NewAlternative()
	if empty.IDString() != "" {
		t.Errorf("Expected empty IDString for new alternative, got '%s'", empty.IDString())
	}
	if empty.QuestionText() != "" || empty.QuestionID() != 0 {
		t.Error("Expected no question on a new alternative")
	}
}

func TestAlternative_Clone(t *testing.T) {
	orig := Alternative{ID: 1, Description: "A", Question: &Question{ID: 1, Text: "Q"}}
	clone := orig.Clone()

	clone.Description = "B"
	clone.Question.Text = "changed"

	if orig.Description != "A" {
		t.Errorf("Clone must not change original description, got '%s'", orig.Description)
	}
	if orig.Question.Text != "Q" {
		t.Errorf("Clone must not share the question reference, got '%s'", orig.Question.Text)
	}
}

func TestAlternative_Normalize(t *testing.T) {
	alt := Alternative{Description: "  two \n words\t"}
	alt.Normalize()
	if alt.Description != "two words" {
		t.Errorf("Normalize() = '%s', expected 'two words'", alt.Description)
	}
}

func TestIndexOfQuestion(t *testing.T) {
	list := []Question{{ID: 1, Text: "one"}, {ID: 2, Text: "two"}}

	if idx := IndexOfQuestion(list, 2); idx != 1 {
		t.Errorf("IndexOfQuestion(2) = %d, expected 1", idx)
	}
	if idx := IndexOfQuestion(list, 9); idx != -1 {
		t.Errorf("IndexOfQuestion(9) = %d, expected -1", idx)
	}
	if idx := IndexOfQuestion(nil, 0); idx != -1 {
		t.Errorf("IndexOfQuestion on empty list = %d, expected -1", idx)
	}
}
