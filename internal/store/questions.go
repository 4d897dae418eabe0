package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/ytget/quizdesk/internal/crud"
	"github.com/ytget/quizdesk/internal/model"
)

var _ crud.Service[model.Question] = (*QuestionService)(nil)

// QuestionService stores questions
type QuestionService struct {
	db *DB
}

// FindAll returns all questions ordered by id
func (s *QuestionService) FindAll(ctx context.Context) ([]model.Question, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	rows, err := s.db.db.QueryContext(ctx, `SELECT id, text FROM questions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Question
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(&q.ID, &q.Text); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return out, nil
}

// Save inserts a new question or updates an existing one
func (s *QuestionService) Save(ctx context.Context, q model.Question) (model.Question, error) {
	q.Text = strings.TrimSpace(q.Text)
	if q.Text == "" {
		return model.Question{}, fmt.Errorf("%w: question text is required", ErrInvalidRecord)
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if q.ID == 0 {
		res, err := s.db.db.ExecContext(ctx, `INSERT INTO questions (text) VALUES (?)`, q.Text)
		if err != nil {
			return model.Question{}, fmt.Errorf("failed to insert question: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return model.Question{}, fmt.Errorf("failed to read question id: %w", err)
		}
		return s.get(ctx, id)
	}

	res, err := s.db.db.ExecContext(ctx, `UPDATE questions SET text = ? WHERE id = ?`, q.Text, q.ID)
	if err != nil {
		return model.Question{}, fmt.Errorf("failed to update question: %w", err)
	}
	if err := checkAffected(res, q.ID); err != nil {
		return model.Question{}, err
	}
	return s.get(ctx, q.ID)
}

// Remove deletes the question. Its alternatives lose their reference.
func (s *QuestionService) Remove(ctx context.Context, q model.Question) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	res, err := s.db.db.ExecContext(ctx, `DELETE FROM questions WHERE id = ?`, q.ID)
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	return checkAffected(res, q.ID)
}

// get reads one question; the caller holds the lock
func (s *QuestionService) get(ctx context.Context, id int64) (model.Question, error) {
	var q model.Question
	err := s.db.db.QueryRowContext(ctx, `SELECT id, text FROM questions WHERE id = ?`, id).Scan(&q.ID, &q.Text)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Question{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return model.Question{}, fmt.Errorf("failed to get question: %w", err)
	}
	return q, nil
}
