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

var _ crud.Service[model.Alternative] = (*AlternativeService)(nil)

const selectAlternatives = `
	SELECT a.id, a.description, a.is_correct, q.id, q.text
	FROM alternatives a
	LEFT JOIN questions q ON q.id = a.question_id`

// AlternativeService stores alternatives
type AlternativeService struct {
	db *DB
}

// FindAll returns all alternatives ordered by id
func (s *AlternativeService) FindAll(ctx context.Context) ([]model.Alternative, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	rows, err := s.db.db.QueryContext(ctx, selectAlternatives+" ORDER BY a.id")
	if err != nil {
		return nil, fmt.Errorf("failed to list alternatives: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Alternative
	for rows.Next() {
		alt, err := scanAlternative(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, alt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list alternatives: %w", err)
	}
	return out, nil
}

// Save inserts a new alternative or updates an existing one
func (s *AlternativeService) Save(ctx context.Context, alt model.Alternative) (model.Alternative, error) {
	alt.Normalize()
	if strings.TrimSpace(alt.Description) == "" {
		return model.Alternative{}, fmt.Errorf("%w: description is required", ErrInvalidRecord)
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	questionID := sql.NullInt64{Int64: alt.QuestionID(), Valid: alt.QuestionID() != 0}

	if alt.IsNew() {
		res, err := s.db.db.ExecContext(ctx,
			`INSERT INTO alternatives (description, is_correct, question_id) VALUES (?, ?, ?)`,
			alt.Description, alt.IsCorrect, questionID)
		if err != nil {
			return model.Alternative{}, fmt.Errorf("failed to insert alternative: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return model.Alternative{}, fmt.Errorf("failed to read alternative id: %w", err)
		}
		return s.get(ctx, id)
	}

	res, err := s.db.db.ExecContext(ctx,
		`UPDATE alternatives SET description = ?, is_correct = ?, question_id = ? WHERE id = ?`,
		alt.Description, alt.IsCorrect, questionID, alt.ID)
	if err != nil {
		return model.Alternative{}, fmt.Errorf("failed to update alternative: %w", err)
	}
	if err := checkAffected(res, alt.ID); err != nil {
		return model.Alternative{}, err
	}
	return s.get(ctx, alt.ID)
}

// Remove deletes the alternative
func (s *AlternativeService) Remove(ctx context.Context, alt model.Alternative) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	res, err := s.db.db.ExecContext(ctx, `DELETE FROM alternatives WHERE id = ?`, alt.ID)
	if err != nil {
		return fmt.Errorf("failed to delete alternative: %w", err)
	}
	return checkAffected(res, alt.ID)
}

func (s *AlternativeService) get(ctx context.Context, id int64) (model.Alternative, error) {
	row := s.db.db.QueryRowContext(ctx, selectAlternatives+" WHERE a.id = ?", id)
	alt, err := scanAlternative(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Alternative{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return alt, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAlternative(row scanner) (model.Alternative, error) {
	var (
		alt  model.Alternative
		qID  sql.NullInt64
		text sql.NullString
	)
	if err := row.Scan(&alt.ID, &alt.Description, &alt.IsCorrect, &qID, &text); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Alternative{}, err
		}
		return model.Alternative{}, fmt.Errorf("failed to scan alternative: %w", err)
	}
	if qID.Valid {
		alt.Question = &model.Question{ID: qID.Int64, Text: text.String}
	}
	return alt, nil
}
