package store

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Seed is the fixture format used to fill an empty database
type Seed struct {
	Questions []SeedQuestion `yaml:"questions"`
}

// SeedQuestion is a question with its alternatives
type SeedQuestion struct {
	Text         string            `yaml:"text"`
	Alternatives []SeedAlternative `yaml:"alternatives"`
}

// SeedAlternative is one answer option in a seed file
type SeedAlternative struct {
	Description string `yaml:"description"`
	Correct     bool   `yaml:"correct"`
}

// LoadSeed reads a YAML seed file
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes YAML seed data
func ParseSeed(data []byte) (*Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}
	for i, q := range seed.Questions {
		if q.Text == "" {
			return nil, fmt.Errorf("%w: seed question %d has no text", ErrInvalidRecord, i+1)
		}
		for j, a := range q.Alternatives {
			if a.Description == "" {
				return nil, fmt.Errorf("%w: seed question %d alternative %d has no description", ErrInvalidRecord, i+1, j+1)
			}
		}
	}
	return &seed, nil
}

// Apply writes seed into the database unless it already holds questions.
// It reports whether anything was written.
func (s *DB) Apply(ctx context.Context, seed *Seed) (bool, error) {
	if seed == nil || len(seed.Questions) == 0 {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.count(ctx, "questions")
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, q := range seed.Questions {
		res, err := tx.ExecContext(ctx, `INSERT INTO questions (text) VALUES (?)`, q.Text)
		if err != nil {
			return false, fmt.Errorf("failed to seed question: %w", err)
		}
		qID, err := res.LastInsertId()
		if err != nil {
			return false, fmt.Errorf("failed to read question id: %w", err)
		}
		for _, a := range q.Alternatives {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO alternatives (description, is_correct, question_id) VALUES (?, ?, ?)`,
				a.Description, a.Correct, qID); err != nil {
				return false, fmt.Errorf("failed to seed alternative: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit seed: %w", err)
	}
	return true, nil
}
