package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

var (
	// ErrNotFound is returned when the record to update or remove does not exist
	ErrNotFound = errors.New("record not found")
	// ErrInvalidRecord is returned when a record misses required values
	ErrInvalidRecord = errors.New("invalid record")
)

// DefaultFileName is the database file created inside the data directory
const DefaultFileName = "quizdesk.db"

// DB is the SQLite database shared by the record services
type DB struct {
	db   *sql.DB
	mu   sync.Mutex
	path string
}

// Open opens or creates the database at path and applies the schema
func Open(path string) (*DB, error) {
	if path == "" {
		path = DefaultFileName
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// a single connection keeps pragmas and writes consistent
	db.SetMaxOpenConns(1)

	s := &DB{db: db, path: path}
	if err := s.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

// Path returns the database file path
func (s *DB) Path() string {
	return s.path
}

// Close closes the database
func (s *DB) Close() error {
	return s.db.Close()
}

// Alternatives returns the alternative record service
func (s *DB) Alternatives() *AlternativeService {
	return &AlternativeService{db: s}
}

// Questions returns the question record service
func (s *DB) Questions() *QuestionService {
	return &QuestionService{db: s}
}

func (s *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS questions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		text TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS alternatives (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		description TEXT NOT NULL,
		is_correct INTEGER NOT NULL DEFAULT 0,
		question_id INTEGER REFERENCES questions(id) ON DELETE SET NULL
	);

	CREATE INDEX IF NOT EXISTS idx_alternatives_question ON alternatives(question_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *DB) count(ctx context.Context, table string) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n, nil
}

func checkAffected(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return nil
}
