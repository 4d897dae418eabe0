package store

// Package store persists questions and alternatives in SQLite through the
// pure Go modernc.org/sqlite driver. AlternativeService and QuestionService
// are the record services the editor screens work against.
