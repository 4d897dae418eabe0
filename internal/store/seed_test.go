package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSeed = `
questions:
  - text: "2 + 2 = ?"
    alternatives:
      - {description: "4", correct: true}
      - {description: "5", correct: false}
  - text: "Capital of Portugal?"
    alternatives:
      - {description: "Lisbon", correct: true}
`

func TestParseSeed(t *testing.T) {
	seed, err := ParseSeed([]byte(sampleSeed))
	require.NoError(t, err)
	require.Len(t, seed.Questions, 2)
	assert.Equal(t, "2 + 2 = ?", seed.Questions[0].Text)
	assert.Len(t, seed.Questions[0].Alternatives, 2)
	assert.True(t, seed.Questions[0].Alternatives[0].Correct)
}

func TestParseSeed_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", "questions: [\n"},
		{"question without text", "questions:\n  - alternatives: []\n"},
		{"alternative without description", "questions:\n  - text: q\n    alternatives:\n      - {correct: true}\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseSeed([]byte(test.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleSeed), 0o600))

	seed, err := LoadSeed(path)
	require.NoError(t, err)
	assert.Len(t, seed.Questions, 2)

	_, err = LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestApplySeed_OnlyIntoEmptyDatabase(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	seed, err := ParseSeed([]byte(sampleSeed))
	require.NoError(t, err)

	applied, err := db.Apply(ctx, seed)
	require.NoError(t, err)
	assert.True(t, applied)

	alts, err := db.Alternatives().FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, alts, 3)
	assert.Equal(t, "Lisbon", alts[2].Description)
	assert.Equal(t, "Capital of Portugal?", alts[2].QuestionText())

	applied, err = db.Apply(ctx, seed)
	require.NoError(t, err)
	assert.False(t, applied)

	alts, err = db.Alternatives().FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, alts, 3)

	applied, err = db.Apply(ctx, nil)
	require.NoError(t, err)
	assert.False(t, applied)
}
