package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	log "github.com/sirupsen/logrus"
)

// HighScoreStore persists the best score as a small JSON file. A missing or
// unreadable file reads as zero so a fresh install starts clean.
type HighScoreStore struct {
	path string
}

type highScoreFile struct {
	HighScore int `json:"high_score"`
}

func NewHighScoreStore(path string) *HighScoreStore {
	return &HighScoreStore{path: path}
}

// Load returns the stored high score, or 0 when no valid file exists.
func (s *HighScoreStore) Load() int {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.WithError(err).WithField("path", s.path).Warn("high score unreadable")
		}
		return 0
	}
	var f highScoreFile
	if err := json.Unmarshal(data, &f); err != nil {
		log.WithError(err).WithField("path", s.path).Warn("high score corrupt")
		return 0
	}
	if f.HighScore < 0 {
		return 0
	}
	return f.HighScore
}

// Save writes the score, replacing any previous value.
func (s *HighScoreStore) Save(score int) error {
	data, err := json.Marshal(highScoreFile{HighScore: score})
	if err != nil {
		return fmt.Errorf("encode high score: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
