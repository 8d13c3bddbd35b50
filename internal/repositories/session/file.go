package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/davrost/arcana/internal/models"
)

// ErrNotFound is returned when no usable session has been persisted
var ErrNotFound = errors.New("session not found")

// FileConfig holds configuration for the file-backed session store
type FileConfig struct {
	// Path is the file the session record lives in
	Path string
}

// fileStore implements the Store interface on a single JSON file. The bot
// tracks exactly one session, so a file beats standing up another database.
type fileStore struct {
	path string
}

// NewFile creates a new file-backed session store
func NewFile(cfg *FileConfig) (*fileStore, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Path == "" {
		return nil, errors.New("path cannot be empty")
	}

	return &fileStore{
		path: cfg.Path,
	}, nil
}

// Load reads the persisted session
func (s *fileStore) Load(_ context.Context) (*models.Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	// A record without its thread identity cannot match anything
	if session.ChannelID == "" || session.MessageTimestamp == "" {
		return nil, ErrNotFound
	}

	return &session, nil
}

// Save overwrites the persisted session. The write goes through a temp file
// and a rename so a crash mid-write cannot corrupt the previous record.
func (s *fileStore) Save(_ context.Context, session *models.Session) error {
	if session == nil {
		return errors.New("session cannot be nil")
	}

	if session.ChannelID == "" || session.MessageTimestamp == "" {
		return errors.New("session channel ID and message timestamp cannot be empty")
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp session file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write session file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close session file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace session file: %w", err)
	}

	return nil
}
