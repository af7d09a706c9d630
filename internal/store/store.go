// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/exceltools/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Sections stored in the settings table.
const (
	SectionKeyWord  = "keyword"
	SectionWordFreq = "wordfreq"
)

// Store wraps SQLite access for saved settings.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			section TEXT PRIMARY KEY,
			payload TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SaveKeyWord stores the keyword payload.
func (s *Store) SaveKeyWord(ctx context.Context, cfg model.KeyWordStatConfig) error {
	return s.saveSection(ctx, SectionKeyWord, cfg)
}

// SaveWordFreq stores the word-frequency payload.
func (s *Store) SaveWordFreq(ctx context.Context, cfg model.WordFreqStatConfig) error {
	return s.saveSection(ctx, SectionWordFreq, cfg)
}

// LoadKeyWord returns the saved keyword payload. ok is false when nothing was saved.
func (s *Store) LoadKeyWord(ctx context.Context) (cfg model.KeyWordStatConfig, ok bool, err error) {
	payload, ok, err := s.loadSection(ctx, SectionKeyWord)
	if err != nil || !ok {
		return model.KeyWordStatConfig{}, ok, err
	}
	cfg, err = model.NewKeyWordStatConfig(payload)
	if err != nil {
		return model.KeyWordStatConfig{}, false, fmt.Errorf("stored %s payload: %w", SectionKeyWord, err)
	}
	return cfg, true, nil
}

// LoadWordFreq returns the saved word-frequency payload. ok is false when nothing was saved.
func (s *Store) LoadWordFreq(ctx context.Context) (cfg model.WordFreqStatConfig, ok bool, err error) {
	payload, ok, err := s.loadSection(ctx, SectionWordFreq)
	if err != nil || !ok {
		return model.WordFreqStatConfig{}, ok, err
	}
	cfg, err = model.NewWordFreqStatConfig(payload)
	if err != nil {
		return model.WordFreqStatConfig{}, false, fmt.Errorf("stored %s payload: %w", SectionWordFreq, err)
	}
	return cfg, true, nil
}

// DeleteAll removes every saved section.
func (s *Store) DeleteAll(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM settings`)
	return err
}

func (s *Store) saveSection(ctx context.Context, section string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO settings (section, payload, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(section) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		section,
		string(data),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	return err
}

func (s *Store) loadSection(ctx context.Context, section string) (string, bool, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM settings WHERE section = ?`, section).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return payload, true, nil
}
