// Package settings owns the current statistics configuration.
package settings

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/verte-zerg/exceltools/internal/model"
)

// Store persists settings sections.
type Store interface {
	SaveKeyWord(ctx context.Context, cfg model.KeyWordStatConfig) error
	SaveWordFreq(ctx context.Context, cfg model.WordFreqStatConfig) error
	LoadKeyWord(ctx context.Context) (model.KeyWordStatConfig, bool, error)
	LoadWordFreq(ctx context.Context) (model.WordFreqStatConfig, bool, error)
	DeleteAll(ctx context.Context) error
}

// Settings holds the current payloads and saves every change.
type Settings struct {
	mu       sync.Mutex
	store    Store
	defaults model.AppSetting
	current  model.AppSetting
	warnings []error
}

// New loads saved sections over defaults. Sections never saved keep the
// defaults, and so do sections whose saved payload cannot be parsed; those are
// reported by Warnings.
func New(ctx context.Context, store Store, defaults model.AppSetting) (*Settings, error) {
	s := &Settings{
		store:    store,
		defaults: defaults,
		current:  defaults,
	}
	kw, ok, err := store.LoadKeyWord(ctx)
	if lerr := s.loadErr("keyword", err); lerr != nil {
		return nil, lerr
	}
	if ok && err == nil {
		s.current.KeyWordStatConfig = kw
	}
	wf, ok, err := store.LoadWordFreq(ctx)
	if lerr := s.loadErr("word-frequency", err); lerr != nil {
		return nil, lerr
	}
	if ok && err == nil {
		s.current.WordFreqStatConfig = wf
	}
	return s, nil
}

// loadErr records unparsable payloads as warnings and returns any other error.
func (s *Settings) loadErr(section string, err error) error {
	if err == nil {
		return nil
	}
	var perr *model.ParseError
	if errors.As(err, &perr) {
		s.warnings = append(s.warnings, fmt.Errorf("ignoring saved %s settings: %w", section, err))
		return nil
	}
	return fmt.Errorf("failed to load %s settings: %w", section, err)
}

// Warnings lists saved sections that were replaced by defaults on load.
func (s *Settings) Warnings() []error {
	return append([]error(nil), s.warnings...)
}

// AppSetting returns a copy of both payloads.
func (s *Settings) AppSetting() model.AppSetting {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// KeyWordStatConfig returns the current keyword payload.
func (s *Settings) KeyWordStatConfig() model.KeyWordStatConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.KeyWordStatConfig
}

// WordFreqStatConfig returns the current word-frequency payload.
func (s *Settings) WordFreqStatConfig() model.WordFreqStatConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.WordFreqStatConfig
}

// UpdateKeyWordStatConfig replaces the keyword payload and saves it.
func (s *Settings) UpdateKeyWordStatConfig(ctx context.Context, cfg model.KeyWordStatConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.SaveKeyWord(ctx, cfg); err != nil {
		return fmt.Errorf("failed to save keyword settings: %w", err)
	}
	s.current.KeyWordStatConfig = cfg
	return nil
}

// UpdateWordFreqStatConfig replaces the word-frequency payload and saves it.
func (s *Settings) UpdateWordFreqStatConfig(ctx context.Context, cfg model.WordFreqStatConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.SaveWordFreq(ctx, cfg); err != nil {
		return fmt.Errorf("failed to save word-frequency settings: %w", err)
	}
	s.current.WordFreqStatConfig = cfg
	return nil
}

// Reset drops saved sections and restores the defaults.
func (s *Settings) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear settings: %w", err)
	}
	s.current = s.defaults
	return nil
}
