// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/exceltools/internal/model"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	KeyWord  KeyWordConfig  `toml:"keyword"`
	WordFreq WordFreqConfig `toml:"wordfreq"`
}

// KeyWordConfig overrides keyword statistics defaults.
type KeyWordConfig struct {
	InputDir      *string `toml:"input-dir"`
	OutputDir     *string `toml:"output-dir"`
	StatMode      *string `toml:"stat-mode"`
	TargetNumber  *int    `toml:"target-number"`
	ForwardNumber *int    `toml:"forward-number"`
	SelectedColor *string `toml:"selected-color"`
}

// WordFreqConfig overrides word-frequency statistics defaults.
type WordFreqConfig struct {
	InputDir       *string `toml:"input-dir"`
	IntervalNumber *int    `toml:"interval-number"`
	SplitChar      *string `toml:"split-char"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Apply returns base with every value set in the file copied over it.
func (c FileConfig) Apply(base model.AppSetting) model.AppSetting {
	out := base
	applyString(&out.KwInputDir, c.KeyWord.InputDir)
	applyString(&out.KwOutputDir, c.KeyWord.OutputDir)
	applyString(&out.StatMode, c.KeyWord.StatMode)
	applyInt(&out.TargetNumber, c.KeyWord.TargetNumber)
	applyInt(&out.ForwardNumber, c.KeyWord.ForwardNumber)
	applyString(&out.SelectedColor, c.KeyWord.SelectedColor)
	applyString(&out.WfInputDir, c.WordFreq.InputDir)
	applyInt(&out.IntervalNumber, c.WordFreq.IntervalNumber)
	applyString(&out.SplitChar, c.WordFreq.SplitChar)
	return out
}

func applyString(target, value *string) {
	if value == nil {
		return
	}
	*target = *value
}

func applyInt(target, value *int) {
	if value == nil {
		return
	}
	*target = *value
}
