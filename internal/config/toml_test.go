package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/exceltools/internal/model"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
	base := model.DefaultAppSetting()
	if cfg.Apply(base) != base {
		t.Fatalf("expected empty config to keep defaults")
	}
}

func TestLoadConfigAppliesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[keyword]
input-dir = "/data/in"
stat-mode = "列统计"
target-number = 3

[wordfreq]
split-char = ","
interval-number = 0
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	got := cfg.Apply(model.DefaultAppSetting())
	if got.KwInputDir != "/data/in" || got.StatMode != model.ColumnMode || got.TargetNumber != 3 {
		t.Fatalf("unexpected keyword settings: %+v", got.KeyWordStatConfig)
	}
	if got.ForwardNumber != 5 || got.SelectedColor != model.ColorGreen {
		t.Fatalf("expected untouched keyword defaults, got %+v", got.KeyWordStatConfig)
	}
	if got.SplitChar != "," || got.IntervalNumber != 0 {
		t.Fatalf("unexpected word-frequency settings: %+v", got.WordFreqStatConfig)
	}
}

func TestLoadConfigRejectsInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[keyword\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestDefaultPathsFollowXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	if got := DefaultConfigPath(); got != filepath.Join("/tmp/cfg", "exceltools", "config.toml") {
		t.Fatalf("unexpected config path: %s", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/tmp/data", "exceltools", "exceltools.db") {
		t.Fatalf("unexpected db path: %s", got)
	}
}
