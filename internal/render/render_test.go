package render

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/exceltools/internal/model"
)

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]Format{"": FormatTable, "TABLE": FormatTable, "json": FormatJSON, " yaml ": FormatYAML} {
		got, err := ParseFormat(input)
		if err != nil {
			t.Fatalf("parse %q: %v", input, err)
		}
		if got != want {
			t.Fatalf("expected %q for %q, got %q", want, input, got)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestKeyWordTableListsEveryField(t *testing.T) {
	var buf bytes.Buffer
	cfg := model.DefaultAppSetting().KeyWordStatConfig
	if err := KeyWord(&buf, FormatTable, cfg); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, key := range []string{"KwInputDir", "KwOutputDir", "StatMode", "TargetNumber", "ForwardNumber", "SelectedColor"} {
		if !strings.Contains(out, key) {
			t.Fatalf("expected %s in output: %s", key, out)
		}
	}
	if !strings.Contains(out, model.RowMode) || !strings.Contains(out, model.ColorGreen) {
		t.Fatalf("expected default values in output: %s", out)
	}
}

func TestJSONOutputDecodesBack(t *testing.T) {
	var buf bytes.Buffer
	cfg := model.WordFreqStatConfig{WfInputDir: "/data", IntervalNumber: 2, SplitChar: "<"}
	if err := WordFreq(&buf, FormatJSON, cfg); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), `"SplitChar": "<"`) {
		t.Fatalf("expected unescaped split char: %s", buf.String())
	}
	got, err := model.NewWordFreqStatConfig(buf.Bytes())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != cfg {
		t.Fatalf("expected %+v, got %+v", cfg, got)
	}
}

func TestYAMLOutputIsFlat(t *testing.T) {
	var buf bytes.Buffer
	if err := AppSetting(&buf, FormatYAML, model.DefaultAppSetting()); err != nil {
		t.Fatalf("render: %v", err)
	}
	var m map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if m["TargetNumber"] != 8 || m["IntervalNumber"] != 5 {
		t.Fatalf("unexpected yaml mapping: %v", m)
	}
	setting := model.AppSetting{
		KeyWordStatConfig:  model.KeyWordStatConfigFrom(m),
		WordFreqStatConfig: model.WordFreqStatConfigFrom(m),
	}
	if setting != model.DefaultAppSetting() {
		t.Fatalf("expected defaults from yaml mapping, got %+v", setting)
	}
}
