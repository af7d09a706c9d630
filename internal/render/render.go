// Package render prints configuration payloads for the terminal.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/exceltools/internal/model"
)

// Format selects how payloads are printed.
type Format string

// Supported output formats.
const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

var titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)

// ParseFormat validates an --output value.
func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(value))); f {
	case "", FormatTable:
		return FormatTable, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected table, json or yaml)", value)
	}
}

// KeyWordRows lists the keyword payload as field/value pairs.
func KeyWordRows(cfg model.KeyWordStatConfig) [][]string {
	return [][]string{
		{"KwInputDir", cfg.KwInputDir},
		{"KwOutputDir", cfg.KwOutputDir},
		{"StatMode", cfg.StatMode},
		{"TargetNumber", strconv.Itoa(cfg.TargetNumber)},
		{"ForwardNumber", strconv.Itoa(cfg.ForwardNumber)},
		{"SelectedColor", cfg.SelectedColor},
	}
}

// WordFreqRows lists the word-frequency payload as field/value pairs.
func WordFreqRows(cfg model.WordFreqStatConfig) [][]string {
	return [][]string{
		{"WfInputDir", cfg.WfInputDir},
		{"IntervalNumber", strconv.Itoa(cfg.IntervalNumber)},
		{"SplitChar", cfg.SplitChar},
	}
}

// Table writes a titled field/value table.
func Table(w io.Writer, title string, rows [][]string) error {
	if title != "" {
		if _, err := fmt.Fprintln(w, titleStyle.Render(title)); err != nil {
			return err
		}
	}
	for _, line := range formatTable([]string{"Field", "Value"}, rows) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// KeyWord writes the keyword payload in the given format.
func KeyWord(w io.Writer, format Format, cfg model.KeyWordStatConfig) error {
	if format == FormatTable {
		return Table(w, "Keyword statistics", KeyWordRows(cfg))
	}
	return encode(w, format, cfg)
}

// WordFreq writes the word-frequency payload in the given format.
func WordFreq(w io.Writer, format Format, cfg model.WordFreqStatConfig) error {
	if format == FormatTable {
		return Table(w, "Word-frequency statistics", WordFreqRows(cfg))
	}
	return encode(w, format, cfg)
}

// AppSetting writes both payloads in the given format.
func AppSetting(w io.Writer, format Format, setting model.AppSetting) error {
	if format != FormatTable {
		return encode(w, format, setting)
	}
	if err := KeyWord(w, format, setting.KeyWordStatConfig); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return WordFreq(w, format, setting.WordFreqStatConfig)
}

func encode(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
