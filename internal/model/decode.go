package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
)

// ParseError reports a payload that could not be read as a JSON object.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse config payload: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewKeyWordStatConfig builds a keyword payload from a mapping or JSON text.
// A nil source yields the zero value. Keys that are missing or hold a value
// of the wrong kind leave their field at its zero value.
func NewKeyWordStatConfig(source any) (KeyWordStatConfig, error) {
	m, err := sourceMap(source)
	if err != nil {
		return KeyWordStatConfig{}, err
	}
	return KeyWordStatConfigFrom(m), nil
}

// KeyWordStatConfigFrom copies the keyword fields out of m.
func KeyWordStatConfigFrom(m map[string]any) KeyWordStatConfig {
	var c KeyWordStatConfig
	c.KwInputDir, _ = stringField(m, "KwInputDir")
	c.KwOutputDir, _ = stringField(m, "KwOutputDir")
	c.StatMode, _ = stringField(m, "StatMode")
	c.TargetNumber, _ = intField(m, "TargetNumber")
	c.ForwardNumber, _ = intField(m, "ForwardNumber")
	c.SelectedColor, _ = stringField(m, "SelectedColor")
	return c
}

// UnmarshalJSON decodes with the same rules as NewKeyWordStatConfig.
func (c *KeyWordStatConfig) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	cfg, err := NewKeyWordStatConfig(data)
	if err != nil {
		return err
	}
	*c = cfg
	return nil
}

// NewWordFreqStatConfig builds a word-frequency payload from a mapping or JSON text.
func NewWordFreqStatConfig(source any) (WordFreqStatConfig, error) {
	m, err := sourceMap(source)
	if err != nil {
		return WordFreqStatConfig{}, err
	}
	return WordFreqStatConfigFrom(m), nil
}

// WordFreqStatConfigFrom copies the word-frequency fields out of m.
func WordFreqStatConfigFrom(m map[string]any) WordFreqStatConfig {
	var c WordFreqStatConfig
	c.WfInputDir, _ = stringField(m, "WfInputDir")
	c.IntervalNumber, _ = intField(m, "IntervalNumber")
	c.SplitChar, _ = stringField(m, "SplitChar")
	return c
}

// UnmarshalJSON decodes with the same rules as NewWordFreqStatConfig.
func (c *WordFreqStatConfig) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	cfg, err := NewWordFreqStatConfig(data)
	if err != nil {
		return err
	}
	*c = cfg
	return nil
}

// UnmarshalJSON reads both payloads from one flat object.
func (s *AppSetting) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	m, err := sourceMap(data)
	if err != nil {
		return err
	}
	s.KeyWordStatConfig = KeyWordStatConfigFrom(m)
	s.WordFreqStatConfig = WordFreqStatConfigFrom(m)
	return nil
}

func sourceMap(source any) (map[string]any, error) {
	switch v := source.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return v, nil
	case string:
		return parseObject([]byte(v))
	case []byte:
		return parseObject(v)
	case json.RawMessage:
		return parseObject(v)
	default:
		return nil, &ParseError{Err: fmt.Errorf("unsupported source type %T", source)}
	}
}

func parseObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, &ParseError{Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &ParseError{Err: errors.New("unexpected data after JSON value")}
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, &ParseError{Err: fmt.Errorf("expected a JSON object, got %s", jsonKind(raw))}
	}
	return m, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

func stringField(m map[string]any, key string) (string, bool) {
	s, ok := m[key].(string)
	return s, ok
}

func intField(m map[string]any, key string) (int, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	return toInt(v)
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int64ToInt(n)
	case uint:
		return uint64ToInt(uint64(n))
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return uint64ToInt(uint64(n))
	case uint64:
		return uint64ToInt(n)
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int64ToInt(i)
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	default:
		return 0, false
	}
}

func int64ToInt(n int64) (int, bool) {
	if n < math.MinInt || n > math.MaxInt {
		return 0, false
	}
	return int(n), true
}

func uint64ToInt(n uint64) (int, bool) {
	if n > math.MaxInt {
		return 0, false
	}
	return int(n), true
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return 0, false
	}
	if f < math.MinInt || f >= math.MaxInt {
		return 0, false
	}
	return int(f), true
}
