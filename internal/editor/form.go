// Package editor provides the Bubble Tea form for editing a payload.
package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/exceltools/internal/model"
)

// Kind selects which payload the form edits.
type Kind int

// Editable payloads.
const (
	KindKeyWord Kind = iota
	KindWordFreq
)

func (k Kind) String() string {
	switch k {
	case KindKeyWord:
		return "keyword"
	case KindWordFreq:
		return "wordfreq"
	default:
		return "unknown"
	}
}

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

type field struct {
	key     string
	numeric bool
	input   textinput.Model
}

// Model implements the Bubble Tea form.
type Model struct {
	kind   Kind
	fields []field
	focus  int
	errMsg string

	submitted bool
	keyWord   model.KeyWordStatConfig
	wordFreq  model.WordFreqStatConfig
}

// NewKeyWordModel builds a form prefilled with cfg.
func NewKeyWordModel(cfg model.KeyWordStatConfig) *Model {
	m := &Model{kind: KindKeyWord, keyWord: cfg}
	m.fields = []field{
		newField("KwInputDir", false, cfg.KwInputDir),
		newField("KwOutputDir", false, cfg.KwOutputDir),
		newField("StatMode", false, cfg.StatMode),
		newField("TargetNumber", true, strconv.Itoa(cfg.TargetNumber)),
		newField("ForwardNumber", true, strconv.Itoa(cfg.ForwardNumber)),
		newField("SelectedColor", false, cfg.SelectedColor),
	}
	m.fields[2].input.Placeholder = model.RowMode + " / " + model.ColumnMode
	m.fields[5].input.Placeholder = strings.Join([]string{model.ColorRed, model.ColorGreen, model.ColorBlue, model.ColorYellow}, " / ")
	m.setFocus(0)
	return m
}

// NewWordFreqModel builds a form prefilled with cfg.
func NewWordFreqModel(cfg model.WordFreqStatConfig) *Model {
	m := &Model{kind: KindWordFreq, wordFreq: cfg}
	m.fields = []field{
		newField("WfInputDir", false, cfg.WfInputDir),
		newField("IntervalNumber", true, strconv.Itoa(cfg.IntervalNumber)),
		newField("SplitChar", false, cfg.SplitChar),
	}
	m.setFocus(0)
	return m
}

func newField(key string, numeric bool, value string) field {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	input.SetValue(value)
	return field{key: key, numeric: numeric, input: input}
}

// Kind reports which payload the form edits.
func (m *Model) Kind() Kind {
	return m.kind
}

// Submitted reports whether the user saved the form.
func (m *Model) Submitted() bool {
	return m.submitted
}

// KeyWord returns the keyword payload built on submit.
func (m *Model) KeyWord() model.KeyWordStatConfig {
	return m.keyWord
}

// WordFreq returns the word-frequency payload built on submit.
func (m *Model) WordFreq() model.WordFreqStatConfig {
	return m.wordFreq
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab, tea.KeyDown:
			return m, m.setFocus(m.focus + 1)
		case tea.KeyShiftTab, tea.KeyUp:
			return m, m.setFocus(m.focus - 1)
		case tea.KeyCtrlS:
			return m, m.submit()
		case tea.KeyEnter:
			if m.focus == len(m.fields)-1 {
				return m, m.submit()
			}
			return m, m.setFocus(m.focus + 1)
		}
	}
	var cmd tea.Cmd
	m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Edit %s settings", m.kind)))
	b.WriteString("\n\n")
	labelWidth := 0
	for _, f := range m.fields {
		if w := lipgloss.Width(f.key); w > labelWidth {
			labelWidth = w
		}
	}
	for i, f := range m.fields {
		style := labelStyle
		if i == m.focus {
			style = activeStyle
		}
		b.WriteString(style.Width(labelWidth + 2).Render(f.key))
		b.WriteString(f.input.View())
		b.WriteByte('\n')
	}
	if m.errMsg != "" {
		b.WriteByte('\n')
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(footerStyle.Render("tab/↓ next  shift+tab/↑ prev  enter on last field or ctrl+s save  esc cancel"))
	return b.String()
}

func (m *Model) setFocus(index int) tea.Cmd {
	if len(m.fields) == 0 {
		return nil
	}
	if index < 0 {
		index = len(m.fields) - 1
	}
	if index >= len(m.fields) {
		index = 0
	}
	for i := range m.fields {
		m.fields[i].input.Blur()
	}
	m.focus = index
	return m.fields[index].input.Focus()
}

// Source returns the entered values as a payload mapping. Empty inputs are
// left out so their fields fall back to the zero value.
func (m *Model) Source() (map[string]any, error) {
	source := make(map[string]any, len(m.fields))
	for _, f := range m.fields {
		value := f.input.Value()
		if !f.numeric {
			if value != "" {
				source[f.key] = value
			}
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("%s must be a whole number", f.key)
		}
		source[f.key] = n
	}
	return source, nil
}

func (m *Model) submit() tea.Cmd {
	source, err := m.Source()
	if err != nil {
		m.errMsg = err.Error()
		return nil
	}
	switch m.kind {
	case KindKeyWord:
		m.keyWord = model.KeyWordStatConfigFrom(source)
	case KindWordFreq:
		m.wordFreq = model.WordFreqStatConfigFrom(source)
	}
	m.errMsg = ""
	m.submitted = true
	return tea.Quit
}
