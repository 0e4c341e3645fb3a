// Package tui provides the interactive two-word comparison screen.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/ttaw/internal/metaphone"
	"github.com/verte-zerg/ttaw/internal/model"
	"github.com/verte-zerg/ttaw/internal/poetry"
	"github.com/verte-zerg/ttaw/internal/report"
)

// Dictionary is the pronunciation source behind the screen.
type Dictionary interface {
	poetry.Lookuper
	Load(ctx context.Context) (model.Dictionary, error)
}

type loadedMsg struct {
	words int
	err   error
}

type verdicts struct {
	ready       bool
	rhymes      bool
	alliterates bool
	err         error
}

// Model implements the Bubble Tea comparison UI.
type Model struct {
	ctx  context.Context
	dict Dictionary

	inputs []textinput.Model
	focus  int

	width  int
	height int

	loading bool
	loadErr error
	words   int
	result  verdicts
}

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	codeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Italic(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// NewModel constructs the comparison screen. The dictionary is loaded in the
// background once the program starts; ctx bounds that load and every lookup.
func NewModel(ctx context.Context, dict Dictionary) *Model {
	m := &Model{
		ctx:     ctx,
		dict:    dict,
		loading: true,
		inputs: []textinput.Model{
			newWordInput("First:  "),
			newWordInput("Second: "),
		},
	}
	m.setFocus(0)
	return m
}

func newWordInput(prompt string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.Placeholder = "type a word"
	input.CharLimit = 64
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadDictionary(), textinput.Blink)
}

func (m *Model) loadDictionary() tea.Cmd {
	ctx, dict := m.ctx, m.dict
	return func() tea.Msg {
		d, err := dict.Load(ctx)
		return loadedMsg{words: len(d), err: err}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.loadErr = msg.err
		m.words = msg.words
		m.compare()
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab, tea.KeyDown, tea.KeyEnter:
			return m, m.setFocus(m.focus + 1)
		case tea.KeyShiftTab, tea.KeyUp:
			return m, m.setFocus(m.focus - 1)
		}
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		m.compare()
		return m, cmd
	default:
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
}

func (m *Model) setFocus(idx int) tea.Cmd {
	count := len(m.inputs)
	if idx < 0 {
		idx = count - 1
	}
	if idx >= count {
		idx = 0
	}
	m.focus = idx
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == m.focus {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

// compare refreshes the verdicts for the current pair. Nothing is looked up
// until the dictionary has loaded.
func (m *Model) compare() {
	m.result = verdicts{}
	if m.loading || m.loadErr != nil {
		return
	}
	a, b := m.inputs[0].Value(), m.inputs[1].Value()
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return
	}
	rhymes, err := poetry.Rhymes(m.ctx, m.dict, a, b)
	if err != nil {
		m.result = verdicts{err: err}
		return
	}
	alliterates, err := poetry.Alliterates(m.ctx, m.dict, a, b)
	if err != nil {
		m.result = verdicts{err: err}
		return
	}
	m.result = verdicts{ready: true, rhymes: rhymes, alliterates: alliterates}
}

// View implements tea.Model.
func (m *Model) View() string {
	contentWidth := 0
	if m.width > 0 {
		contentWidth = int(float64(m.width) * 0.70)
		if contentWidth < 20 {
			contentWidth = m.width
		}
	}

	lines := []string{titleStyle.Render("ttaw"), ""}
	for i := range m.inputs {
		lines = append(lines, m.inputs[i].View(), m.renderCodes(m.inputs[i].Value()), "")
	}
	lines = append(lines, m.renderVerdicts(contentWidth)...)
	content := strings.Join(lines, "\n")
	footer := m.renderFooter()

	if m.width == 0 || m.height == 0 {
		return content + "\n\n" + footer
	}
	content = lipgloss.NewStyle().Width(contentWidth).Render(content)
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderCodes(word string) string {
	primary, secondary := metaphone.Encode(word)
	if primary == "" && secondary == "" {
		return labelStyle.Render("  codes   -")
	}
	return labelStyle.Render("  codes   ") + codeStyle.Render(primary) + labelStyle.Render(" / ") + codeStyle.Render(secondary)
}

func (m *Model) renderVerdicts(width int) []string {
	if m.loadErr != nil {
		msg := fmt.Sprintf("dictionary unavailable: %v", m.loadErr)
		lines := wrapText(msg, width)
		for i := range lines {
			lines[i] = errorStyle.Render(lines[i])
		}
		return lines
	}
	rhyme, alliterate := m.verdictText()
	table := report.NewTable(report.Column{}, report.Column{})
	table.Row(labelStyle.Render("Rhyme"), rhyme)
	table.Row(labelStyle.Render("Alliterate"), alliterate)
	lines := table.Lines()
	if m.result.err != nil {
		for _, line := range wrapText(m.result.err.Error(), width) {
			lines = append(lines, errorStyle.Render(line))
		}
	}
	return lines
}

func (m *Model) verdictText() (string, string) {
	switch {
	case m.loading:
		loading := pendingStyle.Render("loading")
		return loading, loading
	case !m.result.ready:
		dash := pendingStyle.Render("-")
		return dash, dash
	}
	return report.Verdict(m.result.rhymes, true), report.Verdict(m.result.alliterates, true)
}

func (m *Model) renderFooter() string {
	segments := []string{"Tab switch field", "Esc quit"}
	switch {
	case m.loading:
		segments = append(segments, "loading dictionary")
	case m.loadErr == nil:
		segments = append(segments, fmt.Sprintf("%d words", m.words))
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}
