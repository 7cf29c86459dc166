// Package ui holds the Bubble Tea model for the interactive fix
// review: diagnostics are collected while a spinner runs, then each
// proposed edit can be accepted or skipped before anything touches the
// disk.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"tsfix/internal/diag"
)

// CollectFunc produces the diagnostics to review. It runs in the
// background while the model shows a spinner.
type CollectFunc func() ([]diag.Diagnostic, error)

type phase uint8

const (
	phaseCollecting phase = iota
	phaseReviewing
	phaseDone
)

type diagnosticsMsg struct {
	diags []diag.Diagnostic
	err   error
}

type reviewItem struct {
	d        diag.Diagnostic
	selected bool
}

// ReviewModel drives the accept/skip selection over collected
// diagnostics.
type ReviewModel struct {
	collect CollectFunc
	spinner spinner.Model
	phase   phase
	items   []reviewItem
	cursor  int
	width   int
	err     error
	aborted bool
}

func NewReviewModel(collect CollectFunc) *ReviewModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	return &ReviewModel{
		collect: collect,
		spinner: sp,
		width:   80,
	}
}

func (m *ReviewModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runCollect())
}

func (m *ReviewModel) runCollect() tea.Cmd {
	return func() tea.Msg {
		diags, err := m.collect()
		return diagnosticsMsg{diags: diags, err: err}
	}
}

func (m *ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case diagnosticsMsg:
		if msg.err != nil {
			m.err = msg.err
			m.phase = phaseDone
			return m, tea.Quit
		}
		if len(msg.diags) == 0 {
			m.phase = phaseDone
			return m, tea.Quit
		}
		m.items = make([]reviewItem, 0, len(msg.diags))
		for _, d := range msg.diags {
			m.items = append(m.items, reviewItem{d: d, selected: true})
		}
		m.phase = phaseReviewing
		return m, nil

	case spinner.TickMsg:
		if m.phase != phaseCollecting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *ReviewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.aborted = true
		m.phase = phaseDone
		return m, tea.Quit
	}
	if m.phase != phaseReviewing {
		return m, nil
	}
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case " ":
		m.items[m.cursor].selected = !m.items[m.cursor].selected
	case "a":
		for i := range m.items {
			m.items[i].selected = true
		}
	case "n":
		for i := range m.items {
			m.items[i].selected = false
		}
	case "enter":
		m.phase = phaseDone
		return m, tea.Quit
	}
	return m, nil
}

func (m *ReviewModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	skippedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	switch m.phase {
	case phaseCollecting:
		return fmt.Sprintf("%s analyzing unused imports...\n", m.spinner.View())
	case phaseReviewing:
		var b strings.Builder
		b.WriteString(titleStyle.Render(fmt.Sprintf("Review %d proposed edits", len(m.items))))
		b.WriteString("\n\n")
		for i, item := range m.items {
			cursor := " "
			if i == m.cursor {
				cursor = ">"
			}
			mark := "[ ]"
			style := skippedStyle
			if item.selected {
				mark = "[x]"
				style = selectedStyle
			}
			b.WriteString(fmt.Sprintf("%s %s %s\n", cursor, mark, style.Render(m.describe(item.d))))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("space toggle · a all · n none · enter apply · q abort"))
		b.WriteString("\n")
		return b.String()
	}
	return ""
}

func (m *ReviewModel) describe(d diag.Diagnostic) string {
	var desc string
	if d.RemovesLine() {
		desc = fmt.Sprintf("%s:%d remove whole import line", d.File, d.Line)
	} else {
		desc = fmt.Sprintf("%s:%d remove '%s'", d.File, d.Line, d.Import)
	}
	return truncate(desc, m.width-8)
}

// Err reports a collector failure surfaced inside the UI.
func (m *ReviewModel) Err() error {
	return m.err
}

// Aborted reports whether the user quit without applying.
func (m *ReviewModel) Aborted() bool {
	return m.aborted
}

// Accepted returns the diagnostics left selected when the review
// ended. Empty when nothing was collected or everything was toggled
// off.
func (m *ReviewModel) Accepted() []diag.Diagnostic {
	accepted := make([]diag.Diagnostic, 0, len(m.items))
	for _, item := range m.items {
		if item.selected {
			accepted = append(accepted, item.d)
		}
	}
	return accepted
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
