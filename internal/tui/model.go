// Package tui is the interactive terminal surface for a TaskStore: it renders
// the entries, captures new task text and reports removals back by handle.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tasklist/internal/service"
	"tasklist/internal/taskstore"
)

// Model is the bubbletea model. It is also the Renderer, Input and Notifier
// of its TaskStore, so all store calls happen on the Update goroutine.
type Model struct {
	ctx   context.Context
	store *taskstore.TaskStore

	input   textinput.Model
	entries []taskstore.Entry
	cursor  int
	width   int

	// alert is a pending blocking notification; the next key press
	// dismisses it and is otherwise ignored. ctrl+c still quits.
	alert  string
	status string
}

// New builds a model over blob and loads the stored tasks.
func New(ctx context.Context, blob service.Store, opts ...taskstore.Option) *Model {
	ti := textinput.New()
	ti.Placeholder = "Enter a new task"
	ti.CharLimit = 0
	ti.Width = 40
	ti.Focus()

	m := &Model{ctx: ctx, input: ti}
	opts = append(opts, taskstore.WithInput(m), taskstore.WithNotifier(m))
	m.store = taskstore.New(blob, m, opts...)
	m.store.Initialize(ctx)
	return m
}

// Run starts the program and blocks until the user quits.
func Run(ctx context.Context, blob service.Store, opts ...taskstore.Option) error {
	m := New(ctx, blob, opts...)
	_, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}

// Append implements taskstore.Renderer.
func (m *Model) Append(e taskstore.Entry) {
	m.entries = append(m.entries, e)
}

// Remove implements taskstore.Renderer.
func (m *Model) Remove(h taskstore.Handle) {
	for i, e := range m.entries {
		if e.Handle == h {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			break
		}
	}
	m.cursor = clampCursor(m.cursor, len(m.entries))
}

// Value implements taskstore.Input.
func (m *Model) Value() string { return m.input.Value() }

// Clear implements taskstore.Input.
func (m *Model) Clear() { m.input.Reset() }

// Notify implements taskstore.Notifier.
func (m *Model) Notify(msg string) { m.alert = msg }

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-10, 10)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.alert != "" {
			m.alert = ""
			return m, nil
		}
		switch msg.Type {
		case tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m.submit()
			return m, nil
		case tea.KeyUp:
			m.cursor = clampCursor(m.cursor-1, len(m.entries))
			return m, nil
		case tea.KeyDown:
			m.cursor = clampCursor(m.cursor+1, len(m.entries))
			return m, nil
		case tea.KeyCtrlX:
			m.removeSelected()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submit() {
	e, err := m.store.Submit(m.ctx)
	switch {
	case errors.Is(err, taskstore.ErrEmptyTask):
		m.status = ""
	case err != nil:
		m.status = fmt.Sprintf("save failed: %v", err)
	default:
		m.status = fmt.Sprintf("Added %q", e.Text)
		m.cursor = len(m.entries) - 1
	}
}

func (m *Model) removeSelected() {
	if len(m.entries) == 0 {
		return
	}
	e := m.entries[m.cursor]
	if _, err := m.store.Remove(m.ctx, e.Handle); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	m.status = fmt.Sprintf("Removed %q", e.Text)
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("To-Do List"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(emptyStyle.Render("No tasks yet."))
		b.WriteString("\n")
	}
	for i, e := range m.entries {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + e.Text))
		} else {
			b.WriteString("  " + e.Text)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.alert != "" {
		b.WriteString(alertStyle.Render(m.alert + "\n\npress any key"))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter add • ↑/↓ select • ctrl+x remove • esc quit"))
	return b.String()
}

func clampCursor(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}
