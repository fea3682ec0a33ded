package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklist/internal/service"
	"tasklist/internal/testutil"
)

func typeText(m *Model, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func press(m *Model, k tea.KeyType) {
	m.Update(tea.KeyMsg{Type: k})
}

func snapshot(t *testing.T, blob *testutil.FakeStore) string {
	t.Helper()
	v, ok := blob.Value(service.DefaultKey)
	require.True(t, ok)
	return v
}

func TestModel_LoadsStoredTasks(t *testing.T) {
	blob := testutil.NewFakeStore()
	blob.Put(service.DefaultKey, `["buy milk","call bob"]`)

	m := New(context.Background(), blob)

	require.Len(t, m.entries, 2)
	view := m.View()
	assert.Contains(t, view, "> buy milk")
	assert.Contains(t, view, "call bob")
	assert.Equal(t, 0, blob.Writes(service.DefaultKey))
}

func TestModel_EnterAddsAndClearsInput(t *testing.T) {
	blob := testutil.NewFakeStore()
	m := New(context.Background(), blob)

	typeText(m, "  buy milk ")
	press(m, tea.KeyEnter)

	assert.Equal(t, `["buy milk"]`, snapshot(t, blob))
	assert.Equal(t, "", m.input.Value())
	require.Len(t, m.entries, 1)
	assert.Equal(t, "buy milk", m.entries[0].Text)
	assert.Contains(t, m.View(), `Added "buy milk"`)
}

func TestModel_EmptySubmitShowsBlockingAlert(t *testing.T) {
	blob := testutil.NewFakeStore()
	m := New(context.Background(), blob)

	typeText(m, "   ")
	press(m, tea.KeyEnter)

	assert.Equal(t, "Please enter a task", m.alert)
	assert.Contains(t, m.View(), "Please enter a task")
	_, ok := blob.Value(service.DefaultKey)
	assert.False(t, ok)

	// The next key only dismisses the alert.
	typeText(m, "x")
	assert.Empty(t, m.alert)
	assert.Equal(t, "   ", m.input.Value())

	typeText(m, "y")
	assert.Equal(t, "   y", m.input.Value())
}

func TestModel_RemoveSelected(t *testing.T) {
	blob := testutil.NewFakeStore()
	blob.Put(service.DefaultKey, `["x","y","z"]`)
	m := New(context.Background(), blob)

	press(m, tea.KeyDown)
	press(m, tea.KeyCtrlX)

	assert.Equal(t, `["x","z"]`, snapshot(t, blob))
	require.Len(t, m.entries, 2)
	assert.Equal(t, 1, m.cursor)

	press(m, tea.KeyDown)
	press(m, tea.KeyCtrlX)
	assert.Equal(t, `["x"]`, snapshot(t, blob))
	assert.Equal(t, 0, m.cursor)
}

func TestModel_RemoveOnEmptyListIsNoop(t *testing.T) {
	blob := testutil.NewFakeStore()
	m := New(context.Background(), blob)

	press(m, tea.KeyCtrlX)

	assert.Equal(t, 0, blob.Writes(service.DefaultKey))
	assert.Contains(t, m.View(), "No tasks yet.")
}

func TestModel_SaveFailureShownInStatus(t *testing.T) {
	blob := testutil.NewFakeStore()
	blob.SetErr = errors.New("disk full")
	m := New(context.Background(), blob)

	typeText(m, "x")
	press(m, tea.KeyEnter)

	assert.Contains(t, m.status, "disk full")
	assert.Equal(t, "x", m.input.Value())
}

func TestModel_QuitKeys(t *testing.T) {
	m := New(context.Background(), testutil.NewFakeStore())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_CtrlCQuitsWhileAlertShown(t *testing.T) {
	m := New(context.Background(), testutil.NewFakeStore())
	press(m, tea.KeyEnter)
	require.NotEmpty(t, m.alert)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_LongInputIsNotTruncated(t *testing.T) {
	blob := testutil.NewFakeStore()
	m := New(context.Background(), blob)
	long := strings.Repeat("a", 1000)

	typeText(m, long)
	press(m, tea.KeyEnter)

	assert.Equal(t, `["`+long+`"]`, snapshot(t, blob))
}

func TestClampCursor(t *testing.T) {
	assert.Equal(t, 0, clampCursor(-1, 3))
	assert.Equal(t, 2, clampCursor(5, 3))
	assert.Equal(t, 0, clampCursor(2, 0))
	assert.Equal(t, 1, clampCursor(1, 3))
}
