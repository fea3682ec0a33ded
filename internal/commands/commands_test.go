package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"tasklist/internal/commands"
	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/service"
	"tasklist/internal/testutil"
)

// runCommand is a helper to run a command with FakeStore.
func runCommand(t *testing.T, cmd commands.Command, store *testutil.FakeStore, args []string, quiet bool) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer

	cfg := &config.Config{
		Dir:      t.TempDir(),
		Quiet:    quiet,
		Settings: config.DefaultSettings(),
	}

	var s service.Store
	if store != nil {
		s = store
	}

	ctx := context.Background()
	code = cmd.Run(ctx, cfg, s, args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func storeWith(raw string) *testutil.FakeStore {
	store := testutil.NewFakeStore()
	store.Put(service.DefaultKey, raw)
	return store
}

func snapshot(t *testing.T, store *testutil.FakeStore) string {
	t.Helper()
	v, ok := store.Value(service.DefaultKey)
	if !ok {
		t.Fatal("expected a stored snapshot")
	}
	return v
}

// Tests for version command
func TestVersionCommand(t *testing.T) {
	cmd := &commands.VersionCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "tasklist 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

// Tests for help command
func TestHelpCommand(t *testing.T) {
	cmd := &commands.HelpCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !bytes.Contains([]byte(stdout), []byte("Usage:")) {
		t.Error("help output should contain 'Usage:'")
	}
}

// Tests for list command
func TestListCommand_WithTasks(t *testing.T) {
	store := storeWith(`["buy milk","call bob","write report"]`)

	stdout, stderr, code := runCommand(t, &commands.ListCmd{}, store, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	testutil.GoldenString(t, "list_with_tasks", stdout)

	if store.Writes(service.DefaultKey) != 0 {
		t.Error("list should not write the snapshot")
	}
}

func TestListCommand_Empty(t *testing.T) {
	stdout, _, code := runCommand(t, &commands.ListCmd{}, testutil.NewFakeStore(), nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "no tasks found\n" {
		t.Errorf("expected 'no tasks found', got %q", stdout)
	}
}

func TestListCommand_EmptyQuiet(t *testing.T) {
	stdout, _, code := runCommand(t, &commands.ListCmd{}, testutil.NewFakeStore(), nil, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" {
		t.Errorf("expected no output in quiet mode, got %q", stdout)
	}
}

func TestListCommand_CorruptSnapshot(t *testing.T) {
	store := storeWith(`{not json`)

	stdout, stderr, code := runCommand(t, &commands.ListCmd{}, store, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "no tasks found\n" {
		t.Errorf("expected 'no tasks found', got %q", stdout)
	}
	if snapshot(t, store) != `{not json` {
		t.Error("corrupt snapshot should be left untouched")
	}
}

func TestListCommand_UnexpectedArg(t *testing.T) {
	_, stderr, code := runCommand(t, &commands.ListCmd{}, testutil.NewFakeStore(), []string{"extra"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: unexpected argument: extra\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for add command
func TestAddCommand_Success(t *testing.T) {
	store := storeWith(`["buy milk"]`)

	stdout, stderr, code := runCommand(t, &commands.AddCmd{}, store, []string{"call", "bob"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("expected 'ok', got %q", stdout)
	}
	if got := snapshot(t, store); got != `["buy milk","call bob"]` {
		t.Errorf("unexpected snapshot %s", got)
	}
}

func TestAddCommand_Quiet(t *testing.T) {
	store := testutil.NewFakeStore()

	stdout, _, code := runCommand(t, &commands.AddCmd{}, store, []string{"x"}, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" {
		t.Errorf("expected no output in quiet mode, got %q", stdout)
	}
	if got := snapshot(t, store); got != `["x"]` {
		t.Errorf("unexpected snapshot %s", got)
	}
}

func TestAddCommand_TrimsText(t *testing.T) {
	store := testutil.NewFakeStore()

	_, _, code := runCommand(t, &commands.AddCmd{}, store, []string{"  buy milk  "}, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if got := snapshot(t, store); got != `["buy milk"]` {
		t.Errorf("unexpected snapshot %s", got)
	}
}

func TestAddCommand_Empty(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no args", nil},
		{"blank", []string{""}},
		{"whitespace", []string{"   ", "\t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.NewFakeStore()

			stdout, stderr, code := runCommand(t, &commands.AddCmd{}, store, tt.args, false)

			if code != exitcode.UserError {
				t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
			}
			if stdout != "" {
				t.Errorf("expected no stdout, got %q", stdout)
			}
			if stderr != "error: please enter a task\n" {
				t.Errorf("unexpected stderr %q", stderr)
			}
			if store.Writes(service.DefaultKey) != 0 {
				t.Error("empty task should not write the snapshot")
			}
		})
	}
}

func TestAddCommand_BackendError(t *testing.T) {
	store := testutil.NewFakeStore()
	store.SetErr = errors.New("disk full")

	_, stderr, code := runCommand(t, &commands.AddCmd{}, store, []string{"x"}, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if !bytes.Contains([]byte(stderr), []byte("disk full")) {
		t.Errorf("expected backend error in stderr, got %q", stderr)
	}
}

func TestCreateCommand_IsAdd(t *testing.T) {
	store := testutil.NewFakeStore()

	stdout, _, code := runCommand(t, &commands.CreateCmd{}, store, []string{"x"}, false)

	if code != exitcode.Success || stdout != "ok\n" {
		t.Fatalf("expected success, got code %d stdout %q", code, stdout)
	}
	if got := snapshot(t, store); got != `["x"]` {
		t.Errorf("unexpected snapshot %s", got)
	}
}

// Tests for rm command
func TestRmCommand_Success(t *testing.T) {
	store := storeWith(`["x","y","z"]`)

	stdout, stderr, code := runCommand(t, &commands.RmCmd{}, store, []string{"2"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("expected 'ok', got %q", stdout)
	}
	if got := snapshot(t, store); got != `["x","z"]` {
		t.Errorf("unexpected snapshot %s", got)
	}
}

func TestRmCommand_DuplicateRemovesFirst(t *testing.T) {
	store := storeWith(`["a","b","a"]`)

	_, _, code := runCommand(t, &commands.RmCmd{}, store, []string{"3"}, true)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if got := snapshot(t, store); got != `["b","a"]` {
		t.Errorf("unexpected snapshot %s", got)
	}
}

func TestRmCommand_NoRef(t *testing.T) {
	_, stderr, code := runCommand(t, &commands.RmCmd{}, storeWith(`["x"]`), nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task number required\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestRmCommand_InvalidRef(t *testing.T) {
	_, stderr, code := runCommand(t, &commands.RmCmd{}, storeWith(`["x"]`), []string{"abc"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: invalid task number: abc\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestRmCommand_OutOfRange(t *testing.T) {
	store := storeWith(`["x"]`)

	_, stderr, code := runCommand(t, &commands.RmCmd{}, store, []string{"5"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task number out of range: 5\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if store.Writes(service.DefaultKey) != 0 {
		t.Error("out of range rm should not write the snapshot")
	}
}

func TestRmCommand_BackendError(t *testing.T) {
	store := storeWith(`["x"]`)
	store.SetErr = errors.New("read-only file system")

	_, _, code := runCommand(t, &commands.RmCmd{}, store, []string{"1"}, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
}

func TestUICommand_UnexpectedArg(t *testing.T) {
	_, stderr, code := runCommand(t, &commands.UICmd{}, testutil.NewFakeStore(), []string{"now"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: unexpected argument: now\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestRegistry_Aliases(t *testing.T) {
	tests := map[string]string{
		"ls":     "list",
		"remove": "rm",
		"create": "create",
		"ui":     "ui",
	}
	for alias, want := range tests {
		cmd, ok := commands.DefaultRegistry.Find(alias)
		if !ok {
			t.Errorf("%s: not registered", alias)
			continue
		}
		if cmd.Name() != want {
			t.Errorf("%s: expected %s, got %s", alias, want, cmd.Name())
		}
	}
}

func TestHelpCommand_ListsRegisteredCommands(t *testing.T) {
	stdout, _, _ := runCommand(t, &commands.HelpCmd{}, nil, nil, false)

	for _, want := range []string{"list (ls)", "rm (remove)", "ui", "Add a task"} {
		if !bytes.Contains([]byte(stdout), []byte(want)) {
			t.Errorf("help output missing %q", want)
		}
	}
}

func TestRegistry_RejectsDuplicateAlias(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(&commands.ListCmd{}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := r.Register(&commands.ListCmd{}); err == nil {
		t.Error("expected error registering list twice")
	}
	if got := len(r.All()); got != 1 {
		t.Errorf("expected 1 command, got %d", got)
	}
}
