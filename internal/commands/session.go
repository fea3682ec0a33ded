package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/logging"
	"tasklist/internal/output"
	"tasklist/internal/service"
	"tasklist/internal/taskstore"
)

// entryView is the render surface for one-shot commands: it keeps the
// entries in display order so commands can print them or address them by
// number.
type entryView struct {
	entries []taskstore.Entry
}

func (v *entryView) Append(e taskstore.Entry) {
	v.entries = append(v.entries, e)
}

func (v *entryView) Remove(h taskstore.Handle) {
	for i, e := range v.entries {
		if e.Handle == h {
			v.entries = append(v.entries[:i], v.entries[i+1:]...)
			return
		}
	}
}

// at returns the entry shown as number num (1-based).
func (v *entryView) at(num int) (taskstore.Entry, bool) {
	if num < 1 || num > len(v.entries) {
		return taskstore.Entry{}, false
	}
	return v.entries[num-1], true
}

// argsInput is the input surface for `add`: the joined positional args.
type argsInput struct {
	text string
}

func (in *argsInput) Value() string { return in.text }
func (in *argsInput) Clear()        { in.text = "" }

// errNotifier reports validation failures on stderr.
type errNotifier struct {
	w io.Writer
}

func (n errNotifier) Notify(msg string) {
	output.FormatError(n.w, strings.ToLower(msg))
}

// openSession creates a TaskStore rendering into view and loads the snapshot.
func openSession(ctx context.Context, cfg *config.Config, store service.Store, view taskstore.Renderer, opts ...taskstore.Option) *taskstore.TaskStore {
	opts = append([]taskstore.Option{
		taskstore.WithKey(cfg.Settings.Storage.Key),
		taskstore.WithLogger(logging.FromContext(ctx)),
	}, opts...)
	ts := taskstore.New(store, view, opts...)
	ts.Initialize(ctx)
	return ts
}

// reportBackendError prints a backend failure and returns its exit code.
func reportBackendError(errOut io.Writer, err error) int {
	output.FormatError(errOut, fmt.Sprintf("backend error: %v", err))
	return exitcode.BackendError
}
