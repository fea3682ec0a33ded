// Package taskstore keeps the in-memory task list, its rendered entries and
// its persisted snapshot in sync.
package taskstore

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/oklog/ulid/v2"

	"tasklist/internal/service"
)

// EmptyTaskMessage is shown to the user when a blank task is submitted.
const EmptyTaskMessage = "Please enter a task"

// ErrEmptyTask is returned when the task text is empty after trimming.
var ErrEmptyTask = errors.New("task is empty")

// TaskStore owns the canonical task list.
//
// Every successful mutation rewrites the snapshot stored under the store's
// key, so the snapshot always equals the serialized items once a call returns.
// A TaskStore is not safe for concurrent use; surfaces drive it from a single
// event loop.
type TaskStore struct {
	blob   service.Store
	key    string
	view   Renderer
	input  Input
	notify Notifier
	logger hclog.Logger

	items   []string
	entries []Entry
	entropy io.Reader
}

// Option configures a TaskStore.
type Option func(*TaskStore)

// WithKey overrides the snapshot key (default service.DefaultKey).
func WithKey(key string) Option {
	return func(s *TaskStore) {
		if key != "" {
			s.key = key
		}
	}
}

// WithInput sets the surface Submit reads from.
func WithInput(in Input) Option {
	return func(s *TaskStore) {
		if in != nil {
			s.input = in
		}
	}
}

// WithNotifier sets the surface validation failures are reported to.
func WithNotifier(n Notifier) Option {
	return func(s *TaskStore) {
		if n != nil {
			s.notify = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l hclog.Logger) Option {
	return func(s *TaskStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates an empty TaskStore. Call Initialize to load the snapshot.
func New(blob service.Store, view Renderer, opts ...Option) *TaskStore {
	s := &TaskStore{
		blob:    blob,
		key:     service.DefaultKey,
		view:    view,
		input:   nopInput{},
		notify:  nopNotifier{},
		logger:  hclog.NewNullLogger(),
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.Named("taskstore")
	return s
}

// Initialize replaces the in-memory list with the persisted snapshot and
// renders every item. A missing, unreadable or malformed snapshot loads as
// an empty list. The snapshot is never written here.
func (s *TaskStore) Initialize(ctx context.Context) {
	for _, e := range s.entries {
		s.view.Remove(e.Handle)
	}
	s.entries = nil

	s.items = s.load(ctx)
	for _, text := range s.items {
		// Items from the snapshot are already trimmed and non-empty.
		s.render(text)
	}
	s.logger.Debug("initialized", "key", s.key, "count", len(s.items))
}

func (s *TaskStore) load(ctx context.Context) []string {
	raw, ok, err := s.blob.Get(ctx, s.key)
	if err != nil {
		s.logger.Warn("snapshot read failed, starting empty", "key", s.key, "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	items, err := Decode(raw)
	if err != nil {
		s.logger.Debug("snapshot unparsable, starting empty", "key", s.key, "error", err)
		return nil
	}
	return slices.Clone(items)
}

// Add adds text as a new task and persists the list.
func (s *TaskStore) Add(ctx context.Context, text string) (Entry, error) {
	return s.add(ctx, text)
}

// Submit adds the input surface's current value as a new task.
func (s *TaskStore) Submit(ctx context.Context) (Entry, error) {
	return s.add(ctx, s.input.Value())
}

func (s *TaskStore) add(ctx context.Context, text string) (Entry, error) {
	text = strings.ToValidUTF8(strings.TrimSpace(text), "\uFFFD")
	if text == "" {
		s.notify.Notify(EmptyTaskMessage)
		return Entry{}, ErrEmptyTask
	}

	e := s.render(text)
	s.items = append(s.items, text)
	if err := s.save(ctx); err != nil {
		return e, err
	}
	s.input.Clear()
	return e, nil
}

// Remove withdraws the entry identified by h and deletes the first item with
// the same text. Unknown handles are ignored. The snapshot is rewritten only
// when an item was deleted.
func (s *TaskStore) Remove(ctx context.Context, h Handle) (bool, error) {
	i := slices.IndexFunc(s.entries, func(e Entry) bool { return e.Handle == h })
	if i < 0 {
		s.logger.Debug("remove: unknown handle", "handle", h)
		return false, nil
	}
	text := s.entries[i].Text
	s.entries = slices.Delete(s.entries, i, i+1)
	s.view.Remove(h)

	j := slices.Index(s.items, text)
	if j < 0 {
		s.logger.Debug("remove: no matching item", "text", text)
		return false, nil
	}
	s.items = slices.Delete(s.items, j, j+1)
	if err := s.save(ctx); err != nil {
		return true, err
	}
	return true, nil
}

// Items returns a copy of the task list.
func (s *TaskStore) Items() []string {
	return slices.Clone(s.items)
}

// Entries returns a copy of the rendered entries in display order.
func (s *TaskStore) Entries() []Entry {
	return slices.Clone(s.entries)
}

func (s *TaskStore) render(text string) Entry {
	id := ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy)
	e := Entry{Handle: Handle(id.String()), Text: text}
	s.entries = append(s.entries, e)
	s.view.Append(e)
	return e
}

func (s *TaskStore) save(ctx context.Context) error {
	raw, err := Encode(s.items)
	if err != nil {
		return err
	}
	if err := s.blob.Set(ctx, s.key, raw); err != nil {
		return fmt.Errorf("persist tasks: %w", err)
	}
	s.logger.Debug("persisted", "key", s.key, "count", len(s.items))
	return nil
}
