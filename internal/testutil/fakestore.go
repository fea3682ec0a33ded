// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"slices"
	"sync"

	"tasklist/internal/taskstore"
)

// FakeStore is an in-memory implementation of service.Store for testing.
type FakeStore struct {
	mu     sync.RWMutex
	values map[string]string
	writes map[string]int

	// Error injection for testing
	GetErr error
	SetErr error
}

// NewFakeStore creates an empty FakeStore.
func NewFakeStore() *FakeStore {
	return &FakeStore{
		values: make(map[string]string),
		writes: make(map[string]int),
	}
}

// Put stores a value without counting it as a write.
func (f *FakeStore) Put(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
}

// Value returns the raw value under key.
func (f *FakeStore) Value(key string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.values[key]
	return v, ok
}

// Writes returns how many times Set was called for key.
func (f *FakeStore) Writes(key string) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.writes[key]
}

// Get implements service.Store.
func (f *FakeStore) Get(ctx context.Context, key string) (string, bool, error) {
	if f.GetErr != nil {
		return "", false, f.GetErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.values[key]
	return v, ok, nil
}

// Set implements service.Store.
func (f *FakeStore) Set(ctx context.Context, key, value string) error {
	if f.SetErr != nil {
		return f.SetErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	f.writes[key]++
	return nil
}

// FakeView records what a TaskStore renders.
type FakeView struct {
	Entries []taskstore.Entry
	Removed []taskstore.Handle
}

// Append implements taskstore.Renderer.
func (v *FakeView) Append(e taskstore.Entry) {
	v.Entries = append(v.Entries, e)
}

// Remove implements taskstore.Renderer.
func (v *FakeView) Remove(h taskstore.Handle) {
	v.Removed = append(v.Removed, h)
	v.Entries = slices.DeleteFunc(v.Entries, func(e taskstore.Entry) bool { return e.Handle == h })
}

// Texts returns the displayed texts in order.
func (v *FakeView) Texts() []string {
	out := make([]string, 0, len(v.Entries))
	for _, e := range v.Entries {
		out = append(out, e.Text)
	}
	return out
}

// FakeInput is an input surface holding a fixed value until cleared.
type FakeInput struct {
	Text    string
	Cleared int
}

// Value implements taskstore.Input.
func (i *FakeInput) Value() string { return i.Text }

// Clear implements taskstore.Input.
func (i *FakeInput) Clear() {
	i.Text = ""
	i.Cleared++
}

// FakeNotifier records notifications.
type FakeNotifier struct {
	Messages []string
}

// Notify implements taskstore.Notifier.
func (n *FakeNotifier) Notify(msg string) {
	n.Messages = append(n.Messages, msg)
}
