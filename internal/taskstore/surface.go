package taskstore

// Handle identifies one rendered entry. It is assigned when the entry is
// rendered and never reused within a store.
type Handle string

// Entry is a rendered task.
type Entry struct {
	Handle Handle
	Text   string
}

// Renderer is the display the store keeps in sync with its items.
// A removal trigger on the display reports the entry's Handle back to
// TaskStore.Remove.
type Renderer interface {
	// Append adds an entry to the end of the display.
	Append(e Entry)

	// Remove withdraws the entry with the given handle.
	Remove(h Handle)
}

// Input is the text entry surface that Submit reads from.
type Input interface {
	Value() string
	Clear()
}

// Notifier shows a blocking, user-visible message.
type Notifier interface {
	Notify(msg string)
}

type nopInput struct{}

func (nopInput) Value() string { return "" }
func (nopInput) Clear()        {}

type nopNotifier struct{}

func (nopNotifier) Notify(string) {}
