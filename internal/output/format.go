// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"
)

// NoTasks is printed by the list command when nothing is stored.
const NoTasks = "no tasks found"

// FormatTask formats a task line.
// Format: "{N:>4}  {TEXT}\n" (4-wide right-aligned number, two spaces, text)
func FormatTask(w io.Writer, num int, text string) {
	fmt.Fprintf(w, "%4d  %s\n", num, normalizeText(text))
}

// FormatError formats a user-facing error line.
func FormatError(w io.Writer, msg string) {
	fmt.Fprintf(w, "error: %s\n", msg)
}

// normalizeText replaces newlines with spaces so each task stays on one line.
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	return strings.ReplaceAll(text, "\n", " ")
}
