package taskstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Encode serializes items as a JSON array of strings.
// A nil slice encodes as "[]". HTML characters are written as-is.
func Encode(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(items); err != nil {
		return "", fmt.Errorf("encode tasks: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Decode parses a snapshot produced by Encode.
// Entries are trimmed and entries that are empty after trimming are dropped,
// so a decoded list only ever contains valid tasks.
func Decode(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	out := items[:0]
	for _, item := range items {
		if t := strings.TrimSpace(item); t != "" {
			out = append(out, t)
		}
	}
	return out, nil
}
