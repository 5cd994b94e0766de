package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// messager is implemented by zerr errors, which report their own message without the chain.
type messager interface {
	Message() string
}

// metadataer is implemented by zerr errors carrying key/value metadata.
type metadataer interface {
	Metadata() map[string]any
}

// ErrorEntry is one level of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks the zerr chain of err. The first error that is not a zerr
// error ends the walk with its full text. A zerr level without a message of its own
// contributes its metadata to the next level.
func collectErrorEntries(err error) []ErrorEntry {
	var (
		entries []ErrorEntry
		pending map[string]any
	)

	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error(), Metadata: pending})
			break
		}

		var meta map[string]any
		if md, ok := current.(metadataer); ok {
			meta = md.Metadata()
		}
		if pending != nil {
			if meta == nil {
				meta = make(map[string]any, len(pending))
			}
			maps.Copy(meta, pending)
			pending = nil
		}

		next := errors.Unwrap(current)
		if m.Message() == "" && next != nil {
			pending = meta
			current = next
			continue
		}

		entries = append(entries, ErrorEntry{Message: m.Message(), Metadata: meta})
		current = next
	}
	return entries
}

// formatErrorEntries renders entries as the main error followed by an indented cause list.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		indent := "      "
		if i == 0 {
			indent = "       "
			lines = append(lines, "Error: "+msgLines[0])
		} else {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			lines = append(lines, "    → "+msgLines[0])
		}

		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.Metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, entry.Metadata[key]))
		}
	}
	return strings.Join(lines, "\n")
}
