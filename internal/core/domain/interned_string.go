package domain

import "unique"

// InternedString is a value object over a unique.Handle[string].
// Target names and dependency lists are interned so that repeated names share storage
// and compare by handle.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString interns s.
func NewInternedString(s string) InternedString {
	return InternedString{h: unique.Make(s)}
}

// NewInternedStrings interns every string in s, preserving order.
func NewInternedStrings(s []string) []InternedString {
	res := make([]InternedString, len(s))
	for i, v := range s {
		res[i] = NewInternedString(v)
	}
	return res
}

// String returns the underlying string value.
// The zero InternedString yields the empty string.
func (is InternedString) String() string {
	if is.IsZero() {
		return ""
	}
	return is.h.Value()
}

// IsZero reports whether is was never assigned.
func (is InternedString) IsZero() bool {
	return is.h == unique.Handle[string]{}
}

// MarshalText implements encoding.TextMarshaler.
func (is InternedString) MarshalText() ([]byte, error) {
	return []byte(is.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (is *InternedString) UnmarshalText(text []byte) error {
	is.h = unique.Make(string(text))
	return nil
}
