package deb

import (
	"fmt"
	"strings"
)

// Field is a single control file header: a case-preserved name and its raw
// value. Folded continuation lines are kept in the value, newline separated,
// with their leading whitespace intact.
type Field struct {
	Name  string
	Value string
}

// Control is the parsed header block of a Debian control file. It preserves
// the order and spelling of the fields as they appeared; lookups are
// case-insensitive. A Control is built once per extraction and never mutated
// afterwards.
//
// Reference: https://www.debian.org/doc/debian-policy/ch-controlfields.html
type Control struct {
	fields []Field
}

// ParseControl parses an RFC822-style header block: colon-separated
// "Name: value" lines, with continuation lines marked by leading whitespace.
// Parsing stops at the first blank line (the end of the stanza). All values
// are coerced to valid UTF-8.
func ParseControl(data []byte) *Control {
	c := &Control{}

	var currentKey string
	var currentValue strings.Builder

	flush := func() {
		if currentKey != "" {
			c.fields = append(c.fields, Field{
				Name:  strings.ToValidUTF8(currentKey, "�"),
				Value: strings.ToValidUTF8(currentValue.String(), "�"),
			})
		}
		currentKey = ""
		currentValue.Reset()
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			break
		}
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			currentValue.WriteString("\n" + line)
		} else if strings.Contains(line, ":") {
			flush()
			parts := strings.SplitN(line, ":", 2)
			currentKey = parts[0]
			currentValue.WriteString(strings.TrimSpace(parts[1]))
		}
	}
	flush()
	return c
}

// Get returns the value of the named field. The lookup is case-insensitive;
// the second return value reports whether the field is present.
func (c *Control) Get(name string) (string, bool) {
	for _, f := range c.fields {
		if strings.EqualFold(f.Name, name) {
			return f.Value, true
		}
	}
	return "", false
}

// Fields returns the header fields in their original order.
func (c *Control) Fields() []Field {
	out := make([]Field, len(c.fields))
	copy(out, c.fields)
	return out
}

// Package returns the value of the Package field, or "" when absent.
func (c *Control) Package() string {
	v, _ := c.Get(string(FieldPackage))
	return v
}

// Version returns the value of the Version field, or "" when absent.
func (c *Control) Version() string {
	v, _ := c.Get(string(FieldVersion))
	return v
}

// Architecture returns the value of the Architecture field, or "" when absent.
func (c *Control) Architecture() string {
	v, _ := c.Get(string(FieldArchitecture))
	return v
}

// String renders the control block back into its wire form. Continuation
// lines already carry their leading whitespace, so a field prints as a single
// "Name: value" entry.
func (c *Control) String() string {
	var b strings.Builder
	for _, f := range c.fields {
		fmt.Fprintf(&b, "%s: %s\n", f.Name, f.Value)
	}
	return b.String()
}
