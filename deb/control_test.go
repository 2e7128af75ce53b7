package deb

import (
	"strings"
	"testing"
)

func TestParseControl(t *testing.T) {
	ctrl := ParseControl([]byte(testControl))

	fields := ctrl.Fields()
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(fields))
	}
	want := []Field{
		{"Package", "foo"},
		{"Version", "1.0"},
		{"Architecture", "amd64"},
	}
	for i, f := range fields {
		if f != want[i] {
			t.Errorf("field %d: expected %v, got %v", i, want[i], f)
		}
	}
}

func TestParseControlFolded(t *testing.T) {
	content := "Package: foo\n" +
		"Description: a one-line synopsis\n" +
		" and an extended description\n" +
		" spread over two lines\n" +
		"Version: 1.0\n"

	ctrl := ParseControl([]byte(content))

	desc, ok := ctrl.Get("Description")
	if !ok {
		t.Fatal("Description not found")
	}
	if !strings.HasPrefix(desc, "a one-line synopsis") {
		t.Errorf("unexpected first line: %q", desc)
	}
	if !strings.Contains(desc, "\n and an extended description") {
		t.Errorf("continuation line lost: %q", desc)
	}
	if v, _ := ctrl.Get("Version"); v != "1.0" {
		t.Errorf("field after folded value mis-parsed: %q", v)
	}
}

func TestControlGetCaseInsensitive(t *testing.T) {
	ctrl := ParseControl([]byte(testControl))

	for _, name := range []string{"Package", "package", "PACKAGE", "pAcKaGe"} {
		v, ok := ctrl.Get(name)
		if !ok || v != "foo" {
			t.Errorf("Get(%q) = %q, %v", name, v, ok)
		}
	}
	if _, ok := ctrl.Get("Nonexistent"); ok {
		t.Error("expected Nonexistent to be absent")
	}

	// the stored spelling is preserved
	if ctrl.Fields()[0].Name != "Package" {
		t.Errorf("field name not case-preserved: %q", ctrl.Fields()[0].Name)
	}
}

func TestParseControlStopsAtBlankLine(t *testing.T) {
	ctrl := ParseControl([]byte("Package: foo\n\nGarbage: after the stanza\n"))
	if _, ok := ctrl.Get("Garbage"); ok {
		t.Error("parsing should stop at the first blank line")
	}
}

func TestParseControlInvalidUTF8(t *testing.T) {
	ctrl := ParseControl([]byte("Maintainer: J\xffrgen <j@example.com>\nPackage: foo\n"))
	v, ok := ctrl.Get("Maintainer")
	if !ok {
		t.Fatal("Maintainer not found")
	}
	if !strings.Contains(v, "�") {
		t.Errorf("invalid byte not coerced: %q", v)
	}
	if !strings.HasSuffix(v, "<j@example.com>") {
		t.Errorf("value mangled beyond the bad byte: %q", v)
	}
}

func TestControlString(t *testing.T) {
	ctrl := ParseControl([]byte(testControl))
	if got := ctrl.String(); got != testControl {
		t.Errorf("expected %q, got %q", testControl, got)
	}
}
