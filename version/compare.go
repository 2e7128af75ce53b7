package version

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTokenMismatch is returned when a revision comparison lines up tokens of
// different kinds. listify always produces aligned kinds, so hitting this
// error indicates a bug; it is surfaced instead of silently coercing because
// a silent coercion could reorder packages incorrectly.
var ErrTokenMismatch = errors.New("revision token mismatch")

// A token is one element of a listified revision string: either a run of
// non-digit characters or a run of digits. Digit runs keep their raw text and
// compare numerically, so arbitrarily long runs never overflow.
type token struct {
	digits bool
	text   string
}

// listify splits a revision string into tokens alternating between non-digit
// runs and digit runs, padded so the result is always "str, int, str, int…"
// and always of even length. Comparing two listified revisions therefore
// never lines up a string against a number, except past the end of the
// shorter list.
func listify(s string) []token {
	var list []token
	for s != "" {
		alpha, rest := nonDigits(s)
		num, rest := digitRun(rest)
		list = append(list, token{text: alpha}, token{digits: true, text: num})
		s = rest
	}
	return list
}

// nonDigits peels the leading run of non-digit characters off s, which may be
// empty, and returns it with the remainder.
func nonDigits(s string) (string, string) {
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

// digitRun peels the leading run of digits off s. An empty run stands for the
// number zero.
func digitRun(s string) (string, string) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

// compareNumeric compares two digit runs by value. Leading zeros are
// insignificant and an empty run equals zero.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// CompareStrings compares two non-digit runs with the Debian lexical
// ordering: ASCII values modified so that all letters sort earlier than all
// non-letters, and so that a tilde sorts before anything, even the end of a
// part.
func CompareStrings(a, b string) int {
	if a == b {
		return 0
	}
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		ca, cb := a[i], b[i]
		if ca == cb {
			continue
		}
		if ca == '~' {
			return -1
		}
		if cb == '~' {
			return 1
		}
		if isLetter(ca) && !isLetter(cb) {
			return -1
		}
		if !isLetter(ca) && isLetter(cb) {
			return 1
		}
		if ca < cb {
			return -1
		}
		return 1
	}
	// One string is a strict prefix of the other. The longer one is greater,
	// unless its next character is a tilde.
	if len(a) > len(b) {
		if a[len(b)] == '~' {
			return -1
		}
		return 1
	}
	if b[len(a)] == '~' {
		return 1
	}
	return -1
}

// CompareRevisions compares two upstream-version or debian-revision strings
// as described in Debian Policy section 5.6.12.
func CompareRevisions(rev1, rev2 string) (int, error) {
	if rev1 == rev2 {
		return 0, nil
	}
	list1 := listify(rev1)
	list2 := listify(rev2)

	n := len(list1)
	if len(list2) < n {
		n = len(list2)
	}
	for i := 0; i < n; i++ {
		t1, t2 := list1[i], list2[i]
		if t1.digits != t2.digits {
			return 0, fmt.Errorf("%w: cannot compare %q to %q, something has gone horribly awry", ErrTokenMismatch, t1.text, t2.text)
		}
		var c int
		if t1.digits {
			c = compareNumeric(t1.text, t2.text)
		} else {
			c = CompareStrings(t1.text, t2.text)
		}
		if c != 0 {
			return c, nil
		}
	}

	// The common positions are equal; the longer side wins unless its first
	// extra token starts with a tilde.
	switch {
	case len(list1) > len(list2):
		if tildeLead(list1[n]) {
			return -1, nil
		}
		return 1, nil
	case len(list2) > len(list1):
		if tildeLead(list2[n]) {
			return 1, nil
		}
		return -1, nil
	}
	return 0, nil
}

// tildeLead reports whether a trailing extra token sorts below the end of the
// shorter sequence. Only a string token can start with a tilde.
func tildeLead(t token) bool {
	return !t.digits && strings.HasPrefix(t.text, "~")
}

// Compare compares two full Debian version strings and returns -1, 0 or 1.
// Epochs are compared numerically first, then the upstream versions, then the
// debian revisions. Equal inputs short-circuit without decomposition.
func Compare(ver1, ver2 string) (int, error) {
	if ver1 == ver2 {
		return 0, nil
	}

	v1, err := Split(ver1)
	if err != nil {
		return 0, err
	}
	v2, err := Split(ver2)
	if err != nil {
		return 0, err
	}

	// If the epochs differ, the newer one wins immediately.
	if v1.Epoch < v2.Epoch {
		return -1, nil
	}
	if v1.Epoch > v2.Epoch {
		return 1, nil
	}

	c, err := CompareRevisions(v1.Upstream, v2.Upstream)
	if err != nil || c != 0 {
		return c, err
	}
	c, err = CompareRevisions(v1.Revision, v2.Revision)
	if err != nil || c != 0 {
		return c, err
	}

	// The versions differ only by an interpolated zero in the epoch or the
	// debian revision.
	return 0, nil
}
