package version

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrMalformed is returned when a version string cannot be decomposed into
// epoch, upstream version and debian revision.
var ErrMalformed = errors.New("malformed version")

// Version holds the three components of a Debian package version string.
//
// Reference: https://www.debian.org/doc/debian-policy/ch-controlfields.html#s-f-version
type Version struct {
	// Epoch is the optional leading integer used to force a total ordering
	// override after an upstream renumbering. Zero when absent.
	Epoch int

	// Upstream is the portion of the version supplied by the original
	// software author.
	Upstream string

	// Revision is the packaging-specific suffix appended by the
	// distribution packager. "0" when absent from the input.
	Revision string

	// bare records that the input carried no '-' separated revision, so
	// Revision holds the "0" default rather than parsed input.
	bare bool
}

// String reconstructs the canonical version string. The epoch is printed only
// when it is greater than zero, and the revision only when one was present in
// the parsed input.
func (v Version) String() string {
	var b strings.Builder
	if v.Epoch > 0 {
		fmt.Fprintf(&b, "%d:", v.Epoch)
	}
	b.WriteString(v.Upstream)
	if !v.bare && v.Revision != "" {
		b.WriteString("-")
		b.WriteString(v.Revision)
	}
	return b.String()
}

// Split decomposes a full version string into epoch, upstream version and
// debian revision. The epoch defaults to 0 and the revision to "0" when the
// corresponding separator is absent. Every string has exactly one
// decomposition; a ':' separator with a non-integer prefix is an error.
func Split(s string) (Version, error) {
	epoch, rest, err := splitEpoch(s)
	if err != nil {
		return Version{}, err
	}
	upstream, revision, bare := splitRevision(rest)
	return Version{Epoch: epoch, Upstream: upstream, Revision: revision, bare: bare}, nil
}

// splitEpoch parses the epoch off the front of a version string. Only the
// first colon matters; everything before it must be an unsigned integer.
func splitEpoch(s string) (int, string, error) {
	idx := strings.Index(s, ":")
	if idx == -1 {
		return 0, s, nil
	}
	prefix := s[:idx]
	if prefix == "" || strings.IndexFunc(prefix, func(r rune) bool { return r < '0' || r > '9' }) != -1 {
		return 0, "", fmt.Errorf("%w: %q: epochs can only be integers, and epochless versions cannot use the colon character", ErrMalformed, s)
	}
	epoch, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %q: %v", ErrMalformed, s, err)
	}
	return epoch, s[idx+1:], nil
}

// splitRevision splits an epochless version at the last hyphen. No hyphen
// means no debian revision, which is also valid.
func splitRevision(s string) (upstream, revision string, bare bool) {
	idx := strings.LastIndex(s, "-")
	if idx == -1 {
		return s, "0", true
	}
	return s[:idx], s[idx+1:], false
}

// Sort orders a list of full version strings in ascending Debian order,
// in place. It validates every element before sorting so that a malformed
// entry fails the whole call instead of producing a partial order.
func Sort(versions []string) error {
	for _, s := range versions {
		if _, err := Split(s); err != nil {
			return err
		}
	}
	sort.SliceStable(versions, func(i, j int) bool {
		c, err := Compare(versions[i], versions[j])
		if err != nil {
			// Every element was validated above, so a failure here is a
			// token alignment bug, not bad input.
			panic(err)
		}
		return c < 0
	})
	return nil
}
