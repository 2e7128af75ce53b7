// Package version implements Debian package version parsing and comparison.
//
// A Debian version string has the form [epoch:]upstream-version[-debian-revision].
// The ordering between two versions is defined by the Debian Policy Manual,
// section 5.6.12: epochs compare numerically, then the upstream version and
// the debian revision compare with an algorithm that alternates between
// lexical comparison of non-digit runs and numeric comparison of digit runs.
// The lexical comparison is ASCII ordering modified so that all letters sort
// before all non-letters, and so that a tilde sorts before anything, even the
// end of a part.
//
// Reference: https://www.debian.org/doc/debian-policy/ch-controlfields.html#version
//
// All functions are pure and safe for concurrent use.
package version
