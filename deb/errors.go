package deb

import "errors"

// Extraction failures are terminal for the call that raised them: no partial
// results, no automatic retry. Each sentinel is wrapped with enough context
// (offending member, missing header, underlying cause) to form an actionable
// message, and can be matched with errors.Is.
var (
	// ErrInvalidInput means the caller-supplied path does not exist or is
	// not a regular file.
	ErrInvalidInput = errors.New("invalid input")

	// ErrArchiveCorrupt means the input could not be parsed as an ar archive.
	ErrArchiveCorrupt = errors.New("corrupt ar archive")

	// ErrMissingControlArchive means no control.tar.gz/xz/zst member was
	// found in the ar archive.
	ErrMissingControlArchive = errors.New("no control archive in ar archive")

	// ErrDecompress means the control archive member could not be
	// decompressed with the codec its name announces.
	ErrDecompress = errors.New("decompressing control archive")

	// ErrTarCorrupt means the decompressed control archive could not be
	// parsed as a tar archive.
	ErrTarCorrupt = errors.New("corrupt control tar")

	// ErrMissingControlFile means the control tar carries no member whose
	// base name is "control".
	ErrMissingControlFile = errors.New("no control file in control archive")

	// ErrMissingHeader means a required control field is absent and the
	// extraction was not configured to tolerate it.
	ErrMissingHeader = errors.New("missing required header")
)
