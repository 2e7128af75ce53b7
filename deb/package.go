package deb

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/blakesmith/ar"
	"github.com/go-logr/logr"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Option configures an extraction call.
type Option func(*config)

type config struct {
	ignoreMissing bool
}

// IgnoreMissing tolerates control files that lack one of the required
// Package/Version/Architecture fields. The returned Control simply omits the
// absent field instead of failing the extraction.
func IgnoreMissing() Option {
	return func(c *config) {
		c.ignoreMissing = true
	}
}

// ExtractControlFile reads the .deb file at path and returns its parsed
// control metadata. The path must name an existing regular file.
func ExtractControlFile(ctx context.Context, path string, opts ...Option) (*Control, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q does not exist", ErrInvalidInput, path)
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %q is not a regular file", ErrInvalidInput, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %q: %v", ErrInvalidInput, path, err)
	}
	defer f.Close()
	return ExtractControl(ctx, f, opts...)
}

// ExtractControl unwraps a .deb byte stream down to its control metadata:
// it parses the outer ar container, locates the control archive, decompresses
// and unpacks the embedded tar, then parses and validates the control file.
// A failure at any stage aborts the whole extraction; nothing is retried.
func ExtractControl(ctx context.Context, r io.Reader, opts ...Option) (*Control, error) {
	log := logr.FromContextOrDiscard(ctx)
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	member, data, err := findControlArchive(log, r)
	if err != nil {
		return nil, err
	}
	log.V(1).Info("found control archive", "member", member, "size", len(data))

	tarData, err := decompress(member, data)
	if err != nil {
		return nil, err
	}
	log.V(2).Info("decompressed control archive", "size", len(tarData))

	ctrl, err := controlFromTar(log, tarData)
	if err != nil {
		return nil, err
	}

	if err := checkRequired(log, ctrl, cfg.ignoreMissing); err != nil {
		return nil, err
	}
	return ctrl, nil
}

// findControlArchive walks the ar members of a .deb and returns the raw bytes
// of the control archive. The three recognized names are checked in priority
// order (gz, then xz, then zst); real packages contain only one, but if more
// are present the first match wins.
func findControlArchive(log logr.Logger, r io.Reader) (PackageFile, []byte, error) {
	found := make(map[PackageFile][]byte)

	arR := ar.NewReader(r)
	for {
		header, err := arR.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", nil, fmt.Errorf("%w: reading ar header: %v", ErrArchiveCorrupt, err)
		}

		// some ar writers terminate member names with a slash
		name := PackageFile(strings.TrimSuffix(strings.TrimSpace(header.Name), "/"))
		log.V(2).Info("ar member", "name", name, "size", header.Size)

		for _, want := range controlMembers {
			if name == want {
				data, err := io.ReadAll(arR)
				if err != nil {
					return "", nil, fmt.Errorf("%w: reading member %s: %v", ErrArchiveCorrupt, name, err)
				}
				found[name] = data
			}
		}
	}

	for _, want := range controlMembers {
		if data, ok := found[want]; ok {
			return want, data, nil
		}
	}
	return "", nil, fmt.Errorf("%w: expected one of control.tar.{gz,xz,zst}", ErrMissingControlArchive)
}

// decompress applies the codec matching the member's extension and returns
// the decompressed tar bytes. Decoders are closed before returning, on every
// path.
func decompress(member PackageFile, data []byte) ([]byte, error) {
	switch member {
	case PkgControlTarGz:
		gzr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: opening %s: %v", ErrDecompress, member, err)
		}
		defer gzr.Close()
		out, err := io.ReadAll(gzr)
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", ErrDecompress, member, err)
		}
		return out, nil

	case PkgControlTarXz:
		xzr, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: opening %s: %v", ErrDecompress, member, err)
		}
		out, err := io.ReadAll(xzr)
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", ErrDecompress, member, err)
		}
		return out, nil

	case PkgControlTarZst:
		zr, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: opening %s: %v", ErrDecompress, member, err)
		}
		defer zr.Close()
		out, err := io.ReadAll(zr)
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", ErrDecompress, member, err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: unrecognized member %s", ErrDecompress, member)
}

// controlFromTar walks a control tar and parses the member whose base name is
// "control". The pathname could be ./control, or just control.
func controlFromTar(log logr.Logger, data []byte) (*Control, error) {
	tr := tar.NewReader(bytes.NewReader(data))
	for {
		th, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading tar header: %v", ErrTarCorrupt, err)
		}
		log.V(2).Info("control tar member", "name", th.Name)

		if ControlFile(filepath.Base(th.Name)) != FileControl {
			continue
		}
		body, err := io.ReadAll(tr)
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", ErrTarCorrupt, th.Name, err)
		}
		return ParseControl(body), nil
	}
	return nil, fmt.Errorf("%w: no %q member", ErrMissingControlFile, FileControl)
}

// checkRequired verifies the Package/Version/Architecture fields are present,
// case-insensitively. With ignoreMissing set, absent fields are logged and
// skipped instead of failing the extraction.
func checkRequired(log logr.Logger, ctrl *Control, ignoreMissing bool) error {
	for _, req := range requiredFields {
		if _, ok := ctrl.Get(string(req)); ok {
			continue
		}
		if ignoreMissing {
			log.V(1).Info("required header not found in control file", "header", req)
			continue
		}
		return fmt.Errorf("%w: %q not found in control file", ErrMissingHeader, strings.ToLower(string(req)))
	}
	return nil
}
