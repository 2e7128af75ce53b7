package deb

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// FileInfo holds the checksums and size of a package file.
type FileInfo struct {
	MD5    string `json:"md5" yaml:"md5"`
	SHA1   string `json:"sha1" yaml:"sha1"`
	SHA256 string `json:"sha256" yaml:"sha256"`
	Size   int64  `json:"size" yaml:"size"`
}

// Digest streams r once and computes its md5, sha1 and sha256 checksums along
// with the total byte count. It is independent of control extraction and
// makes no assumption about the stream's content.
func Digest(r io.Reader) (FileInfo, error) {
	h5 := md5.New()
	h1 := sha1.New()
	h256 := sha256.New()

	n, err := io.Copy(io.MultiWriter(h5, h1, h256), r)
	if err != nil {
		return FileInfo{}, fmt.Errorf("hashing stream: %w", err)
	}

	return FileInfo{
		MD5:    hex.EncodeToString(h5.Sum(nil)),
		SHA1:   hex.EncodeToString(h1.Sum(nil)),
		SHA256: hex.EncodeToString(h256.Sum(nil)),
		Size:   n,
	}, nil
}

// DigestFile computes the checksums of the file at path. The path must name
// an existing regular file.
func DigestFile(path string) (FileInfo, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, fmt.Errorf("%w: %q does not exist", ErrInvalidInput, path)
	}
	if !fi.Mode().IsRegular() {
		return FileInfo{}, fmt.Errorf("%w: %q is not a regular file", ErrInvalidInput, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return FileInfo{}, fmt.Errorf("%w: opening %q: %v", ErrInvalidInput, path, err)
	}
	defer f.Close()
	return Digest(f)
}
