package deb

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const digestFixture = "The quick brown fox jumps over the lazy dog\n"

func TestDigest(t *testing.T) {
	info, err := Digest(strings.NewReader(digestFixture))
	if err != nil {
		t.Fatalf("Digest failed: %v", err)
	}

	if info.MD5 != "37c4b87edffc5d198ff5a185cee7ee09" {
		t.Errorf("md5 mismatch: %s", info.MD5)
	}
	if info.SHA1 != "be417768b5c3c5c1d9bcb2e7c119196dd76b5570" {
		t.Errorf("sha1 mismatch: %s", info.SHA1)
	}
	if info.SHA256 != "c03905fcdab297513a620ec81ed46ca44ddb62d41cbbd83eb4a5a3592be26a69" {
		t.Errorf("sha256 mismatch: %s", info.SHA256)
	}
	if info.Size != int64(len(digestFixture)) {
		t.Errorf("expected size %d, got %d", len(digestFixture), info.Size)
	}
}

func TestDigestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture")
	if err := os.WriteFile(path, []byte(digestFixture), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	info, err := DigestFile(path)
	if err != nil {
		t.Fatalf("DigestFile failed: %v", err)
	}
	if info.SHA256 != "c03905fcdab297513a620ec81ed46ca44ddb62d41cbbd83eb4a5a3592be26a69" {
		t.Errorf("sha256 mismatch: %s", info.SHA256)
	}
}

func TestDigestFileInvalidInput(t *testing.T) {
	if _, err := DigestFile("/does/not/exist"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for missing path, got %v", err)
	}
	if _, err := DigestFile(t.TempDir()); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for directory, got %v", err)
	}
}
