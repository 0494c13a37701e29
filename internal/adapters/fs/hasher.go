// Package fs provides file system helpers for release artifacts.
package fs

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/bccproj/internal/core/domain"
	"go.trai.ch/bccproj/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes XXHash digests of files.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// HashFile returns the XXHash64 of the file's content as 16 hex digits.
func (h *Hasher) HashFile(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}
