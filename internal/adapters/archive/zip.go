// Package archive writes release archives in zip format.
package archive

import (
	"archive/zip"
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"

	"go.trai.ch/bccproj/internal/core/domain"
	"go.trai.ch/bccproj/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Archiver = (*Zip)(nil)
	_ ports.Archive  = (*zipArchive)(nil)
)

// Zip implements ports.Archiver. Archives are written to a temporary file next
// to their destination and renamed into place on commit.
type Zip struct{}

// NewZip creates a new Zip archiver.
func NewZip() *Zip {
	return &Zip{}
}

// Create starts a new zip archive destined for dest.
func (z *Zip) Create(dest string) (ports.Archive, error) {
	dir := filepath.Dir(dest)
	f, err := os.CreateTemp(dir, "."+filepath.Base(dest)+".*.tmp")
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrArchiveCreateFailed.Error()), "path", dest)
	}

	return &zipArchive{
		dest: dest,
		file: f,
		w:    zip.NewWriter(f),
	}, nil
}

type zipArchive struct {
	dest string
	file *os.File
	w    *zip.Writer
	done bool
}

func (a *zipArchive) AddFile(src, name string) error {
	f, err := os.Open(src) //nolint:gosec // sources come from the project layout
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", src)
	}
	defer f.Close() //nolint:errcheck // read-only

	info, err := f.Stat()
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", src)
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveWriteFailed.Error()), "entry", name)
	}
	header.Name = path.Clean(filepath.ToSlash(name))
	header.Method = zip.Deflate

	writer, err := a.w.CreateHeader(header)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveWriteFailed.Error()), "entry", name)
	}
	if _, err := io.Copy(writer, f); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveWriteFailed.Error()), "entry", name)
	}
	return nil
}

func (a *zipArchive) Commit() error {
	if a.done {
		return nil
	}

	tmp := a.file.Name()
	if err := errors.Join(a.w.Close(), a.file.Close()); err != nil {
		a.done = true
		_ = os.Remove(tmp)
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveWriteFailed.Error()), "path", a.dest)
	}
	a.done = true

	if err := os.Chmod(tmp, domain.FilePerm); err != nil {
		_ = os.Remove(tmp)
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveWriteFailed.Error()), "path", a.dest)
	}
	if err := os.Rename(tmp, a.dest); err != nil {
		_ = os.Remove(tmp)
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveWriteFailed.Error()), "path", a.dest)
	}
	return nil
}

func (a *zipArchive) Discard() error {
	if a.done {
		return nil
	}
	a.done = true

	_ = a.w.Close()
	_ = a.file.Close()
	if err := os.Remove(a.file.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrFileRemoveFailed.Error()), "path", a.file.Name())
	}
	return nil
}
