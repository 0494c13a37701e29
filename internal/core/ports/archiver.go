package ports

// Archiver defines the interface for creating release archives.
//
//go:generate go run go.uber.org/mock/mockgen -source=archiver.go -destination=mocks/mock_archiver.go -package=mocks
type Archiver interface {
	// Create starts a new archive that will be written to path once committed.
	// Nothing is visible at path before Commit succeeds.
	Create(path string) (Archive, error)
}

// Archive is an archive under construction.
type Archive interface {
	// AddFile stores the file at src under name.
	AddFile(src, name string) error
	// Commit finalizes the archive and moves it to its destination.
	Commit() error
	// Discard drops the archive. It is a no-op after a successful Commit.
	Discard() error
}
