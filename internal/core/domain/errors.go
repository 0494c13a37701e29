package domain

import "go.trai.ch/zerr"

var (
	// ErrNoCommand is returned when the invocation names no recognized command.
	// The usage text has already been printed when it is returned.
	ErrNoCommand = zerr.New("no command given")

	// ErrUnhandledCommand is returned when a recognized command has no handler.
	ErrUnhandledCommand = zerr.New("unhandled command")

	// ErrFailedToGetRoot is returned when the project root path cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of project root")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidMakeOption is returned when the configured build tool is not supported.
	ErrInvalidMakeOption = zerr.New("invalid make option")

	// ErrCommandFailed is returned when a child process exits with a non-zero status
	// or cannot be started.
	ErrCommandFailed = zerr.New("command failed")

	// ErrBuildFailed is returned when the build tool reports a failure.
	ErrBuildFailed = zerr.New("build failed")

	// ErrObjectListFailed is returned when the build tool's object listing fails
	// or does not print exactly one line.
	ErrObjectListFailed = zerr.New("failed to list object files")

	// ErrObjectListUnsupported is returned when the selected build tool has no
	// object listing target.
	ErrObjectListUnsupported = zerr.New("object listing is not supported by the selected build tool")

	// ErrMarkerFailed is returned when the development version marker program fails.
	ErrMarkerFailed = zerr.New("failed to run version marker")

	// ErrBuildTreeIncomplete is returned when the build directory skeleton could
	// only be created partially.
	ErrBuildTreeIncomplete = zerr.New("build directory skeleton is incomplete")

	// ErrDirectoryCreateFailed is returned when a directory cannot be created.
	ErrDirectoryCreateFailed = zerr.New("failed to create directory")

	// ErrDirectoryRemoveFailed is returned when a directory cannot be removed,
	// including when it still holds files.
	ErrDirectoryRemoveFailed = zerr.New("failed to remove directory")

	// ErrFileRemoveFailed is returned when a file cannot be deleted.
	ErrFileRemoveFailed = zerr.New("failed to remove file")

	// ErrPathStatFailed is returned when stating a path fails for a reason other
	// than the path not existing.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrCopyFailed is returned when the built executable cannot be copied.
	ErrCopyFailed = zerr.New("failed to copy executable")

	// ErrVersionProbeFailed is returned when the built executable cannot be queried
	// for its version.
	ErrVersionProbeFailed = zerr.New("failed to query executable version")

	// ErrVersionProbeEmpty is returned when the version query prints nothing.
	ErrVersionProbeEmpty = zerr.New("executable did not report a version")

	// ErrInvalidVersion is returned when the reported version cannot be used in
	// an archive file name.
	ErrInvalidVersion = zerr.New("invalid version string")

	// ErrArchiveCreateFailed is returned when a release archive cannot be created.
	ErrArchiveCreateFailed = zerr.New("failed to create release archive")

	// ErrArchiveWriteFailed is returned when a file cannot be added to a release
	// archive or the archive cannot be finalized.
	ErrArchiveWriteFailed = zerr.New("failed to write release archive")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")
)
