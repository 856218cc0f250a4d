package constants

import (
	"io/fs"
	"time"
)

const (
	// DefaultDirPerm is the default permission used when creating directories.
	DefaultDirPerm fs.FileMode = 0o755
	// DefaultFilePerm is the default permission used when creating files.
	DefaultFilePerm fs.FileMode = 0o644
)

const (
	// AppName names the config and data directories.
	AppName = "arch-health"
	// LocalConfigName is the per-project config file looked up in the working directory.
	LocalConfigName = ".archhc.toml"
	// HistoryFileName is the run history file under the data directory.
	HistoryFileName = "history.jsonl"
)

// DefaultLibraryRoots are the directories whose direct entries are scanned for ELF files.
var DefaultLibraryRoots = []string{"/usr/bin", "/usr/lib", "/usr/local/bin", "/usr/local/lib"}

const (
	// DefaultLddPath is the dependency-resolution utility probed per file.
	DefaultLddPath = "ldd"
	// MissingMarker is the substring ldd prints for an unresolved library.
	MissingMarker = "not found"
	// DefaultProgressEvery throttles progress callbacks to one per this many completions.
	DefaultProgressEvery = 25
	// SpinnerInterval is the frame rate of the status spinner.
	SpinnerInterval = 100 * time.Millisecond
)
