package vfsh

// Session is the operator-facing view of one simulated filesystem.
//
// All relative operations act on the session's current directory. A
// Session is NOT safe for concurrent use; create one per interpreter.
//
// Implementations:
//   - session.Session: in-memory directory tree with a cursor
type Session interface {
	// ChangeDirectory moves the cursor. ParentToken moves to the parent
	// (a no-op at the root); any other token must name a direct
	// subdirectory, otherwise ErrDirectoryNotFound is returned and the
	// cursor is unchanged.
	ChangeDirectory(token string) error

	// List returns the direct files and subdirectories of the current directory.
	List() Listing

	// TotalSize returns the aggregate size of the current directory.
	TotalSize() int64

	// CreateFile creates or silently overwrites a file in the current directory.
	CreateFile(name string, size int64) error

	// CreateFolder creates or silently replaces a subdirectory (and its
	// whole subtree) in the current directory.
	CreateFolder(name string) error

	// DeleteFile removes a file from the current directory; absent names are ignored.
	DeleteFile(name string)

	// DeleteFolder removes a subdirectory and its subtree; absent names are ignored.
	DeleteFolder(name string)

	// Path returns the slash-separated path of the current directory.
	Path() string

	// Snapshot returns a read-only copy of the current directory's subtree.
	Snapshot() Node
}

// Entry describes a single file or directory for display.
// For directories Size is the aggregate size of the subtree.
type Entry struct {
	Name  string
	Size  int64
	IsDir bool
}

// Listing holds the direct children of a directory, each slice sorted by name.
type Listing struct {
	Files []Entry
	Dirs  []Entry
}

// Len returns the total number of entries.
func (l Listing) Len() int {
	return len(l.Files) + len(l.Dirs)
}

// Node is a detached copy of a directory subtree.
type Node struct {
	Entry
	Files []Entry
	Dirs  []Node
}
