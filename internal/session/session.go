package session

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/vvka-141/vfsh/internal/logging"
	"github.com/vvka-141/vfsh/internal/tree"
	"github.com/vvka-141/vfsh/pkg/vfsh"
)

// Options configures a new Session.
type Options struct {
	// RootName names the root directory. Defaults to vfsh.DefaultRootName.
	RootName string

	// AllowNegativeSizes accepts file sizes below zero.
	AllowNegativeSizes bool

	// Logger receives verbose diagnostics. Defaults to a NullLogger.
	Logger vfsh.Logger
}

// SeedEntry declares a file or folder to build into a new session. Path is
// slash-separated and relative to the root.
type SeedEntry struct {
	Path   string
	Size   int64
	Folder bool
}

// Session is a simulated filesystem with a current-directory cursor.
type Session struct {
	id            uuid.UUID
	root          *tree.Directory
	current       *tree.Directory
	allowNegative bool
	logger        vfsh.Logger
}

// New creates a session whose cursor starts at a fresh, empty root.
func New(opts Options) *Session {
	rootName := opts.RootName
	if rootName == "" {
		rootName = vfsh.DefaultRootName
	}
	logger := logging.OrNull(opts.Logger)

	root := tree.NewRoot(rootName)
	s := &Session{
		id:            uuid.New(),
		root:          root,
		current:       root,
		allowNegative: opts.AllowNegativeSizes,
		logger:        logger,
	}
	logger.Verbose("session %s started (root %q, negative sizes allowed: %t)", s.id, rootName, s.allowNegative)
	return s
}

// ID returns the unique identifier of this session, used to correlate log lines.
func (s *Session) ID() uuid.UUID { return s.id }

func (s *Session) Root() *tree.Directory { return s.root }

// Current returns the directory under the cursor.
func (s *Session) Current() *tree.Directory { return s.current }

// ChangeDirectory implements vfsh.Session.
func (s *Session) ChangeDirectory(token string) error {
	if token == vfsh.ParentToken {
		if !s.current.IsRoot() {
			s.current = s.current.Parent()
			s.logger.Verbose("session %s: cd .. -> %s", s.id, s.current.Path())
		}
		return nil
	}

	child, ok := s.current.SubDirectory(token)
	if !ok {
		s.logger.Verbose("session %s: cd %q: no such directory in %s", s.id, token, s.current.Path())
		return fmt.Errorf("cd %q: %w", token, vfsh.ErrDirectoryNotFound)
	}
	s.current = child
	s.logger.Verbose("session %s: cd -> %s", s.id, s.current.Path())
	return nil
}

// List implements vfsh.Session.
func (s *Session) List() vfsh.Listing {
	return s.current.List()
}

// TotalSize implements vfsh.Session.
func (s *Session) TotalSize() int64 {
	return s.current.Size()
}

// CreateFile implements vfsh.Session.
func (s *Session) CreateFile(name string, size int64) error {
	if name == "" {
		return fmt.Errorf("create file: %w", vfsh.ErrInvalidName)
	}
	if size < 0 && !s.allowNegative {
		return fmt.Errorf("create file %q with size %d: %w", name, size, vfsh.ErrNegativeSize)
	}
	s.current.AddFile(name, size)
	s.logger.Verbose("session %s: file %q (%d bytes) written in %s", s.id, name, size, s.current.Path())
	return nil
}

// CreateFolder implements vfsh.Session.
func (s *Session) CreateFolder(name string) error {
	if name == "" {
		return fmt.Errorf("create folder: %w", vfsh.ErrInvalidName)
	}
	if _, exists := s.current.SubDirectory(name); exists {
		s.logger.Verbose("session %s: folder %q in %s replaced", s.id, name, s.current.Path())
	}
	s.current.AddFolder(name)
	s.logger.Verbose("session %s: folder %q created in %s", s.id, name, s.current.Path())
	return nil
}

// DeleteFile implements vfsh.Session.
func (s *Session) DeleteFile(name string) {
	if s.current.DeleteFile(name) {
		s.logger.Verbose("session %s: file %q deleted from %s", s.id, name, s.current.Path())
	}
}

// DeleteFolder implements vfsh.Session.
func (s *Session) DeleteFolder(name string) {
	if s.current.DeleteFolder(name) {
		s.logger.Verbose("session %s: folder %q deleted from %s", s.id, name, s.current.Path())
	}
}

// Path implements vfsh.Session.
func (s *Session) Path() string {
	return s.current.Path()
}

// Snapshot implements vfsh.Session.
func (s *Session) Snapshot() vfsh.Node {
	return s.current.Snapshot()
}

// Seed builds the given entries into the tree, relative to the root.
// Intermediate folders are created as needed and existing folders are
// kept, so entries may be listed in any order. The cursor does not move.
func (s *Session) Seed(entries []SeedEntry) error {
	for i, entry := range entries {
		segments, err := splitSeedPath(entry.Path)
		if err != nil {
			return fmt.Errorf("seed entry %d (%q): %w", i, entry.Path, err)
		}

		dir := s.root
		parents := segments
		if !entry.Folder {
			parents = segments[:len(segments)-1]
		}
		for _, name := range parents {
			child, ok := dir.SubDirectory(name)
			if !ok {
				child = dir.AddFolder(name)
			}
			dir = child
		}

		if entry.Folder {
			continue
		}
		if entry.Size < 0 && !s.allowNegative {
			return fmt.Errorf("seed entry %d (%q): %w", i, entry.Path, vfsh.ErrNegativeSize)
		}
		dir.AddFile(segments[len(segments)-1], entry.Size)
	}
	s.logger.Verbose("session %s: seeded %d entries, total size %d", s.id, len(entries), s.root.Size())
	return nil
}

func splitSeedPath(path string) ([]string, error) {
	var segments []string
	for _, part := range strings.Split(path, vfsh.PathSeparator) {
		switch part {
		case "", ".":
			continue
		case vfsh.ParentToken:
			return nil, vfsh.ErrInvalidName
		}
		segments = append(segments, part)
	}
	if len(segments) == 0 {
		return nil, vfsh.ErrInvalidName
	}
	return segments, nil
}

// Verify Session implements the vfsh.Session interface at compile time
var _ vfsh.Session = (*Session)(nil)
