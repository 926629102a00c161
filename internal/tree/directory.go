package tree

import (
	"slices"
	"strings"

	"github.com/vvka-141/vfsh/pkg/vfsh"
)

// Directory is a node of the simulated tree.
type Directory struct {
	name   string
	files  map[string]*FileEntry
	dirs   map[string]*Directory
	parent *Directory
}

func newDirectory(name string, parent *Directory) *Directory {
	return &Directory{
		name:   name,
		files:  make(map[string]*FileEntry),
		dirs:   make(map[string]*Directory),
		parent: parent,
	}
}

// NewRoot creates a parentless directory to serve as a session root.
func NewRoot(name string) *Directory {
	return newDirectory(name, nil)
}

func (d *Directory) Name() string { return d.name }

// Parent returns the owning directory, or nil for the root.
func (d *Directory) Parent() *Directory { return d.parent }

func (d *Directory) IsRoot() bool { return d.parent == nil }

// AddFile stores a file under name, replacing any file already there.
func (d *Directory) AddFile(name string, size int64) *FileEntry {
	f := newFileEntry(name, size)
	d.files[name] = f
	return f
}

// DeleteFile removes the named file and reports whether it existed.
func (d *Directory) DeleteFile(name string) bool {
	if _, ok := d.files[name]; !ok {
		return false
	}
	delete(d.files, name)
	return true
}

// AddFolder creates an empty subdirectory under name. An existing
// subdirectory with the same name is discarded together with its subtree.
func (d *Directory) AddFolder(name string) *Directory {
	if old, ok := d.dirs[name]; ok {
		old.parent = nil
	}
	child := newDirectory(name, d)
	d.dirs[name] = child
	return child
}

// DeleteFolder removes the named subdirectory and its subtree and reports
// whether it existed.
func (d *Directory) DeleteFolder(name string) bool {
	child, ok := d.dirs[name]
	if !ok {
		return false
	}
	delete(d.dirs, name)
	child.parent = nil
	return true
}

// SubDirectory looks up a direct subdirectory. It never creates one.
func (d *Directory) SubDirectory(name string) (*Directory, bool) {
	child, ok := d.dirs[name]
	return child, ok
}

// File looks up a direct file.
func (d *Directory) File(name string) (*FileEntry, bool) {
	f, ok := d.files[name]
	return f, ok
}

// Size returns the sum of all file sizes in the subtree rooted at d.
func (d *Directory) Size() int64 {
	var size int64
	for _, f := range d.files {
		size += f.size
	}
	for _, child := range d.dirs {
		size += child.Size()
	}
	return size
}

// List returns the direct children of d. Files and directories are each
// sorted by name; directory sizes are aggregate sizes.
func (d *Directory) List() vfsh.Listing {
	listing := vfsh.Listing{
		Files: make([]vfsh.Entry, 0, len(d.files)),
		Dirs:  make([]vfsh.Entry, 0, len(d.dirs)),
	}
	for _, name := range sortedKeys(d.files) {
		listing.Files = append(listing.Files, vfsh.Entry{Name: name, Size: d.files[name].size})
	}
	for _, name := range sortedKeys(d.dirs) {
		listing.Dirs = append(listing.Dirs, vfsh.Entry{Name: name, Size: d.dirs[name].Size(), IsDir: true})
	}
	return listing
}

// Path returns the slash-separated path from the root to d. The root
// itself is "/"; the root's name is not part of any path.
func (d *Directory) Path() string {
	if d.parent == nil {
		return vfsh.PathSeparator
	}
	var parts []string
	for n := d; n.parent != nil; n = n.parent {
		parts = append(parts, n.name)
	}
	slices.Reverse(parts)
	return vfsh.PathSeparator + strings.Join(parts, vfsh.PathSeparator)
}

// Snapshot copies the subtree rooted at d into a detached vfsh.Node.
func (d *Directory) Snapshot() vfsh.Node {
	node := vfsh.Node{
		Entry: vfsh.Entry{Name: d.name, IsDir: true},
		Files: make([]vfsh.Entry, 0, len(d.files)),
		Dirs:  make([]vfsh.Node, 0, len(d.dirs)),
	}
	for _, name := range sortedKeys(d.files) {
		size := d.files[name].size
		node.Files = append(node.Files, vfsh.Entry{Name: name, Size: size})
		node.Size += size
	}
	for _, name := range sortedKeys(d.dirs) {
		child := d.dirs[name].Snapshot()
		node.Dirs = append(node.Dirs, child)
		node.Size += child.Size
	}
	return node
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
