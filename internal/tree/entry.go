package tree

// FileEntry is a file in the simulated tree. It has no content, only a
// name and a size, and is never modified after creation.
type FileEntry struct {
	name string
	size int64
}

func newFileEntry(name string, size int64) *FileEntry {
	return &FileEntry{name: name, size: size}
}

func (f *FileEntry) Name() string { return f.name }
func (f *FileEntry) Size() int64  { return f.size }
