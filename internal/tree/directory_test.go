package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/vfsh/pkg/vfsh"
)

func TestNewRoot(t *testing.T) {
	root := NewRoot("root")

	assert.Equal(t, "root", root.Name())
	assert.Nil(t, root.Parent())
	assert.True(t, root.IsRoot())
	assert.Equal(t, int64(0), root.Size())
	assert.Equal(t, 0, root.List().Len())
}

func TestDirectory_AddFile(t *testing.T) {
	t.Run("stores file", func(t *testing.T) {
		root := NewRoot("root")
		f := root.AddFile("a.txt", 10)

		assert.Equal(t, "a.txt", f.Name())
		assert.Equal(t, int64(10), f.Size())

		got, ok := root.File("a.txt")
		require.True(t, ok)
		assert.Same(t, f, got)
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		root := NewRoot("root")
		root.AddFile("x", 3)
		root.AddFile("x", 7)

		got, ok := root.File("x")
		require.True(t, ok)
		assert.Equal(t, int64(7), got.Size())
		assert.Equal(t, int64(7), root.Size())
		assert.Len(t, root.List().Files, 1)
	})

	t.Run("zero size is allowed", func(t *testing.T) {
		root := NewRoot("root")
		root.AddFile("empty", 0)
		_, ok := root.File("empty")
		assert.True(t, ok)
	})
}

func TestDirectory_DeleteFile(t *testing.T) {
	root := NewRoot("root")
	root.AddFile("a", 1)

	assert.True(t, root.DeleteFile("a"))
	_, ok := root.File("a")
	assert.False(t, ok)

	assert.False(t, root.DeleteFile("a"), "second delete should report absence")
	assert.False(t, root.DeleteFile("never-existed"))
}

func TestDirectory_AddFolder(t *testing.T) {
	t.Run("links parent", func(t *testing.T) {
		root := NewRoot("root")
		docs := root.AddFolder("docs")

		assert.Equal(t, "docs", docs.Name())
		assert.Same(t, root, docs.Parent())
		assert.False(t, docs.IsRoot())

		got, ok := root.SubDirectory("docs")
		require.True(t, ok)
		assert.Same(t, docs, got)
	})

	t.Run("overwrite discards previous subtree", func(t *testing.T) {
		root := NewRoot("root")
		old := root.AddFolder("docs")
		old.AddFile("a.txt", 10)
		old.AddFolder("nested").AddFile("b.txt", 5)
		require.Equal(t, int64(15), root.Size())

		fresh := root.AddFolder("docs")

		assert.NotSame(t, old, fresh)
		assert.Nil(t, old.Parent(), "replaced subtree should be detached")
		assert.Equal(t, int64(0), root.Size())
		assert.Equal(t, 0, fresh.List().Len())
	})

	t.Run("files and folders share no namespace", func(t *testing.T) {
		root := NewRoot("root")
		root.AddFile("same", 4)
		root.AddFolder("same")

		_, fileOK := root.File("same")
		_, dirOK := root.SubDirectory("same")
		assert.True(t, fileOK)
		assert.True(t, dirOK)
	})
}

func TestDirectory_DeleteFolder(t *testing.T) {
	root := NewRoot("root")
	docs := root.AddFolder("docs")
	docs.AddFile("a.txt", 10)

	assert.True(t, root.DeleteFolder("docs"))
	assert.Nil(t, docs.Parent())
	_, ok := root.SubDirectory("docs")
	assert.False(t, ok)
	assert.Equal(t, int64(0), root.Size())

	assert.False(t, root.DeleteFolder("docs"))
}

func TestDirectory_SubDirectoryDoesNotCreate(t *testing.T) {
	root := NewRoot("root")
	_, ok := root.SubDirectory("missing")
	assert.False(t, ok)
	assert.Empty(t, root.List().Dirs)
}

func TestDirectory_Size(t *testing.T) {
	root := NewRoot("root")
	root.AddFile("top", 1)
	a := root.AddFolder("a")
	a.AddFile("a1", 10)
	b := a.AddFolder("b")
	b.AddFile("b1", 100)
	b.AddFile("b2", 1000)
	root.AddFolder("empty")

	assert.Equal(t, int64(1111), root.Size())
	assert.Equal(t, int64(1110), a.Size())
	assert.Equal(t, int64(1100), b.Size())

	// Size is recomputed from scratch on every call.
	b.DeleteFile("b2")
	assert.Equal(t, int64(111), root.Size())
	assert.Equal(t, int64(111), root.Size())
}

func TestDirectory_SizeNegativeEntries(t *testing.T) {
	root := NewRoot("root")
	root.AddFile("credit", -5)
	root.AddFile("debit", 8)
	assert.Equal(t, int64(3), root.Size())
}

func TestDirectory_List(t *testing.T) {
	root := NewRoot("root")
	root.AddFile("zeta", 1)
	root.AddFile("alpha", 2)
	root.AddFolder("src").AddFile("main.go", 40)
	root.AddFolder("docs")

	listing := root.List()

	assert.Equal(t, []vfsh.Entry{
		{Name: "alpha", Size: 2},
		{Name: "zeta", Size: 1},
	}, listing.Files)
	assert.Equal(t, []vfsh.Entry{
		{Name: "docs", Size: 0, IsDir: true},
		{Name: "src", Size: 40, IsDir: true},
	}, listing.Dirs)
	assert.Equal(t, 4, listing.Len())
}

func TestDirectory_Path(t *testing.T) {
	root := NewRoot("root")
	b := root.AddFolder("a").AddFolder("b")

	assert.Equal(t, "/", root.Path())
	assert.Equal(t, "/a", b.Parent().Path())
	assert.Equal(t, "/a/b", b.Path())
}

func TestDirectory_Snapshot(t *testing.T) {
	root := NewRoot("root")
	root.AddFile("readme", 3)
	docs := root.AddFolder("docs")
	docs.AddFile("a.txt", 10)
	docs.AddFolder("img").AddFile("logo.png", 7)

	snap := root.Snapshot()

	assert.Equal(t, "root", snap.Name)
	assert.True(t, snap.IsDir)
	assert.Equal(t, int64(20), snap.Size)
	require.Len(t, snap.Files, 1)
	require.Len(t, snap.Dirs, 1)
	assert.Equal(t, "docs", snap.Dirs[0].Name)
	assert.Equal(t, int64(17), snap.Dirs[0].Size)
	require.Len(t, snap.Dirs[0].Dirs, 1)
	assert.Equal(t, int64(7), snap.Dirs[0].Dirs[0].Size)

	// The snapshot is detached from later mutations.
	root.DeleteFolder("docs")
	assert.Len(t, snap.Dirs, 1)
	assert.Equal(t, int64(20), snap.Size)
}
