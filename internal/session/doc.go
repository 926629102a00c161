// Package session implements vfsh.Session on top of an in-memory
// directory tree.
//
// A Session owns one tree and a cursor (the current directory). All
// relative operations are delegated to the directory under the cursor.
// Because mutations only ever touch children of the current directory,
// the cursor can never point into a discarded subtree.
//
// # Negative sizes
//
// By default CreateFile rejects sizes below zero with
// vfsh.ErrNegativeSize. Options.AllowNegativeSizes restores the
// permissive behaviour where any integer is accepted and simply added
// into aggregate sizes.
//
// # Thread Safety
//
// A Session is NOT safe for concurrent use. Independent sessions share
// nothing and may be used from different goroutines.
package session
