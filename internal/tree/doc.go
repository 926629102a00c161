// Package tree provides the in-memory directory tree behind a vfsh session.
//
// A Directory owns its files and subdirectories through two name-keyed
// maps and keeps a plain pointer to its parent for upward navigation.
// Ownership only flows downward: a subtree is discarded by removing it
// from its parent's map, at which point its root is detached so nothing
// reachable from the live tree refers into it.
//
// Key types:
//   - FileEntry: immutable name and size record
//   - Directory: tree node with mutation, lookup, listing and size aggregation
//
// Sizes are never cached. Directory.Size walks the subtree on every call,
// so it always reflects the current state of the tree.
//
// Nothing in this package is safe for concurrent use.
package tree
