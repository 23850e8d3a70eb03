// Package stream walks a dataset directory tree and splits the resulting
// entry sequence into per-directory groups.
package stream

import (
	"iter"
	"os"
	"path/filepath"
)

// Entry is a single element of the traversal: a directory boundary marker,
// a file reference, or an in-band traversal error.
type Entry struct {
	Path  string
	IsDir bool
	Err   error
}

// Walk returns a lazy depth-first traversal rooted at root. Every visited
// directory (including root itself) yields a marker entry before any of its
// descendants. Unreadable entries yield an error element and the traversal
// continues with the remaining siblings.
func Walk(root string) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		walkDir(root, yield)
	}
}

// walkDir emits the directory marker for dir, then its children in
// filesystem enumeration order. Returns false when the consumer stopped.
func walkDir(dir string, yield func(Entry) bool) bool {
	if !yield(Entry{Path: dir, IsDir: true}) {
		return false
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return yield(Entry{Path: dir, Err: err})
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if !walkDir(path, yield) {
				return false
			}
			continue
		}
		if !yield(Entry{Path: path}) {
			return false
		}
	}
	return true
}
