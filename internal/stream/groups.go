package stream

import "iter"

// Groups buffers entries and emits a completed group whenever boundary
// matches the current entry and the buffer is non-empty. The matching entry
// closes the previous group's accumulation but belongs to the new group it
// opens. Any remaining buffer is flushed at end of stream.
//
// Concatenating the emitted groups in order reproduces the input sequence
// exactly.
func Groups(entries iter.Seq[Entry], boundary func(Entry) bool) iter.Seq[[]Entry] {
	return func(yield func([]Entry) bool) {
		var buf []Entry
		for entry := range entries {
			if boundary(entry) && len(buf) > 0 {
				if !yield(buf) {
					return
				}
				buf = nil
			}
			buf = append(buf, entry)
		}
		if len(buf) > 0 {
			yield(buf)
		}
	}
}

// DirBoundary reports whether the entry is a directory marker. Error
// entries never open a new group.
func DirBoundary(e Entry) bool {
	return e.Err == nil && e.IsDir
}
