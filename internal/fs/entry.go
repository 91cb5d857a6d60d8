package fs

// Entry represents a single visible directory entry.
type Entry struct {
	Name string
	Type FileType
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Type == TypeDirectory
}

// OnlyDirs returns the directory entries of entries, preserving order.
func OnlyDirs(entries []Entry) []Entry {
	dirs := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e)
		}
	}
	return dirs
}

// HasDir reports whether any entry is a directory.
func HasDir(entries []Entry) bool {
	for _, e := range entries {
		if e.IsDir() {
			return true
		}
	}
	return false
}
