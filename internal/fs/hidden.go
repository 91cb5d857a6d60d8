package fs

// HiddenPrefix marks a name as hidden.
const HiddenPrefix = '.'

// IsHidden reports whether name is hidden from listings.
func IsHidden(name string) bool {
	return len(name) > 0 && name[0] == HiddenPrefix
}
