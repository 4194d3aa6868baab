package budget

const parentSuffix = ".000"

/*
ParentCode returns the summary code an entry rolls up to: the two digit prefix
followed by ".000". Codes shorter than two characters are their own parent.
*/
func ParentCode(code string) string {
	if len(code) < 2 {
		return code + parentSuffix
	}
	return code[:2] + parentSuffix
}

// IsParent reports whether code is a summary row (its own parent code).
func IsParent(code string) bool {
	return code == ParentCode(code)
}

/*
Split partitions entries into parents and children.

The partition is stable: each side keeps the original dataset order, and every
entry lands in exactly one of the two slices.
*/
func Split(entries []NormalizedEntry) (parents []NormalizedEntry, children []NormalizedEntry) {
	parents = make([]NormalizedEntry, 0)
	children = make([]NormalizedEntry, 0, len(entries))

	for _, entry := range entries {
		if IsParent(entry.Code) {
			parents = append(parents, entry)
		} else {
			children = append(children, entry)
		}
	}

	return parents, children
}
