package domain

// DiffOutcome is the result of comparing the current text against the baseline.
// When Changed is false, Original and Modified are empty and no diff view
// should be opened.
type DiffOutcome struct {
	Changed  bool
	Original string
	Modified string
}

// NoChanges returns the outcome for identical texts.
func NoChanges() DiffOutcome {
	return DiffOutcome{}
}

// Changes returns the outcome carrying both sides for a diff view.
func Changes(original, modified string) DiffOutcome {
	return DiffOutcome{Changed: true, Original: original, Modified: modified}
}
