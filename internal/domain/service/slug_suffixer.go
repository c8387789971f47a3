package service

// SlugSuffixer produces the random suffix appended to a base slug when the
// first candidate collides with an existing store.
type SlugSuffixer interface {
	// Suffix returns a fresh 5-character lowercase-alphanumeric string.
	Suffix() string
}
