// Package model defines shared data structures.
package model

// WordEntry is one stored word.
type WordEntry struct {
	// ID is assigned by the table backend; always 0 for the text backend.
	ID   int64
	Text string
	Used bool
}

// Config is the resolved runtime configuration.
type Config struct {
	Locale     string
	MaxGuesses int
	WordLength int
	LogLevel   string
	Storage    StorageConfig
}

// StorageConfig selects the word base backend.
type StorageConfig struct {
	// DatabaseURL selects the table backend when non-empty.
	DatabaseURL string
	// WordFile is the text backend path, used when DatabaseURL is empty.
	WordFile string
}

// UsesTable reports whether the table backend is selected.
func (s StorageConfig) UsesTable() bool {
	return s.DatabaseURL != ""
}

// Location returns the URL or path of the selected backend.
func (s StorageConfig) Location() string {
	if s.UsesTable() {
		return s.DatabaseURL
	}
	return s.WordFile
}

// Summary counts the entries of a word base.
type Summary struct {
	Total int
	Used  int
}

// Unused returns the number of entries still eligible for a table backend pick.
func (s Summary) Unused() int {
	return s.Total - s.Used
}
