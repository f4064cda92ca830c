package domain

// Entry is one normalized record extracted from a word-list document.
// A single source line may produce several entries.
type Entry struct {
	Word         string
	Category     string
	Level        Level
	Source       string
	OriginalLine string
	Variant      Variant
	Pattern      Pattern
}

// RawDocument is the line-oriented text of one source file.
type RawDocument struct {
	Name  string
	Pages int
	Lines []string
}

// CandidateLine is a document line with its 1-based ordinal and the line
// that follows it, if any.
type CandidateLine struct {
	Text    string
	Ordinal int
	Next    *string
}

// WordLevel is a (word, level) pair read from a lexicon table.
type WordLevel struct {
	Word  string
	Level Level
}

// DictEntry is a definition record converted from a non-PDF dictionary source.
type DictEntry struct {
	Word       string `json:"word"`
	Category   string `json:"category"`
	Definition string `json:"definition"`
	Synset     string `json:"synset,omitempty"`
}
