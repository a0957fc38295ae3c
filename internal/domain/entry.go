package domain

import "context"

// Entry is a stored word/definition pair. Word is trimmed and lowercased,
// Definition is trimmed.
type Entry struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

// DefinitionOutcome classifies a submitted definition.
type DefinitionOutcome string

const (
	DefinitionCreated   DefinitionOutcome = "created"
	DefinitionDuplicate DefinitionOutcome = "duplicate"
	DefinitionInvalid   DefinitionOutcome = "invalid"
)

// DictionaryRepository is an append-only, insertion-ordered collection holding
// at most one entry per word.
type DictionaryRepository interface {
	// Find returns the entry stored under the exact word, or ErrWordNotFound.
	Find(ctx context.Context, word string) (Entry, error)
	// Append stores the entry and returns the new number of entries.
	// It fails with a *WordExistsError if the word is already present.
	Append(ctx context.Context, entry Entry) (int, error)
	Count(ctx context.Context) int
}
