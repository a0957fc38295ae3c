package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pscheid92/wordbook/internal/domain"
)

// dictionaryObserver records dictionary usage; implemented by metrics.DictionaryMetrics.
type dictionaryObserver interface {
	LookupRecorded(hit bool)
	DefinitionRecorded(outcome domain.DefinitionOutcome, totalEntries int)
	InvalidEntry(reason string)
}

// Definition is the result of a successfully recorded entry.
type Definition struct {
	Entry        domain.Entry
	TotalEntries int
}

// DictionaryService orchestrates lookups and definitions against the repository.
type DictionaryService struct {
	repo     domain.DictionaryRepository
	observer dictionaryObserver
}

func NewDictionaryService(repo domain.DictionaryRepository, observer dictionaryObserver) *DictionaryService {
	return &DictionaryService{
		repo:     repo,
		observer: observer,
	}
}

// Lookup finds the entry for word. The key is lowercased but not trimmed.
func (s *DictionaryService) Lookup(ctx context.Context, word string) (domain.Entry, error) {
	entry, err := s.repo.Find(ctx, strings.ToLower(word))
	if errors.Is(err, domain.ErrWordNotFound) {
		s.observer.LookupRecorded(false)
		return domain.Entry{}, err
	}
	if err != nil {
		return domain.Entry{}, fmt.Errorf("failed to look up word: %w", err)
	}

	s.observer.LookupRecorded(true)
	return entry, nil
}

// Define validates the submitted JSON body and appends the entry.
// It fails with *domain.InvalidEntryError or *domain.WordExistsError.
func (s *DictionaryService) Define(ctx context.Context, body []byte) (Definition, error) {
	entry, err := ParseEntry(body)
	if err != nil {
		var invalid *domain.InvalidEntryError
		if errors.As(err, &invalid) {
			s.observer.InvalidEntry(string(invalid.Reason))
		}
		s.observer.DefinitionRecorded(domain.DefinitionInvalid, s.repo.Count(ctx))
		return Definition{}, err
	}

	total, err := s.repo.Append(ctx, entry)
	if errors.Is(err, domain.ErrWordExists) {
		s.observer.DefinitionRecorded(domain.DefinitionDuplicate, total)
		return Definition{}, err
	}
	if err != nil {
		return Definition{}, fmt.Errorf("failed to append entry: %w", err)
	}

	s.observer.DefinitionRecorded(domain.DefinitionCreated, total)
	slog.DebugContext(ctx, "Entry recorded", "word", entry.Word, "total_entries", total)

	return Definition{Entry: entry, TotalEntries: total}, nil
}
