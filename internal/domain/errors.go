package domain

import (
	"errors"
	"fmt"
)

var (
	ErrWordNotFound = errors.New("word not found")
	ErrWordExists   = errors.New("word already exists")
	ErrInvalidEntry = errors.New("invalid word or definition")
)

// Reason names why a submitted entry was rejected.
type Reason string

const (
	ReasonMalformedJSON     Reason = "malformed_json"
	ReasonMissingField      Reason = "missing_field"
	ReasonEmptyWord         Reason = "empty_word"
	ReasonEmptyDefinition   Reason = "empty_definition"
	ReasonWordContainsDigit Reason = "word_contains_digit"
)

// InvalidEntryError is the failure result of entry validation.
type InvalidEntryError struct {
	Reason Reason
	Field  string
	Cause  error
}

func (e *InvalidEntryError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrInvalidEntry, e.Reason)
	if e.Field != "" {
		msg += " (" + e.Field + ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *InvalidEntryError) Is(target error) bool {
	return target == ErrInvalidEntry
}

func (e *InvalidEntryError) Unwrap() error {
	return e.Cause
}

// WordExistsError reports a duplicate word; Word is the normalized form.
type WordExistsError struct {
	Word string
}

func (e *WordExistsError) Error() string {
	return fmt.Sprintf("%s: %q", ErrWordExists, e.Word)
}

func (e *WordExistsError) Is(target error) bool {
	return target == ErrWordExists
}
