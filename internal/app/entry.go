package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pscheid92/wordbook/internal/domain"
)

// entryPayload is the submitted JSON. Pointers distinguish missing fields from empty ones.
type entryPayload struct {
	Word       *string `validate:"required"`
	Definition *string `validate:"required"`
}

// normalizedEntry is validated after trimming and lowercasing.
type normalizedEntry struct {
	Word       string `validate:"required,excludesall=0123456789"`
	Definition string `validate:"required"`
}

var validate = validator.New()

// ParseEntry validates a submitted JSON body and returns the normalized entry.
// Every failure is an *domain.InvalidEntryError naming the reason.
func ParseEntry(body []byte) (domain.Entry, error) {
	payload, err := decodePayload(body)
	if err != nil {
		return domain.Entry{}, &domain.InvalidEntryError{Reason: domain.ReasonMalformedJSON, Cause: err}
	}
	if err := validate.Struct(payload); err != nil {
		return domain.Entry{}, invalidEntry(err, missingFieldReason)
	}

	entry := normalizedEntry{
		Word:       strings.ToLower(strings.TrimSpace(*payload.Word)),
		Definition: strings.TrimSpace(*payload.Definition),
	}
	if err := validate.Struct(entry); err != nil {
		return domain.Entry{}, invalidEntry(err, normalizedReason)
	}

	return domain.Entry{Word: entry.Word, Definition: entry.Definition}, nil
}

// decodePayload matches the "word" and "definition" keys exactly; any other
// spelling counts as a missing field.
func decodePayload(body []byte) (entryPayload, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return entryPayload{}, err
	}

	var payload entryPayload
	if err := decodeField(fields, "word", &payload.Word); err != nil {
		return entryPayload{}, err
	}
	if err := decodeField(fields, "definition", &payload.Definition); err != nil {
		return entryPayload{}, err
	}
	return payload, nil
}

func decodeField(fields map[string]json.RawMessage, key string, dst **string) error {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("field %q: %w", key, err)
	}
	return nil
}

func missingFieldReason(_, _ string) domain.Reason {
	return domain.ReasonMissingField
}

func normalizedReason(field, tag string) domain.Reason {
	switch {
	case field == "word" && tag == "excludesall":
		return domain.ReasonWordContainsDigit
	case field == "word":
		return domain.ReasonEmptyWord
	default:
		return domain.ReasonEmptyDefinition
	}
}

// invalidEntry reports the first failing field.
func invalidEntry(err error, reason func(field, tag string) domain.Reason) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &domain.InvalidEntryError{Reason: domain.ReasonMalformedJSON, Cause: err}
	}

	fe := fieldErrs[0]
	field := strings.ToLower(fe.Field())
	return &domain.InvalidEntryError{
		Reason: reason(field, fe.Tag()),
		Field:  field,
		Cause:  err,
	}
}
