// Package locale provides the user-facing message catalog.
//
// Messages are registered per locale with universal-translator and rendered with
// positional parameters, so a catalog can be swapped without touching handlers.
package locale

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
)

// Message keys.
const (
	KeyInvalidGetRequest       = "invalidGetRequest"
	KeyWordNotFound            = "wordNotFound"
	KeyInvalidWordOrDefinition = "invalidWordOrDefinition"
	KeyWordExists              = "wordExists"
	KeyNewEntryRecorded        = "newEntryRecorded"
	KeyMethodNotAllowed        = "methodNotAllowed"
	KeyEndpointNotFound        = "endpointNotFound"
)

// Placeholders must appear in ascending order within a text, so each key has a
// fixed parameter order:
//
//	wordNotFound:     request number, word
//	wordExists:       word, request number
//	newEntryRecorded: request number, word, definition, total entries
var catalogs = map[string]map[string]string{
	"en": {
		KeyInvalidGetRequest:       "Invalid GET request.",
		KeyWordNotFound:            "Request #{0}, word '{1}' not found!",
		KeyInvalidWordOrDefinition: "Invalid word or definition. Please provide a valid word and definition.",
		KeyWordExists:              "Warning! Word '{0}' already exists. Request #{1}.",
		KeyNewEntryRecorded:        "Request #{0}, new entry recorded: '{1}' - '{2}'. Total entries: {3}.",
		KeyMethodNotAllowed:        "Method not allowed.",
		KeyEndpointNotFound:        "Endpoint not found.",
	},
	"de": {
		KeyInvalidGetRequest:       "Ungültige GET-Anfrage.",
		KeyWordNotFound:            "Anfrage #{0}, Wort '{1}' nicht gefunden!",
		KeyInvalidWordOrDefinition: "Ungültiges Wort oder ungültige Definition. Bitte gib ein gültiges Wort und eine gültige Definition an.",
		KeyWordExists:              "Achtung! Das Wort '{0}' existiert bereits. Anfrage #{1}.",
		KeyNewEntryRecorded:        "Anfrage #{0}, neuer Eintrag gespeichert: '{1}' - '{2}'. Einträge insgesamt: {3}.",
		KeyMethodNotAllowed:        "Methode nicht erlaubt.",
		KeyEndpointNotFound:        "Endpunkt nicht gefunden.",
	},
}

// Catalog renders the dictionary messages of one locale.
type Catalog struct {
	trans ut.Translator
}

// New returns the catalog for the given locale, e.g. "en" or "de".
func New(locale string) (*Catalog, error) {
	fallback := en.New()
	uni := ut.New(fallback, fallback, de.New())

	for _, l := range []locales.Translator{fallback, de.New()} {
		trans, _ := uni.GetTranslator(l.Locale())
		for key, text := range catalogs[l.Locale()] {
			if err := trans.Add(key, text, false); err != nil {
				return nil, fmt.Errorf("failed to register %s message %q: %w", l.Locale(), key, err)
			}
		}
	}

	trans, found := uni.GetTranslator(locale)
	if !found {
		return nil, fmt.Errorf("unsupported locale %q", locale)
	}

	return &Catalog{trans: trans}, nil
}

// Locale returns the locale the catalog renders.
func (c *Catalog) Locale() string {
	return c.trans.Locale()
}

func (c *Catalog) InvalidGetRequest() string {
	return c.render(KeyInvalidGetRequest)
}

func (c *Catalog) WordNotFound(word string, requestNumber int64) string {
	return c.render(KeyWordNotFound, formatInt(requestNumber), word)
}

func (c *Catalog) InvalidWordOrDefinition() string {
	return c.render(KeyInvalidWordOrDefinition)
}

func (c *Catalog) WordExists(word string, requestNumber int64) string {
	return c.render(KeyWordExists, word, formatInt(requestNumber))
}

func (c *Catalog) NewEntryRecorded(word, definition string, totalEntries int, requestNumber int64) string {
	return c.render(KeyNewEntryRecorded, formatInt(requestNumber), word, definition, strconv.Itoa(totalEntries))
}

func (c *Catalog) MethodNotAllowed() string {
	return c.render(KeyMethodNotAllowed)
}

func (c *Catalog) EndpointNotFound() string {
	return c.render(KeyEndpointNotFound)
}

// render falls back to the key itself; every key is registered in New.
func (c *Catalog) render(key string, params ...string) string {
	msg, err := c.trans.T(key, params...)
	if err != nil {
		slog.Error("Failed to render message", "locale", c.trans.Locale(), "key", key, "error", err)
		return key
	}
	return msg
}

func formatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}
