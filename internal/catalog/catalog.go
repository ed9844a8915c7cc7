// Package catalog exposes the bundled read-only timezone dataset the user
// can search and add records from. Entries are transient: they live in
// memory only during a search/add interaction and are never persisted
// directly; selecting one copies its fields into a new TimezoneRecord.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tartampluch/go-worldclock/internal/config"
	"github.com/tartampluch/go-worldclock/internal/engine"
)

//go:embed timezones.json
var datasetData []byte

// Entry is one read-only template record from the bundled dataset.
// Identity within the dataset is the Text field, assumed unique.
type Entry struct {
	Value  string   `json:"value"`
	Abbr   string   `json:"abbr"`
	Offset float64  `json:"offset"`
	IsDST  bool     `json:"isdst"`
	Text   string   `json:"text"`
	UTC    []string `json:"utc"`
}

// entryDoc mirrors Entry with pointer fields so that an absent key can be
// told apart from a legitimate zero value (offset 0, isdst false) during
// validation.
type entryDoc struct {
	Value  *string   `json:"value" validate:"required"`
	Abbr   *string   `json:"abbr" validate:"required"`
	Offset *float64  `json:"offset" validate:"required"`
	IsDST  *bool     `json:"isdst" validate:"required"`
	Text   *string   `json:"text" validate:"required"`
	UTC    *[]string `json:"utc" validate:"required"`
}

// Load decodes the embedded dataset once. A decode failure disables the
// search feature only: the caller logs the error and keeps an empty catalog.
func Load() ([]Entry, error) {
	return Decode(datasetData)
}

// Decode parses a dataset document and fails fast with a descriptive error
// if any entry has a missing or mistyped field.
func Decode(data []byte) ([]Entry, error) {
	var docs []entryDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrCatalogDecode, err)
	}

	validate := validator.New()
	entries := make([]Entry, 0, len(docs))

	for i, doc := range docs {
		if err := validate.Struct(doc); err != nil {
			return nil, fmt.Errorf("%s (entry %d): %w", config.ErrCatalogField, i, err)
		}
		entries = append(entries, Entry{
			Value:  *doc.Value,
			Abbr:   *doc.Abbr,
			Offset: *doc.Offset,
			IsDST:  *doc.IsDST,
			Text:   *doc.Text,
			UTC:    *doc.UTC,
		})
	}

	return entries, nil
}

// Filter returns the entries whose Text or Value contains the query,
// case-insensitively, preserving dataset order. An empty query returns the
// full catalog. The function is pure: it never mutates its input and holds
// no UI state.
func Filter(entries []Entry, query string) []Entry {
	if query == "" {
		return entries
	}

	needle := strings.ToLower(query)
	var matched []Entry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Text), needle) ||
			strings.Contains(strings.ToLower(e.Value), needle) {
			matched = append(matched, e)
		}
	}
	return matched
}

// Record copies the entry's fields into a newly identified persistent
// record. The entry itself is left untouched.
func (e Entry) Record() engine.TimezoneRecord {
	return engine.NewTimezoneRecord(e.Value, e.Abbr, e.Offset, e.IsDST, e.Text, e.UTC)
}
