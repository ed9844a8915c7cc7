package engine

import (
	"strings"

	"github.com/google/uuid"
	"github.com/tartampluch/go-worldclock/internal/config"
)

// TimezoneRecord is a named timezone entry the user has chosen to keep.
// Records are created and deleted but never edited; the identifier is
// assigned once at creation and never reassigned.
type TimezoneRecord struct {
	// ID is an opaque unique identifier, immutable after creation.
	ID string

	// Value is the display name, e.g. "Pacific Standard Time".
	Value string

	// Abbreviation is the short code, e.g. "PST".
	Abbreviation string

	// OffsetHours is the signed fractional-hour displacement from UTC.
	// Typically in [-12, 14] but not validated.
	OffsetHours float64

	// ObservesDST is informational only; it is never applied to the time
	// computation.
	ObservesDST bool

	// Description is free text, e.g. "(UTC-08:00) Pacific Standard Time
	// (US & Canada)". The persisted list is sorted by it.
	Description string

	// UTCIdentifiers is the ordered list of region identifiers, persisted
	// as a single delimited string.
	UTCIdentifiers []string
}

// NewTimezoneRecord builds a record with a freshly generated identifier.
func NewTimezoneRecord(value, abbreviation string, offsetHours float64, observesDST bool, description string, utcIdentifiers []string) TimezoneRecord {
	return TimezoneRecord{
		ID:             uuid.NewString(),
		Value:          value,
		Abbreviation:   abbreviation,
		OffsetHours:    offsetHours,
		ObservesDST:    observesDST,
		Description:    description,
		UTCIdentifiers: utcIdentifiers,
	}
}

// JoinUTCIdentifiers serializes region identifiers into the single
// comma-and-space-joined string used by the store.
func JoinUTCIdentifiers(identifiers []string) string {
	return strings.Join(identifiers, config.UTCIdentifierSeparator)
}

// SplitUTCIdentifiers recovers the list form from the persisted string.
// An empty string yields a nil slice, not a one-element slice.
func SplitUTCIdentifiers(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, config.UTCIdentifierSeparator)
}
