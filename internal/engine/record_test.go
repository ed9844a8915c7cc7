package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-worldclock/internal/engine"
)

func TestNewTimezoneRecord(t *testing.T) {
	rec := engine.NewTimezoneRecord(
		"Pacific Standard Time",
		"PST",
		-8,
		false,
		"(UTC-08:00) Pacific Standard Time (US & Canada)",
		[]string{"America/Los_Angeles", "America/Tijuana"},
	)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "Pacific Standard Time", rec.Value)
	assert.Equal(t, "PST", rec.Abbreviation)
	assert.Equal(t, -8.0, rec.OffsetHours)
	assert.False(t, rec.ObservesDST)
	assert.Len(t, rec.UTCIdentifiers, 2)
}

func TestNewTimezoneRecord_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		rec := engine.NewTimezoneRecord("UTC", "UTC", 0, false, "", nil)
		assert.False(t, seen[rec.ID], "identifier collision")
		seen[rec.ID] = true
	}
}

func TestUTCIdentifiers_JoinSplit(t *testing.T) {
	ids := []string{"America/Los_Angeles", "America/Tijuana"}

	joined := engine.JoinUTCIdentifiers(ids)
	assert.Equal(t, "America/Los_Angeles, America/Tijuana", joined)
	assert.Equal(t, ids, engine.SplitUTCIdentifiers(joined))
}

func TestUTCIdentifiers_Empty(t *testing.T) {
	assert.Equal(t, "", engine.JoinUTCIdentifiers(nil))
	// An empty persisted string must come back as no identifiers, not one
	// empty identifier.
	assert.Nil(t, engine.SplitUTCIdentifiers(""))
}

func TestUTCIdentifiers_Single(t *testing.T) {
	joined := engine.JoinUTCIdentifiers([]string{"Asia/Kathmandu"})
	assert.Equal(t, "Asia/Kathmandu", joined)
	assert.Equal(t, []string{"Asia/Kathmandu"}, engine.SplitUTCIdentifiers(joined))
}
