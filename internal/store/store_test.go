package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-worldclock/internal/engine"
	"github.com/tartampluch/go-worldclock/internal/store"
)

// newTestStore opens a throwaway in-memory store.
func newTestStore(t *testing.T) *store.SQLStore {
	t.Helper()

	st, err := store.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestStore_EmptyList(t *testing.T) {
	st := newTestStore(t)

	records, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStore_InsertAndList_SortedByDescription(t *testing.T) {
	st := newTestStore(t)

	// Inserted deliberately out of order.
	tokyo := engine.NewTimezoneRecord("Tokyo Standard Time", "JST", 9, false,
		"(UTC+09:00) Osaka, Sapporo, Tokyo", []string{"Asia/Tokyo"})
	pacific := engine.NewTimezoneRecord("Pacific Standard Time", "PST", -8, false,
		"(UTC-08:00) Pacific Standard Time (US & Canada)", []string{"America/Los_Angeles", "America/Tijuana"})
	india := engine.NewTimezoneRecord("India Standard Time", "IST", 5.5, false,
		"(UTC+05:30) Chennai, Kolkata, Mumbai, New Delhi", []string{"Asia/Kolkata"})

	require.NoError(t, st.Insert(tokyo))
	require.NoError(t, st.Insert(pacific))
	require.NoError(t, st.Insert(india))

	records, err := st.List()
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Description ascending, not insertion order.
	assert.Equal(t, "(UTC+05:30) Chennai, Kolkata, Mumbai, New Delhi", records[0].Description)
	assert.Equal(t, "(UTC+09:00) Osaka, Sapporo, Tokyo", records[1].Description)
	assert.Equal(t, "(UTC-08:00) Pacific Standard Time (US & Canada)", records[2].Description)
}

func TestStore_RoundTrip(t *testing.T) {
	st := newTestStore(t)

	original := engine.NewTimezoneRecord("Pacific Standard Time", "PST", -8, false,
		"(UTC-08:00) Pacific Standard Time (US & Canada)", []string{"America/Los_Angeles", "America/Tijuana"})
	require.NoError(t, st.Insert(original))

	records, err := st.List()
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, original.ID, got.ID)
	assert.Equal(t, original.Value, got.Value)
	assert.Equal(t, original.Abbreviation, got.Abbreviation)
	assert.Equal(t, original.OffsetHours, got.OffsetHours)
	assert.Equal(t, original.ObservesDST, got.ObservesDST)
	assert.Equal(t, original.Description, got.Description)
	assert.Equal(t, original.UTCIdentifiers, got.UTCIdentifiers)
}

func TestStore_RoundTrip_NoIdentifiers(t *testing.T) {
	st := newTestStore(t)

	rec := engine.NewTimezoneRecord("Custom", "CST", 3.5, true, "my custom zone", nil)
	require.NoError(t, st.Insert(rec))

	records, err := st.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Nil(t, records[0].UTCIdentifiers)
}

func TestStore_FractionalOffsetSurvives(t *testing.T) {
	st := newTestStore(t)

	rec := engine.NewTimezoneRecord("Nepal Standard Time", "NPT", 5.75, false,
		"(UTC+05:45) Kathmandu", []string{"Asia/Kathmandu"})
	require.NoError(t, st.Insert(rec))

	records, err := st.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 5.75, records[0].OffsetHours)
}

func TestStore_Delete(t *testing.T) {
	st := newTestStore(t)

	keep := engine.NewTimezoneRecord("Tokyo Standard Time", "JST", 9, false, "keep me", nil)
	drop := engine.NewTimezoneRecord("Pacific Standard Time", "PST", -8, false, "drop me", nil)
	require.NoError(t, st.Insert(keep))
	require.NoError(t, st.Insert(drop))

	require.NoError(t, st.Delete(drop))

	records, err := st.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, keep.ID, records[0].ID)
}

func TestStore_DeleteAbsent(t *testing.T) {
	st := newTestStore(t)

	ghost := engine.NewTimezoneRecord("Ghost", "GST", 0, false, "never inserted", nil)
	assert.NoError(t, st.Delete(ghost))
}

func TestStore_DuplicateID(t *testing.T) {
	st := newTestStore(t)

	rec := engine.NewTimezoneRecord("UTC", "UTC", 0, false, "once", nil)
	require.NoError(t, st.Insert(rec))

	// Same primary key again: the write fails and the caller is expected to
	// log and move on.
	assert.Error(t, st.Insert(rec))

	records, err := st.List()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clocks.db")

	st, err := store.Open(path)
	require.NoError(t, err)

	rec := engine.NewTimezoneRecord("Tokyo Standard Time", "JST", 9, false,
		"(UTC+09:00) Osaka, Sapporo, Tokyo", []string{"Asia/Tokyo"})
	require.NoError(t, st.Insert(rec))
	require.NoError(t, st.Close())

	reopened, err := store.Open(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	records, err := reopened.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, rec.ID, records[0].ID)
}

func TestStore_OpenInvalidPath(t *testing.T) {
	_, err := store.Open(filepath.Join(t.TempDir(), "missing", "nested", "clocks.db"))
	assert.Error(t, err)
}
