// Package store persists timezone records in a local SQLite database.
// A store is constructed explicitly and injected into whatever needs it;
// there is no package-level instance.
package store

import (
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tartampluch/go-worldclock/internal/config"
	"github.com/tartampluch/go-worldclock/internal/engine"
)

// Store is the persistence boundary for timezone records. Mutation failures
// are returned to the caller, which logs them and treats the operation as a
// no-op; there are no retries.
type Store interface {
	List() ([]engine.TimezoneRecord, error)
	Insert(engine.TimezoneRecord) error
	Delete(engine.TimezoneRecord) error
	Close() error
}

// timezoneRow is the GORM model mapping a TimezoneRecord to its table.
// Region identifiers are persisted as a single ", "-delimited string and
// split on demand by readers needing the list form.
type timezoneRow struct {
	ID             string  `gorm:"primaryKey;column:id"`
	Value          string  `gorm:"column:value"`
	Abbreviation   string  `gorm:"column:abbreviation"`
	OffsetHours    float64 `gorm:"column:offset_hours"`
	ObservesDST    bool    `gorm:"column:observes_dst"`
	Description    string  `gorm:"column:description"`
	UTCIdentifiers string  `gorm:"column:utc_identifiers"`
	CreatedAt      time.Time
}

// TableName overrides the default table name.
func (timezoneRow) TableName() string {
	return config.StoreTableName
}

func newRow(rec engine.TimezoneRecord) timezoneRow {
	return timezoneRow{
		ID:             rec.ID,
		Value:          rec.Value,
		Abbreviation:   rec.Abbreviation,
		OffsetHours:    rec.OffsetHours,
		ObservesDST:    rec.ObservesDST,
		Description:    rec.Description,
		UTCIdentifiers: engine.JoinUTCIdentifiers(rec.UTCIdentifiers),
	}
}

func (r timezoneRow) record() engine.TimezoneRecord {
	return engine.TimezoneRecord{
		ID:             r.ID,
		Value:          r.Value,
		Abbreviation:   r.Abbreviation,
		OffsetHours:    r.OffsetHours,
		ObservesDST:    r.ObservesDST,
		Description:    r.Description,
		UTCIdentifiers: engine.SplitUTCIdentifiers(r.UTCIdentifiers),
	}
}

// SQLStore implements Store on a single gorm.DB handle. All mutations are
// serialized through that handle; no further locking is applied.
type SQLStore struct {
	db *gorm.DB
}

// Open opens (or creates) the SQLite database at path and migrates the
// schema. An error here is fatal to the process: no usable state exists
// without a store.
func Open(path string) (*SQLStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrStoreOpen, err)
	}
	return newSQLStore(db)
}

// OpenMemory opens a throwaway in-memory store, used by tests.
func OpenMemory() (*SQLStore, error) {
	return Open(config.StoreMemoryDSN)
}

func newSQLStore(db *gorm.DB) (*SQLStore, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrStoreConn, err)
	}
	sqlDB.SetMaxOpenConns(config.StoreMaxConns)

	if err := db.AutoMigrate(&timezoneRow{}); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrStoreMigrate, err)
	}

	return &SQLStore{db: db}, nil
}

// List returns every record sorted by description ascending.
func (s *SQLStore) List() ([]engine.TimezoneRecord, error) {
	var rows []timezoneRow
	if err := s.db.Order(config.StoreListOrder).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrStoreList, err)
	}

	records := make([]engine.TimezoneRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.record())
	}
	return records, nil
}

// Insert persists a new record. The record's identifier must already be
// assigned; the store never generates or rewrites identity.
func (s *SQLStore) Insert(rec engine.TimezoneRecord) error {
	row := newRow(rec)
	if err := s.db.Create(&row).Error; err != nil {
		return fmt.Errorf("%s: %w", config.ErrStoreInsert, err)
	}
	return nil
}

// Delete removes the record permanently. Deleting an absent record is not
// an error.
func (s *SQLStore) Delete(rec engine.TimezoneRecord) error {
	if err := s.db.Where("id = ?", rec.ID).Delete(&timezoneRow{}).Error; err != nil {
		return fmt.Errorf("%s: %w", config.ErrStoreDelete, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrStoreConn, err)
	}
	return sqlDB.Close()
}
