// Package keystore persists recovered disc and title keys so that a repeat
// run against the same disc image can skip key recovery entirely.
package keystore

import (
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DiscKeyEntry is a persisted, recovered disc key.
type DiscKeyEntry struct {
	ID          uint64 `gorm:"primaryKey"`
	DiscID      string `gorm:"unique; not null"`
	Key         []byte `gorm:"not null"`
	VolumeLabel string
	RecoveredAt time.Time
}

// TitleKeyEntry is a persisted, recovered title key, scoped to a disc and a
// title (VOB) index within it.
type TitleKeyEntry struct {
	ID         uint64 `gorm:"primaryKey"`
	DiscID     string `gorm:"not null; index:idx_disc_title,unique"`
	TitleIndex int    `gorm:"not null; index:idx_disc_title,unique"`
	Key        []byte `gorm:"not null"`
}

// Store is a SQL-backed cache in front of the key recovery algorithms in
// package css. It never derives keys itself.
type Store struct {
	db *gorm.DB
}

// Open opens the backing database at dsn and auto-migrates both record
// types. Only the "sqlite" driver is wired into this build.
func Open(driver, dsn string) (*Store, error) {
	if driver != "sqlite" {
		return nil, fmt.Errorf("keystore: unsupported driver %q", driver)
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Error)})
	if err != nil {
		return nil, fmt.Errorf("keystore: opening database: %w", err)
	}

	if err := db.AutoMigrate(&DiscKeyEntry{}, &TitleKeyEntry{}); err != nil {
		return nil, fmt.Errorf("keystore: auto migrating: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	database, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("keystore: getting underlying connection: %w", err)
	}
	return database.Close()
}

// SaveDiscKey upserts the disc key recovered for discID.
func (s *Store) SaveDiscKey(discID string, key [5]byte, volumeLabel string) error {
	entry := DiscKeyEntry{
		DiscID:      discID,
		Key:         key[:],
		VolumeLabel: volumeLabel,
		RecoveredAt: time.Now(),
	}

	existing, err := s.FindDiscKey(discID)
	if err != nil {
		return err
	}
	if existing != nil {
		entry.ID = existing.ID
		return s.db.Save(&entry).Error
	}
	return s.db.Create(&entry).Error
}

// FindDiscKey returns the disc key stored for discID, or nil if there is no
// matching row.
func (s *Store) FindDiscKey(discID string) (*DiscKeyEntry, error) {
	var entry DiscKeyEntry
	err := s.db.Where("disc_id = ?", discID).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// SaveTitleKey upserts the title key recovered for (discID, titleIndex).
func (s *Store) SaveTitleKey(discID string, titleIndex int, key [5]byte) error {
	entry := TitleKeyEntry{
		DiscID:     discID,
		TitleIndex: titleIndex,
		Key:        key[:],
	}

	existing, err := s.FindTitleKey(discID, titleIndex)
	if err != nil {
		return err
	}
	if existing != nil {
		entry.ID = existing.ID
		return s.db.Save(&entry).Error
	}
	return s.db.Create(&entry).Error
}

// FindTitleKey returns the title key stored for (discID, titleIndex), or nil
// if there is no matching row.
func (s *Store) FindTitleKey(discID string, titleIndex int) (*TitleKeyEntry, error) {
	var entry TitleKeyEntry
	err := s.db.Where("disc_id = ? AND title_index = ?", discID, titleIndex).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}
