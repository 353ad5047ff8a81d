package kvstore

import (
	"errors"

	"github.com/certhub/certhub/pkg/database"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is one persisted collection blob.
type Record struct {
	Key   string `gorm:"primaryKey"`
	Value []byte
}

// GormStore keeps each collection as a row in a records table. The store is
// single-client; no row locking is done here.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}

	return &GormStore{db: db}, nil
}

func (g *GormStore) Get(key string) ([]byte, bool, error) {
	var record Record
	db := g.db.Where(&Record{Key: key}).Find(&record)
	if db.Error != nil {
		if errors.Is(db.Error, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, db.Error
	}

	if _, ok := database.CheckDBForErrorOrNoRows(db); !ok {
		return nil, false, nil
	}

	return record.Value, true, nil
}

func (g *GormStore) Set(key string, value []byte) error {
	record := Record{Key: key, Value: value}
	db := g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&record)

	return db.Error
}

func (g *GormStore) Remove(key string) error {
	return g.db.Delete(&Record{}, "key = ?", key).Error
}
