package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrCatalogEntryNotFound = errors.New("catalog entry not found")

type CatalogEntry struct {
	ID uint `gorm:"primaryKey"`

	Barcode    string `gorm:"unique;not null"`
	Brand      string `gorm:"not null"`
	Color      string
	Size       string
	FourDigit  string
	Unit       string
	Quantity   int `gorm:"not null;default:1"`
	Production string
	Model      string
	ModelCode  string
	Item       string
}

type CatalogDAO struct {
	db *gorm.DB
}

func NewCatalogDAO(db *gorm.DB) *CatalogDAO {
	return &CatalogDAO{
		db: db,
	}
}

// FindByBarcode is an exact-match lookup; callers trim the input first.
func (d *CatalogDAO) FindByBarcode(ctx context.Context, barcode string) (CatalogEntry, error) {
	var entry CatalogEntry

	result := d.db.WithContext(ctx).First(&entry, "barcode = ?", barcode)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return CatalogEntry{}, ErrCatalogEntryNotFound
		}

		return CatalogEntry{}, result.Error
	}

	return entry, nil
}
