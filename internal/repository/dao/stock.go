package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrStockSummaryNotFound = errors.New("stock summary not found")

type StockSummary struct {
	Barcode   string    `gorm:"primaryKey"`
	OnHand    int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"not null"`
}

type StockDAO struct {
	db *gorm.DB
}

func NewStockDAO(db *gorm.DB) *StockDAO {
	return &StockDAO{
		db: db,
	}
}

// A single upsert keeps the adjustment atomic across instances. On-hand
// never drops below zero; shipping more than the summary knows about
// clamps to zero and the ledger stays authoritative.
const applyDeltaSQL = `
INSERT INTO stock_summaries (barcode, on_hand, updated_at)
VALUES (?, GREATEST(?, 0), NOW())
ON CONFLICT (barcode)
DO UPDATE SET on_hand = GREATEST(stock_summaries.on_hand + ?, 0), updated_at = NOW()`

func (d *StockDAO) ApplyDelta(ctx context.Context, barcode string, delta int) error {
	result := d.db.WithContext(ctx).Exec(applyDeltaSQL, barcode, delta, delta)

	return result.Error
}

func (d *StockDAO) FindByBarcode(ctx context.Context, barcode string) (StockSummary, error) {
	var summary StockSummary

	result := d.db.WithContext(ctx).First(&summary, "barcode = ?", barcode)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return StockSummary{}, ErrStockSummaryNotFound
		}

		return StockSummary{}, result.Error
	}

	return summary, nil
}
