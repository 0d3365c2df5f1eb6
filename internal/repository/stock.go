package repository

import (
	"context"
	"fmt"

	"github.com/hskpro/warehouse-api/internal/domain"
	"github.com/hskpro/warehouse-api/internal/repository/dao"
)

var ErrStockSummaryNotFound = dao.ErrStockSummaryNotFound

type StockDAO interface {
	ApplyDelta(ctx context.Context, barcode string, delta int) error
	FindByBarcode(ctx context.Context, barcode string) (dao.StockSummary, error)
}

type StockRepository struct {
	dao StockDAO
}

func NewStockRepository(dao StockDAO) *StockRepository {
	return &StockRepository{
		dao: dao,
	}
}

func (r *StockRepository) ApplyDelta(ctx context.Context, barcode string, delta int) error {
	if err := r.dao.ApplyDelta(ctx, barcode, delta); err != nil {
		return fmt.Errorf("r.dao.ApplyDelta -> %w", err)
	}

	return nil
}

func (r *StockRepository) FindByBarcode(ctx context.Context, barcode string) (domain.StockSummary, error) {
	found, err := r.dao.FindByBarcode(ctx, barcode)
	if err != nil {
		return domain.StockSummary{}, fmt.Errorf("r.dao.FindByBarcode -> %w", err)
	}

	return domain.StockSummary{
		Barcode: found.Barcode,
		OnHand:  found.OnHand,
	}, nil
}
