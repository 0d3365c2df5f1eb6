package repository

import (
	"context"
	"fmt"

	"github.com/hskpro/warehouse-api/internal/domain"
	"github.com/hskpro/warehouse-api/internal/repository/dao"
)

var ErrCatalogEntryNotFound = dao.ErrCatalogEntryNotFound

type CatalogDAO interface {
	FindByBarcode(ctx context.Context, barcode string) (dao.CatalogEntry, error)
}

type CatalogRepository struct {
	dao CatalogDAO
}

func NewCatalogRepository(dao CatalogDAO) *CatalogRepository {
	return &CatalogRepository{
		dao: dao,
	}
}

func (r *CatalogRepository) FindByBarcode(ctx context.Context, barcode string) (domain.CatalogEntry, error) {
	found, err := r.dao.FindByBarcode(ctx, barcode)
	if err != nil {
		return domain.CatalogEntry{}, fmt.Errorf("r.dao.FindByBarcode -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *CatalogRepository) daoToDomain(e dao.CatalogEntry) domain.CatalogEntry {
	return domain.CatalogEntry{
		ID:         e.ID,
		Barcode:    e.Barcode,
		Brand:      e.Brand,
		Color:      e.Color,
		Size:       e.Size,
		FourDigit:  e.FourDigit,
		Unit:       e.Unit,
		Quantity:   e.Quantity,
		Production: e.Production,
		Model:      e.Model,
		ModelCode:  e.ModelCode,
		Item:       e.Item,
	}
}
