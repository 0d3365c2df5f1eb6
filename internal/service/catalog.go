package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hskpro/warehouse-api/internal/domain"
	"github.com/hskpro/warehouse-api/internal/repository"
)

type CatalogRepository interface {
	FindByBarcode(ctx context.Context, barcode string) (domain.CatalogEntry, error)
}

type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// Resolve is an exact-match lookup; the only normalization is trimming.
func (s *CatalogService) Resolve(ctx context.Context, barcode string) (domain.CatalogEntry, error) {
	entry, err := s.repo.FindByBarcode(ctx, strings.TrimSpace(barcode))
	if err != nil {
		if errors.Is(err, repository.ErrCatalogEntryNotFound) {
			return domain.CatalogEntry{}, ErrBarcodeNotFound
		}

		return domain.CatalogEntry{}, fmt.Errorf("s.repo.FindByBarcode -> %w", err)
	}

	return entry, nil
}
