package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hskpro/warehouse-api/internal/domain"
	"github.com/hskpro/warehouse-api/internal/repository"
)

var ErrStockSummaryNotFound = repository.ErrStockSummaryNotFound

type StockRepository interface {
	FindByBarcode(ctx context.Context, barcode string) (domain.StockSummary, error)
}

type StockService struct {
	repo StockRepository
}

func NewStockService(repo StockRepository) *StockService {
	return &StockService{
		repo: repo,
	}
}

func (s *StockService) GetSummary(ctx context.Context, barcode string) (domain.StockSummary, error) {
	summary, err := s.repo.FindByBarcode(ctx, strings.TrimSpace(barcode))
	if err != nil {
		if errors.Is(err, repository.ErrStockSummaryNotFound) {
			return domain.StockSummary{}, ErrStockSummaryNotFound
		}

		return domain.StockSummary{}, fmt.Errorf("s.repo.FindByBarcode -> %w", err)
	}

	return summary, nil
}
