package service

import (
	"context"
	"fmt"

	"github.com/hskpro/warehouse-api/internal/domain"
)

type ReportRepository interface {
	Daily(ctx context.Context) ([]domain.DailyReport, error)
	Monthly(ctx context.Context) ([]domain.MonthlyReport, error)
	Stats(ctx context.Context) (domain.DashboardStats, error)
	Chart(ctx context.Context) ([]domain.ChartPoint, error)
}

type ReportService struct {
	repo ReportRepository
}

func NewReportService(repo ReportRepository) *ReportService {
	return &ReportService{
		repo: repo,
	}
}

func (s *ReportService) Daily(ctx context.Context) ([]domain.DailyReport, error) {
	reports, err := s.repo.Daily(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Daily -> %w", err)
	}

	return reports, nil
}

func (s *ReportService) Monthly(ctx context.Context) ([]domain.MonthlyReport, error) {
	reports, err := s.repo.Monthly(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Monthly -> %w", err)
	}

	return reports, nil
}

func (s *ReportService) Stats(ctx context.Context) (domain.DashboardStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("s.repo.Stats -> %w", err)
	}

	return stats, nil
}

func (s *ReportService) Chart(ctx context.Context) ([]domain.ChartPoint, error) {
	points, err := s.repo.Chart(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Chart -> %w", err)
	}

	return points, nil
}
