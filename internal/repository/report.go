package repository

import (
	"context"
	"fmt"

	"github.com/hskpro/warehouse-api/internal/domain"
	"github.com/hskpro/warehouse-api/internal/repository/dao"
)

type ReportDAO interface {
	Daily(ctx context.Context) ([]dao.DailyReportRow, error)
	Monthly(ctx context.Context) ([]dao.MonthlyReportRow, error)
	Stats(ctx context.Context) (dao.DashboardStats, error)
	Chart(ctx context.Context) ([]dao.ChartPoint, error)
}

type ReportRepository struct {
	dao ReportDAO
}

func NewReportRepository(dao ReportDAO) *ReportRepository {
	return &ReportRepository{
		dao: dao,
	}
}

func (r *ReportRepository) Daily(ctx context.Context) ([]domain.DailyReport, error) {
	rows, err := r.dao.Daily(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.Daily -> %w", err)
	}

	reports := make([]domain.DailyReport, 0, len(rows))
	for _, row := range rows {
		reports = append(reports, domain.DailyReport{
			Date:           row.ScanDate,
			TotalScans:     row.TotalScans,
			ReceivingCount: row.ReceivingCount,
			ShippingCount:  row.ShippingCount,
		})
	}

	return reports, nil
}

func (r *ReportRepository) Monthly(ctx context.Context) ([]domain.MonthlyReport, error) {
	rows, err := r.dao.Monthly(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.Monthly -> %w", err)
	}

	reports := make([]domain.MonthlyReport, 0, len(rows))
	for _, row := range rows {
		reports = append(reports, domain.MonthlyReport{
			Year:           row.Year,
			Month:          row.Month,
			TotalScans:     row.TotalScans,
			ReceivingCount: row.ReceivingCount,
			ShippingCount:  row.ShippingCount,
		})
	}

	return reports, nil
}

func (r *ReportRepository) Stats(ctx context.Context) (domain.DashboardStats, error) {
	stats, err := r.dao.Stats(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("r.dao.Stats -> %w", err)
	}

	return domain.DashboardStats{
		WarehouseStock: stats.WarehouseStock,
		Receiving:      stats.Receiving,
		Shipping:       stats.Shipping,
	}, nil
}

func (r *ReportRepository) Chart(ctx context.Context) ([]domain.ChartPoint, error) {
	points, err := r.dao.Chart(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.Chart -> %w", err)
	}

	chart := make([]domain.ChartPoint, 0, len(points))
	for _, p := range points {
		chart = append(chart, domain.ChartPoint{
			Date:           p.ScanDate,
			ReceivingCount: p.ReceivingCount,
			ShippingCount:  p.ShippingCount,
		})
	}

	return chart, nil
}
