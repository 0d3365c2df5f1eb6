package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type DailyReportRow struct {
	ScanDate       time.Time
	TotalScans     int
	ReceivingCount int
	ShippingCount  int
}

type MonthlyReportRow struct {
	Year           int
	Month          int
	TotalScans     int
	ReceivingCount int
	ShippingCount  int
}

type DashboardStats struct {
	WarehouseStock int64
	Receiving      int64
	Shipping       int64
}

type ChartPoint struct {
	ScanDate       time.Time
	ReceivingCount int
	ShippingCount  int
}

type ReportDAO struct {
	db *gorm.DB
}

func NewReportDAO(db *gorm.DB) *ReportDAO {
	return &ReportDAO{
		db: db,
	}
}

const dailyReportSQL = `
SELECT scan_date,
       COUNT(*) AS total_scans,
       COUNT(*) FILTER (WHERE direction = 'RECEIVING') AS receiving_count,
       COUNT(*) FILTER (WHERE direction = 'SHIPPING') AS shipping_count
FROM scans
WHERE scan_date = CURRENT_DATE
GROUP BY scan_date`

func (d *ReportDAO) Daily(ctx context.Context) ([]DailyReportRow, error) {
	var rows []DailyReportRow

	result := d.db.WithContext(ctx).Raw(dailyReportSQL).Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

const monthlyReportSQL = `
SELECT EXTRACT(YEAR FROM scan_date)::int AS year,
       EXTRACT(MONTH FROM scan_date)::int AS month,
       COUNT(*) AS total_scans,
       COUNT(*) FILTER (WHERE direction = 'RECEIVING') AS receiving_count,
       COUNT(*) FILTER (WHERE direction = 'SHIPPING') AS shipping_count
FROM scans
GROUP BY year, month
ORDER BY year DESC, month DESC`

func (d *ReportDAO) Monthly(ctx context.Context) ([]MonthlyReportRow, error) {
	var rows []MonthlyReportRow

	result := d.db.WithContext(ctx).Raw(monthlyReportSQL).Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

const dashboardStatsSQL = `
SELECT COALESCE((SELECT SUM(on_hand) FROM stock_summaries), 0) AS warehouse_stock,
       (SELECT COUNT(*) FROM scans WHERE direction = 'RECEIVING' AND scan_date = CURRENT_DATE) AS receiving,
       (SELECT COUNT(*) FROM scans WHERE direction = 'SHIPPING' AND scan_date = CURRENT_DATE) AS shipping`

func (d *ReportDAO) Stats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats

	result := d.db.WithContext(ctx).Raw(dashboardStatsSQL).Scan(&stats)
	if result.Error != nil {
		return DashboardStats{}, result.Error
	}

	return stats, nil
}

const chartSQL = `
SELECT gs.day::date AS scan_date,
       COUNT(s.id) FILTER (WHERE s.direction = 'RECEIVING') AS receiving_count,
       COUNT(s.id) FILTER (WHERE s.direction = 'SHIPPING') AS shipping_count
FROM generate_series(CURRENT_DATE - INTERVAL '6 days', CURRENT_DATE, INTERVAL '1 day') AS gs(day)
LEFT JOIN scans s ON s.scan_date = gs.day::date
GROUP BY gs.day
ORDER BY gs.day ASC`

func (d *ReportDAO) Chart(ctx context.Context) ([]ChartPoint, error) {
	var points []ChartPoint

	result := d.db.WithContext(ctx).Raw(chartSQL).Scan(&points)
	if result.Error != nil {
		return nil, result.Error
	}

	return points, nil
}
