package domain

import "time"

type DailyReport struct {
	Date           time.Time `json:"date"`
	TotalScans     int       `json:"total_scans"`
	ReceivingCount int       `json:"receiving_count"`
	ShippingCount  int       `json:"shipping_count"`
}

type MonthlyReport struct {
	Year           int `json:"year"`
	Month          int `json:"month"`
	TotalScans     int `json:"total_scans"`
	ReceivingCount int `json:"receiving_count"`
	ShippingCount  int `json:"shipping_count"`
}

type DashboardStats struct {
	WarehouseStock int64 `json:"warehouse_stock"`
	Receiving      int64 `json:"receiving"`
	Shipping       int64 `json:"shipping"`
}

type ChartPoint struct {
	Date           time.Time `json:"date"`
	ReceivingCount int       `json:"receiving_count"`
	ShippingCount  int       `json:"shipping_count"`
}
