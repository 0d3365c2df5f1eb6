package response

import (
	"time"

	"github.com/hskpro/warehouse-api/internal/domain"
)

type ScanResponse struct {
	ScanNo    int       `json:"scan_no"`
	Barcode   string    `json:"barcode"`
	Model     string    `json:"model"`
	Color     string    `json:"color"`
	Size      string    `json:"size"`
	Quantity  int       `json:"quantity"`
	ScannedAt time.Time `json:"scanned_at"`
	Username  string    `json:"username"`
}

func NewScanResponse(event domain.ScanEvent) ScanResponse {
	return ScanResponse{
		ScanNo:    event.ScanNo,
		Barcode:   event.Barcode,
		Model:     event.Model,
		Color:     event.Color,
		Size:      event.Size,
		Quantity:  event.Quantity,
		ScannedAt: event.ScannedAt,
		Username:  event.Username,
	}
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

type PagedScansResponse struct {
	Data       []domain.ScanEvent `json:"data"`
	Pagination Pagination         `json:"pagination"`
}

func NewPagedScansResponse(events []domain.ScanEvent, page, limit int, total int64) PagedScansResponse {
	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}

	return PagedScansResponse{
		Data: events,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}
}
