package domain

import "time"

// Direction tells which sequence stream and role check apply to a scan.
type Direction string

const (
	DirectionReceiving Direction = "RECEIVING"
	DirectionShipping  Direction = "SHIPPING"
)

// ScanEvent is one row of the append-only movement ledger. Catalog
// attributes are copied in at scan time on purpose: historical reports
// must stay stable even if the catalog entry changes later.
type ScanEvent struct {
	ID        uint      `json:"id"`
	Direction Direction `json:"direction"`

	Barcode    string `json:"original_barcode"`
	Brand      string `json:"brand"`
	Color      string `json:"color"`
	Size       string `json:"size"`
	FourDigit  string `json:"four_digit"`
	Unit       string `json:"unit"`
	Quantity   int    `json:"quantity"`
	Production string `json:"production"`
	Model      string `json:"model"`
	ModelCode  string `json:"model_code"`
	Item       string `json:"item"`

	ScanNo      int       `json:"scan_no"`
	Username    string    `json:"username"`
	Description string    `json:"description"`
	ScannedAt   time.Time `json:"scanned_at"`
}

// ScanUpdate is the payload broadcast to live dashboard subscribers.
type ScanUpdate struct {
	Type      Direction `json:"type"`
	Barcode   string    `json:"barcode"`
	Model     string    `json:"model"`
	Color     string    `json:"color"`
	Size      string    `json:"size"`
	Quantity  int       `json:"quantity"`
	Username  string    `json:"username"`
	ScanNo    int       `json:"scan_no"`
	Timestamp time.Time `json:"timestamp"`
}
