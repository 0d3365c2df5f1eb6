package domain

// CatalogEntry is the master record a barcode resolves to. The core
// only ever reads it; catalog maintenance is an administrative concern.
type CatalogEntry struct {
	ID         uint   `json:"id"`
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
}

// StockSummary is the rolling on-hand total per barcode. It is a
// best-effort convenience view; the scan ledger stays the system of
// record, and this table tolerates drift until reconciled.
type StockSummary struct {
	Barcode string `json:"barcode"`
	OnHand  int    `json:"on_hand"`
}
