package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// ScanRequest deliberately does not require the barcode here: the gate
// orders its checks (maintenance, role, then barcode) and owns the
// empty-barcode rejection code.
type ScanRequest struct {
	Barcode string `json:"barcode"`
}

func (req *ScanRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Barcode, validation.Length(0, 100)),
	)
}
