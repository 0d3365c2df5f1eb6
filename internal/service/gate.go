package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hskpro/warehouse-api/internal/domain"
)

var (
	ErrMaintenanceWindow = errors.New("scans are blocked during the maintenance window")
	ErrInvalidPosition   = errors.New("position is not allowed to scan this direction")
	ErrBarcodeRequired   = errors.New("barcode is required")
)

// directionRoles is the single role matrix for both endpoints. IT can
// scan either direction.
var directionRoles = map[domain.Direction][]string{
	domain.DirectionReceiving: {"RECEIVING", "IT"},
	domain.DirectionShipping:  {"SHIPPING", "IT"},
}

// MaintenanceWindow is a fixed daily interval, both ends inclusive,
// during which the upstream store runs its batch data migration and
// scans must not write.
type MaintenanceWindow struct {
	startSecond int
	endSecond   int
}

func NewMaintenanceWindow(start string, seconds int) (MaintenanceWindow, error) {
	t, err := time.Parse("15:04:05", start)
	if err != nil {
		return MaintenanceWindow{}, fmt.Errorf("time.Parse -> %w", err)
	}

	startSecond := t.Hour()*3600 + t.Minute()*60 + t.Second()

	return MaintenanceWindow{
		startSecond: startSecond,
		endSecond:   startSecond + seconds,
	}, nil
}

func (w MaintenanceWindow) Contains(t time.Time) bool {
	second := t.Hour()*3600 + t.Minute()*60 + t.Second()

	return second >= w.startSecond && second <= w.endSecond
}

// ScanGate decides whether a scan attempt may proceed. It is a pure
// check over the clock and the caller's identity; no side effects.
type ScanGate struct {
	window MaintenanceWindow
}

func NewScanGate(window MaintenanceWindow) *ScanGate {
	return &ScanGate{
		window: window,
	}
}

// Admit checks the maintenance window before anything else, then the
// role matrix, then the barcode. A scan inside the window is rejected
// no matter who sends it or what the barcode is.
func (g *ScanGate) Admit(now time.Time, direction domain.Direction, position, barcode string) error {
	if g.window.Contains(now) {
		return ErrMaintenanceWindow
	}

	allowed := false
	for _, role := range directionRoles[direction] {
		if position == role {
			allowed = true
			break
		}
	}
	if !allowed {
		return ErrInvalidPosition
	}

	if strings.TrimSpace(barcode) == "" {
		return ErrBarcodeRequired
	}

	return nil
}
