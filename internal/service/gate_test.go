package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hskpro/warehouse-api/internal/domain"
)

func mustWindow(t *testing.T, start string, seconds int) MaintenanceWindow {
	t.Helper()

	window, err := NewMaintenanceWindow(start, seconds)
	require.NoError(t, err)

	return window
}

func at(hour, minute, second int) time.Time {
	return time.Date(2026, 8, 30, hour, minute, second, 0, time.Local)
}

func TestNewMaintenanceWindow_RejectsBadFormat(t *testing.T) {
	_, err := NewMaintenanceWindow("7h30", 6)
	assert.Error(t, err)
}

func TestMaintenanceWindow_Contains(t *testing.T) {
	window := mustWindow(t, "07:30:00", 6)

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"one second before start", at(7, 29, 59), false},
		{"exactly at start", at(7, 30, 0), true},
		{"inside", at(7, 30, 3), true},
		{"exactly at end", at(7, 30, 6), true},
		{"one second after end", at(7, 30, 7), false},
		{"same time next half day", at(19, 30, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, window.Contains(tt.now))
		})
	}
}

func TestScanGate_Admit_RoleMatrix(t *testing.T) {
	gate := NewScanGate(mustWindow(t, "07:30:00", 6))
	now := at(10, 0, 0)

	tests := []struct {
		name      string
		direction domain.Direction
		position  string
		wantErr   error
	}{
		{"receiving role on receiving", domain.DirectionReceiving, "RECEIVING", nil},
		{"it role on receiving", domain.DirectionReceiving, "IT", nil},
		{"shipping role on receiving", domain.DirectionReceiving, "SHIPPING", ErrInvalidPosition},
		{"shipping role on shipping", domain.DirectionShipping, "SHIPPING", nil},
		{"it role on shipping", domain.DirectionShipping, "IT", nil},
		{"receiving role on shipping", domain.DirectionShipping, "RECEIVING", ErrInvalidPosition},
		{"management on receiving", domain.DirectionReceiving, "MANAGEMENT", ErrInvalidPosition},
		{"unknown role", domain.DirectionShipping, "INTERN", ErrInvalidPosition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := gate.Admit(now, tt.direction, tt.position, "ABC123")
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestScanGate_Admit_EmptyBarcode(t *testing.T) {
	gate := NewScanGate(mustWindow(t, "07:30:00", 6))

	err := gate.Admit(at(10, 0, 0), domain.DirectionReceiving, "RECEIVING", "   ")
	assert.ErrorIs(t, err, ErrBarcodeRequired)
}

// The window outranks every other check: even an unauthorized caller
// with an empty barcode gets the maintenance answer.
func TestScanGate_Admit_WindowWinsOverEverything(t *testing.T) {
	gate := NewScanGate(mustWindow(t, "07:30:00", 6))
	inside := at(7, 30, 2)

	err := gate.Admit(inside, domain.DirectionReceiving, "SHIPPING", "")
	assert.ErrorIs(t, err, ErrMaintenanceWindow)

	err = gate.Admit(inside, domain.DirectionShipping, "IT", "ABC123")
	assert.ErrorIs(t, err, ErrMaintenanceWindow)
}

func TestScanGate_Admit_RoleCheckedBeforeBarcode(t *testing.T) {
	gate := NewScanGate(mustWindow(t, "07:30:00", 6))

	err := gate.Admit(at(10, 0, 0), domain.DirectionShipping, "RECEIVING", "")
	assert.ErrorIs(t, err, ErrInvalidPosition)
}
