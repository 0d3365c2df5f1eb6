package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrScanSequenceConflict means another writer took the scan_no this
// insert computed. Callers retry the whole allocation+insert.
var ErrScanSequenceConflict = errors.New("scan sequence conflict")

type Scan struct {
	ID uint `gorm:"primaryKey"`

	Direction string    `gorm:"not null;uniqueIndex:uq_scans_direction_day_seq,priority:1"`
	ScanDate  time.Time `gorm:"type:date;not null;uniqueIndex:uq_scans_direction_day_seq,priority:2"`
	ScanNo    int       `gorm:"not null;uniqueIndex:uq_scans_direction_day_seq,priority:3"`

	Barcode    string `gorm:"not null;index"`
	Brand      string
	Color      string
	Size       string
	FourDigit  string
	Unit       string
	Quantity   int `gorm:"not null"`
	Production string
	Model      string
	ModelCode  string
	Item       string

	Username    string `gorm:"not null;index"`
	Description string
	ScannedAt   time.Time `gorm:"not null"`
}

type ScanDAO struct {
	db *gorm.DB
}

func NewScanDAO(db *gorm.DB) *ScanDAO {
	return &ScanDAO{
		db: db,
	}
}

// Sequence allocation must be atomic with the insert: a separate
// max-then-insert races under concurrent scanners. The single statement
// below computes max+1 and inserts in one go; two statements that still
// read the same max trip the unique index, which surfaces as
// ErrScanSequenceConflict for the caller to retry.
const insertNextScanSQL = `
INSERT INTO scans
	(direction, scan_date, scan_no, barcode, brand, color, size, four_digit, unit,
	 quantity, production, model, model_code, item, username, description, scanned_at)
SELECT ?, ?::date, COALESCE(MAX(scan_no), 0) + 1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?
FROM scans
WHERE direction = ? AND scan_date = ?::date
RETURNING id, scan_no`

func (d *ScanDAO) InsertNext(ctx context.Context, scan Scan) (Scan, error) {
	day := scan.ScannedAt.Format("2006-01-02")

	var allocated struct {
		ID     uint
		ScanNo int
	}

	result := d.db.WithContext(ctx).Raw(insertNextScanSQL,
		scan.Direction, day,
		scan.Barcode, scan.Brand, scan.Color, scan.Size, scan.FourDigit, scan.Unit,
		scan.Quantity, scan.Production, scan.Model, scan.ModelCode, scan.Item,
		scan.Username, scan.Description, scan.ScannedAt,
		scan.Direction, day,
	).Scan(&allocated)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, "uq_scans_direction_day_seq") {
			return Scan{}, ErrScanSequenceConflict
		}

		return Scan{}, result.Error
	}

	scan.ID = allocated.ID
	scan.ScanNo = allocated.ScanNo
	scan.ScanDate, _ = time.ParseInLocation("2006-01-02", day, scan.ScannedAt.Location())

	return scan, nil
}

// FindRecentByUsername returns the caller's latest scans for one
// direction, newest first.
func (d *ScanDAO) FindRecentByUsername(ctx context.Context, direction, username string, limit int) ([]Scan, error) {
	var scans []Scan

	result := d.db.WithContext(ctx).
		Where("direction = ? AND username = ?", direction, username).
		Order("scanned_at DESC").
		Limit(limit).
		Find(&scans)
	if result.Error != nil {
		return nil, result.Error
	}

	return scans, nil
}

func (d *ScanDAO) FindByDay(ctx context.Context, direction string, day time.Time, offset, limit int) ([]Scan, error) {
	var scans []Scan

	result := d.db.WithContext(ctx).
		Where("direction = ? AND scan_date = ?::date", direction, day.Format("2006-01-02")).
		Order("scanned_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&scans)
	if result.Error != nil {
		return nil, result.Error
	}

	return scans, nil
}

func (d *ScanDAO) CountByDay(ctx context.Context, direction string, day time.Time) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Scan{}).
		Where("direction = ? AND scan_date = ?::date", direction, day.Format("2006-01-02")).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
