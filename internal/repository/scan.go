package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hskpro/warehouse-api/internal/domain"
	"github.com/hskpro/warehouse-api/internal/repository/dao"
)

var ErrScanSequenceConflict = dao.ErrScanSequenceConflict

type ScanDAO interface {
	InsertNext(ctx context.Context, scan dao.Scan) (dao.Scan, error)
	FindRecentByUsername(ctx context.Context, direction, username string, limit int) ([]dao.Scan, error)
	FindByDay(ctx context.Context, direction string, day time.Time, offset, limit int) ([]dao.Scan, error)
	CountByDay(ctx context.Context, direction string, day time.Time) (int64, error)
}

type ScanRepository struct {
	dao ScanDAO
}

func NewScanRepository(dao ScanDAO) *ScanRepository {
	return &ScanRepository{
		dao: dao,
	}
}

// Create allocates the next per-(direction, day) sequence number and
// persists the event in one atomic operation. ErrScanSequenceConflict
// comes back unwrapped so callers can retry on it.
func (r *ScanRepository) Create(ctx context.Context, event domain.ScanEvent) (domain.ScanEvent, error) {
	created, err := r.dao.InsertNext(ctx, r.domainToDAO(event))
	if err != nil {
		if errors.Is(err, dao.ErrScanSequenceConflict) {
			return domain.ScanEvent{}, ErrScanSequenceConflict
		}

		return domain.ScanEvent{}, fmt.Errorf("r.dao.InsertNext -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ScanRepository) FindRecentByUsername(ctx context.Context, direction domain.Direction, username string, limit int) ([]domain.ScanEvent, error) {
	found, err := r.dao.FindRecentByUsername(ctx, string(direction), username, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindRecentByUsername -> %w", err)
	}

	return r.daoToDomainSlice(found), nil
}

func (r *ScanRepository) FindByDay(ctx context.Context, direction domain.Direction, day time.Time, offset, limit int) ([]domain.ScanEvent, error) {
	found, err := r.dao.FindByDay(ctx, string(direction), day, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByDay -> %w", err)
	}

	return r.daoToDomainSlice(found), nil
}

func (r *ScanRepository) CountByDay(ctx context.Context, direction domain.Direction, day time.Time) (int64, error) {
	count, err := r.dao.CountByDay(ctx, string(direction), day)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountByDay -> %w", err)
	}

	return count, nil
}

func (r *ScanRepository) domainToDAO(e domain.ScanEvent) dao.Scan {
	return dao.Scan{
		Direction:   string(e.Direction),
		Barcode:     e.Barcode,
		Brand:       e.Brand,
		Color:       e.Color,
		Size:        e.Size,
		FourDigit:   e.FourDigit,
		Unit:        e.Unit,
		Quantity:    e.Quantity,
		Production:  e.Production,
		Model:       e.Model,
		ModelCode:   e.ModelCode,
		Item:        e.Item,
		Username:    e.Username,
		Description: e.Description,
		ScannedAt:   e.ScannedAt,
	}
}

func (r *ScanRepository) daoToDomain(s dao.Scan) domain.ScanEvent {
	return domain.ScanEvent{
		ID:          s.ID,
		Direction:   domain.Direction(s.Direction),
		Barcode:     s.Barcode,
		Brand:       s.Brand,
		Color:       s.Color,
		Size:        s.Size,
		FourDigit:   s.FourDigit,
		Unit:        s.Unit,
		Quantity:    s.Quantity,
		Production:  s.Production,
		Model:       s.Model,
		ModelCode:   s.ModelCode,
		Item:        s.Item,
		ScanNo:      s.ScanNo,
		Username:    s.Username,
		Description: s.Description,
		ScannedAt:   s.ScannedAt,
	}
}

func (r *ScanRepository) daoToDomainSlice(scans []dao.Scan) []domain.ScanEvent {
	events := make([]domain.ScanEvent, 0, len(scans))
	for _, s := range scans {
		events = append(events, r.daoToDomain(s))
	}

	return events
}
