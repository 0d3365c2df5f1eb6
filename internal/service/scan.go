package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hskpro/warehouse-api/internal/domain"
	"github.com/hskpro/warehouse-api/internal/repository"
)

var (
	ErrBarcodeNotFound      = repository.ErrCatalogEntryNotFound
	ErrScanSequenceConflict = repository.ErrScanSequenceConflict

	// ErrScanFailed means allocation kept colliding past the retry cap.
	ErrScanFailed = errors.New("scan failed after retries")
)

const historyLimit = 10

type ScanCatalogRepository interface {
	FindByBarcode(ctx context.Context, barcode string) (domain.CatalogEntry, error)
}

type ScanLedgerRepository interface {
	Create(ctx context.Context, event domain.ScanEvent) (domain.ScanEvent, error)
	FindRecentByUsername(ctx context.Context, direction domain.Direction, username string, limit int) ([]domain.ScanEvent, error)
	FindByDay(ctx context.Context, direction domain.Direction, day time.Time, offset, limit int) ([]domain.ScanEvent, error)
	CountByDay(ctx context.Context, direction domain.Direction, day time.Time) (int64, error)
}

type ScanStockRepository interface {
	ApplyDelta(ctx context.Context, barcode string, delta int) error
}

type ScanUserRepository interface {
	FindByUsername(ctx context.Context, username string) (domain.User, error)
}

// ScanPublisher pushes a completed scan to live dashboard subscribers.
// Delivery is fire-and-forget.
type ScanPublisher interface {
	Publish(update domain.ScanUpdate)
}

type ScanService struct {
	gate       *ScanGate
	catalog    ScanCatalogRepository
	scans      ScanLedgerRepository
	stocks     ScanStockRepository
	users      ScanUserRepository
	publisher  ScanPublisher
	maxRetries int
	now        func() time.Time
}

func NewScanService(
	gate *ScanGate,
	catalog ScanCatalogRepository,
	scans ScanLedgerRepository,
	stocks ScanStockRepository,
	users ScanUserRepository,
	publisher ScanPublisher,
	maxRetries int,
) *ScanService {
	return &ScanService{
		gate:       gate,
		catalog:    catalog,
		scans:      scans,
		stocks:     stocks,
		users:      users,
		publisher:  publisher,
		maxRetries: maxRetries,
		now:        time.Now,
	}
}

// SubmitScan runs the whole ingestion workflow: gate, catalog lookup,
// sequenced ledger insert with bounded retry, then the best-effort
// stock adjustment and dashboard broadcast. Once the ledger insert
// commits the scan has succeeded; nothing after it can fail the request.
func (s *ScanService) SubmitScan(ctx context.Context, direction domain.Direction, barcode string, actor domain.Actor) (domain.ScanEvent, error) {
	now := s.now()
	barcode = strings.TrimSpace(barcode)

	if err := s.gate.Admit(now, direction, actor.Position, barcode); err != nil {
		return domain.ScanEvent{}, err
	}

	entry, err := s.catalog.FindByBarcode(ctx, barcode)
	if err != nil {
		if errors.Is(err, repository.ErrCatalogEntryNotFound) {
			return domain.ScanEvent{}, ErrBarcodeNotFound
		}

		return domain.ScanEvent{}, fmt.Errorf("s.catalog.FindByBarcode -> %w", err)
	}

	event, err := s.recordWithRetry(ctx, domain.ScanEvent{
		Direction:   direction,
		Barcode:     entry.Barcode,
		Brand:       entry.Brand,
		Color:       entry.Color,
		Size:        entry.Size,
		FourDigit:   entry.FourDigit,
		Unit:        entry.Unit,
		Quantity:    entry.Quantity,
		Production:  entry.Production,
		Model:       entry.Model,
		ModelCode:   entry.ModelCode,
		Item:        entry.Item,
		Username:    actor.Username,
		Description: s.lookupDescription(ctx, actor.Username),
		ScannedAt:   now,
	})
	if err != nil {
		return domain.ScanEvent{}, err
	}

	delta := event.Quantity
	if direction == domain.DirectionShipping {
		delta = -event.Quantity
	}
	if err := s.stocks.ApplyDelta(ctx, event.Barcode, delta); err != nil {
		// The ledger row already committed; the summary is repaired by
		// reconciliation, never by rolling back history.
		zap.L().Error("stock adjustment failed, ledger row stands",
			zap.String("barcode", event.Barcode),
			zap.String("direction", string(direction)),
			zap.Error(err))
	}

	s.publisher.Publish(domain.ScanUpdate{
		Type:      direction,
		Barcode:   event.Barcode,
		Model:     event.Model,
		Color:     event.Color,
		Size:      event.Size,
		Quantity:  event.Quantity,
		Username:  event.Username,
		ScanNo:    event.ScanNo,
		Timestamp: event.ScannedAt,
	})

	return event, nil
}

func (s *ScanService) recordWithRetry(ctx context.Context, draft domain.ScanEvent) (domain.ScanEvent, error) {
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		event, err := s.scans.Create(ctx, draft)
		if err == nil {
			return event, nil
		}
		if errors.Is(err, repository.ErrScanSequenceConflict) {
			zap.L().Warn("scan sequence conflict, retrying",
				zap.String("direction", string(draft.Direction)),
				zap.Int("attempt", attempt+1))
			continue
		}

		return domain.ScanEvent{}, fmt.Errorf("s.scans.Create -> %w", err)
	}

	return domain.ScanEvent{}, ErrScanFailed
}

func (s *ScanService) lookupDescription(ctx context.Context, username string) string {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		zap.L().Warn("could not load user description for scan",
			zap.String("username", username),
			zap.Error(err))
		return ""
	}

	return user.Description
}

func (s *ScanService) History(ctx context.Context, direction domain.Direction, username string) ([]domain.ScanEvent, error) {
	events, err := s.scans.FindRecentByUsername(ctx, direction, username, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("s.scans.FindRecentByUsername -> %w", err)
	}

	return events, nil
}

func (s *ScanService) Today(ctx context.Context, direction domain.Direction, page, limit int) ([]domain.ScanEvent, int64, error) {
	day := s.now()

	total, err := s.scans.CountByDay(ctx, direction, day)
	if err != nil {
		return nil, 0, fmt.Errorf("s.scans.CountByDay -> %w", err)
	}

	events, err := s.scans.FindByDay(ctx, direction, day, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("s.scans.FindByDay -> %w", err)
	}

	return events, total, nil
}
