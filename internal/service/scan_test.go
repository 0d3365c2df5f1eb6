package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hskpro/warehouse-api/internal/domain"
	"github.com/hskpro/warehouse-api/internal/repository"
)

type fakeCatalog struct {
	entries map[string]domain.CatalogEntry
}

func (f *fakeCatalog) FindByBarcode(_ context.Context, barcode string) (domain.CatalogEntry, error) {
	entry, ok := f.entries[barcode]
	if !ok {
		return domain.CatalogEntry{}, repository.ErrCatalogEntryNotFound
	}

	return entry, nil
}

// fakeLedger hands out per-direction, per-day sequence numbers under a
// mutex, mirroring what the unique index enforces in Postgres. It can
// be told to fail the first N inserts with a sequence conflict.
type fakeLedger struct {
	mu            sync.Mutex
	rows          []domain.ScanEvent
	nextID        uint
	conflictsLeft int
	createErr     error
}

func (f *fakeLedger) Create(_ context.Context, event domain.ScanEvent) (domain.ScanEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return domain.ScanEvent{}, f.createErr
	}
	if f.conflictsLeft > 0 {
		f.conflictsLeft--
		return domain.ScanEvent{}, repository.ErrScanSequenceConflict
	}

	day := event.ScannedAt.Format("2006-01-02")
	seq := 0
	for _, row := range f.rows {
		if row.Direction == event.Direction && row.ScannedAt.Format("2006-01-02") == day && row.ScanNo > seq {
			seq = row.ScanNo
		}
	}

	f.nextID++
	event.ID = f.nextID
	event.ScanNo = seq + 1
	f.rows = append(f.rows, event)

	return event, nil
}

func (f *fakeLedger) FindRecentByUsername(_ context.Context, direction domain.Direction, username string, limit int) ([]domain.ScanEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []domain.ScanEvent
	for i := len(f.rows) - 1; i >= 0 && len(out) < limit; i-- {
		if f.rows[i].Direction == direction && f.rows[i].Username == username {
			out = append(out, f.rows[i])
		}
	}

	return out, nil
}

func (f *fakeLedger) FindByDay(_ context.Context, direction domain.Direction, day time.Time, offset, limit int) ([]domain.ScanEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []domain.ScanEvent
	for _, row := range f.rows {
		if row.Direction == direction && row.ScannedAt.Format("2006-01-02") == day.Format("2006-01-02") {
			matched = append(matched, row)
		}
	}
	if offset >= len(matched) {
		return nil, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}

	return matched[offset:end], nil
}

func (f *fakeLedger) CountByDay(_ context.Context, direction domain.Direction, day time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var n int64
	for _, row := range f.rows {
		if row.Direction == direction && row.ScannedAt.Format("2006-01-02") == day.Format("2006-01-02") {
			n++
		}
	}

	return n, nil
}

type fakeStocks struct {
	mu       sync.Mutex
	onHand   map[string]int
	applyErr error
}

func (f *fakeStocks) ApplyDelta(_ context.Context, barcode string, delta int) error {
	if f.applyErr != nil {
		return f.applyErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.onHand == nil {
		f.onHand = make(map[string]int)
	}
	next := f.onHand[barcode] + delta
	if next < 0 {
		next = 0
	}
	f.onHand[barcode] = next

	return nil
}

type fakeUsers struct {
	users   map[string]domain.User
	findErr error
}

func (f *fakeUsers) FindByUsername(_ context.Context, username string) (domain.User, error) {
	if f.findErr != nil {
		return domain.User{}, f.findErr
	}
	user, ok := f.users[username]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

type fakePublisher struct {
	mu      sync.Mutex
	updates []domain.ScanUpdate
}

func (f *fakePublisher) Publish(update domain.ScanUpdate) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.updates = append(f.updates, update)
}

type scanFixture struct {
	svc       *ScanService
	ledger    *fakeLedger
	stocks    *fakeStocks
	publisher *fakePublisher
}

func newScanFixture(t *testing.T) *scanFixture {
	t.Helper()

	catalog := &fakeCatalog{entries: map[string]domain.CatalogEntry{
		"ABC123": {
			Barcode:  "ABC123",
			Brand:    "ACME",
			Color:    "BLACK",
			Size:     "42",
			Unit:     "PCS",
			Quantity: 4,
			Model:    "RUNNER",
			Item:     "SHOE",
		},
	}}
	ledger := &fakeLedger{}
	stocks := &fakeStocks{}
	users := &fakeUsers{users: map[string]domain.User{
		"scanner1": {Username: "scanner1", Description: "dock A"},
	}}
	publisher := &fakePublisher{}

	svc := NewScanService(NewScanGate(mustWindow(t, "07:30:00", 6)), catalog, ledger, stocks, users, publisher, 3)
	svc.now = func() time.Time { return at(10, 0, 0) }

	return &scanFixture{svc: svc, ledger: ledger, stocks: stocks, publisher: publisher}
}

func receiver() domain.Actor {
	return domain.Actor{UserID: 1, Username: "scanner1", Position: "RECEIVING"}
}

func TestSubmitScan_RecordsLedgerRow(t *testing.T) {
	fx := newScanFixture(t)

	event, err := fx.svc.SubmitScan(context.Background(), domain.DirectionReceiving, " ABC123 ", receiver())
	require.NoError(t, err)

	assert.Equal(t, 1, event.ScanNo)
	assert.Equal(t, "ABC123", event.Barcode)
	assert.Equal(t, "RUNNER", event.Model)
	assert.Equal(t, "BLACK", event.Color)
	assert.Equal(t, 4, event.Quantity)
	assert.Equal(t, "scanner1", event.Username)
	assert.Equal(t, "dock A", event.Description)
	require.Len(t, fx.ledger.rows, 1)
}

func TestSubmitScan_SequencesPerDirection(t *testing.T) {
	fx := newScanFixture(t)
	ctx := context.Background()

	first, err := fx.svc.SubmitScan(ctx, domain.DirectionReceiving, "ABC123", receiver())
	require.NoError(t, err)
	second, err := fx.svc.SubmitScan(ctx, domain.DirectionReceiving, "ABC123", receiver())
	require.NoError(t, err)

	shipper := domain.Actor{UserID: 2, Username: "scanner2", Position: "SHIPPING"}
	outbound, err := fx.svc.SubmitScan(ctx, domain.DirectionShipping, "ABC123", shipper)
	require.NoError(t, err)

	assert.Equal(t, 1, first.ScanNo)
	assert.Equal(t, 2, second.ScanNo)
	// The outbound stream numbers independently.
	assert.Equal(t, 1, outbound.ScanNo)
}

func TestSubmitScan_MaintenanceWindowBlocks(t *testing.T) {
	fx := newScanFixture(t)
	fx.svc.now = func() time.Time { return at(7, 30, 6) }

	_, err := fx.svc.SubmitScan(context.Background(), domain.DirectionReceiving, "ABC123", receiver())

	assert.ErrorIs(t, err, ErrMaintenanceWindow)
	assert.Empty(t, fx.ledger.rows)
	assert.Empty(t, fx.publisher.updates)
}

func TestSubmitScan_PositionRejected(t *testing.T) {
	fx := newScanFixture(t)

	actor := domain.Actor{UserID: 3, Username: "manager", Position: "MANAGEMENT"}
	_, err := fx.svc.SubmitScan(context.Background(), domain.DirectionReceiving, "ABC123", actor)

	assert.ErrorIs(t, err, ErrInvalidPosition)
	assert.Empty(t, fx.ledger.rows)
}

func TestSubmitScan_EmptyBarcode(t *testing.T) {
	fx := newScanFixture(t)

	_, err := fx.svc.SubmitScan(context.Background(), domain.DirectionReceiving, "  ", receiver())

	assert.ErrorIs(t, err, ErrBarcodeRequired)
	assert.Empty(t, fx.ledger.rows)
}

func TestSubmitScan_UnknownBarcode(t *testing.T) {
	fx := newScanFixture(t)

	_, err := fx.svc.SubmitScan(context.Background(), domain.DirectionReceiving, "NOPE", receiver())

	assert.ErrorIs(t, err, ErrBarcodeNotFound)
	assert.Empty(t, fx.ledger.rows)
	assert.Empty(t, fx.publisher.updates)
}

func TestSubmitScan_RetriesSequenceConflict(t *testing.T) {
	fx := newScanFixture(t)
	fx.ledger.conflictsLeft = 2

	event, err := fx.svc.SubmitScan(context.Background(), domain.DirectionReceiving, "ABC123", receiver())

	require.NoError(t, err)
	assert.Equal(t, 1, event.ScanNo)
	assert.Len(t, fx.ledger.rows, 1)
}

func TestSubmitScan_RetriesExhausted(t *testing.T) {
	fx := newScanFixture(t)
	fx.ledger.conflictsLeft = 10

	_, err := fx.svc.SubmitScan(context.Background(), domain.DirectionReceiving, "ABC123", receiver())

	assert.ErrorIs(t, err, ErrScanFailed)
	assert.Empty(t, fx.ledger.rows)
	assert.Empty(t, fx.publisher.updates)
}

func TestSubmitScan_NonConflictInsertErrorNotRetried(t *testing.T) {
	fx := newScanFixture(t)
	fx.ledger.createErr = errors.New("connection reset")

	_, err := fx.svc.SubmitScan(context.Background(), domain.DirectionReceiving, "ABC123", receiver())

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrScanFailed)
}

func TestSubmitScan_StockFailureDoesNotFailScan(t *testing.T) {
	fx := newScanFixture(t)
	fx.stocks.applyErr = errors.New("deadlock detected")

	event, err := fx.svc.SubmitScan(context.Background(), domain.DirectionReceiving, "ABC123", receiver())

	require.NoError(t, err)
	assert.Equal(t, 1, event.ScanNo)
	assert.Len(t, fx.publisher.updates, 1)
}

func TestSubmitScan_StockDeltaByDirection(t *testing.T) {
	fx := newScanFixture(t)
	ctx := context.Background()

	_, err := fx.svc.SubmitScan(ctx, domain.DirectionReceiving, "ABC123", receiver())
	require.NoError(t, err)
	assert.Equal(t, 4, fx.stocks.onHand["ABC123"])

	shipper := domain.Actor{UserID: 2, Username: "scanner2", Position: "SHIPPING"}
	_, err = fx.svc.SubmitScan(ctx, domain.DirectionShipping, "ABC123", shipper)
	require.NoError(t, err)
	assert.Equal(t, 0, fx.stocks.onHand["ABC123"])
}

func TestSubmitScan_PublishesUpdate(t *testing.T) {
	fx := newScanFixture(t)

	event, err := fx.svc.SubmitScan(context.Background(), domain.DirectionReceiving, "ABC123", receiver())
	require.NoError(t, err)

	require.Len(t, fx.publisher.updates, 1)
	update := fx.publisher.updates[0]
	assert.Equal(t, domain.DirectionReceiving, update.Type)
	assert.Equal(t, event.Barcode, update.Barcode)
	assert.Equal(t, event.ScanNo, update.ScanNo)
	assert.Equal(t, event.Username, update.Username)
}

func TestSubmitScan_DescriptionLookupFailureIsBestEffort(t *testing.T) {
	fx := newScanFixture(t)
	fx.svc.users = &fakeUsers{findErr: errors.New("timeout")}

	event, err := fx.svc.SubmitScan(context.Background(), domain.DirectionReceiving, "ABC123", receiver())

	require.NoError(t, err)
	assert.Empty(t, event.Description)
}

func TestSubmitScan_ConcurrentScansGetDistinctNumbers(t *testing.T) {
	fx := newScanFixture(t)
	ctx := context.Background()

	const workers = 20
	numbers := make(chan int, workers)
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			event, err := fx.svc.SubmitScan(ctx, domain.DirectionReceiving, "ABC123", receiver())
			if err != nil {
				errs <- err
				return
			}
			numbers <- event.ScanNo
		}()
	}
	wg.Wait()
	close(numbers)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	seen := make(map[int]bool)
	for n := range numbers {
		assert.False(t, seen[n], fmt.Sprintf("scan number %d handed out twice", n))
		seen[n] = true
	}
	assert.Len(t, seen, workers)
}

func TestHistory_ReturnsNewestFirst(t *testing.T) {
	fx := newScanFixture(t)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		_, err := fx.svc.SubmitScan(ctx, domain.DirectionReceiving, "ABC123", receiver())
		require.NoError(t, err)
	}

	events, err := fx.svc.History(ctx, domain.DirectionReceiving, "scanner1")
	require.NoError(t, err)

	require.Len(t, events, 10)
	assert.Equal(t, 12, events[0].ScanNo)
	assert.Equal(t, 3, events[9].ScanNo)
}

func TestToday_Paginates(t *testing.T) {
	fx := newScanFixture(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := fx.svc.SubmitScan(ctx, domain.DirectionReceiving, "ABC123", receiver())
		require.NoError(t, err)
	}

	events, total, err := fx.svc.Today(ctx, domain.DirectionReceiving, 2, 2)
	require.NoError(t, err)

	assert.Equal(t, int64(5), total)
	require.Len(t, events, 2)
	assert.Equal(t, 3, events[0].ScanNo)
	assert.Equal(t, 4, events[1].ScanNo)
}
