package create_booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PCB-BookingService/internal/domain"
	availabilityRepo "github.com/m04kA/PCB-BookingService/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/PCB-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/PCB-BookingService/internal/integrations/catalogservice"
	"github.com/m04kA/PCB-BookingService/pkg/ptr"
	"github.com/m04kA/PCB-BookingService/pkg/types"
)

// --- fakes ---

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type seqIDs struct {
	mu   sync.Mutex
	next int
}

func (g *seqIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("booking-%d", g.next)
}

// fakeAvailability is an in-memory availability index with the same
// semantics as the SQL repository: conditional insert on overlap,
// idempotent re-reserve, release by holder only.
type fakeAvailability struct {
	mu    sync.Mutex
	holds []*domain.SlotHold

	reserveCalls int
	releaseCalls int
	failRelease  bool
}

func (f *fakeAvailability) Reserve(_ context.Context, hold *domain.SlotHold) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reserveCalls++

	for _, h := range f.holds {
		if h.CourtID != hold.CourtID || !h.SlotDate.Equal(hold.SlotDate) {
			continue
		}
		if h.Overlaps(hold.StartTime, hold.EndTime) {
			if h.StartTime == hold.StartTime && h.BookingID == hold.BookingID {
				return nil
			}
			return availabilityRepo.ErrSlotTaken
		}
	}

	f.holds = append(f.holds, hold)
	return nil
}

func (f *fakeAvailability) Release(_ context.Context, courtID string, date time.Time, start types.TimeString, expectedBookingID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.releaseCalls++

	if f.failRelease {
		return errors.New("release failed")
	}

	for i, h := range f.holds {
		if h.CourtID == courtID && h.SlotDate.Equal(date) && h.StartTime == start {
			if h.BookingID != expectedBookingID {
				return availabilityRepo.ErrHolderMismatch
			}
			f.holds = append(f.holds[:i], f.holds[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeBookings struct {
	mu      sync.Mutex
	byID    map[string]*domain.Booking
	byKey   map[string]*domain.Booking
	failing bool
}

func newFakeBookings() *fakeBookings {
	return &fakeBookings{
		byID:  make(map[string]*domain.Booking),
		byKey: make(map[string]*domain.Booking),
	}
}

func (f *fakeBookings) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failing {
		return nil, errors.New("db is down")
	}

	if b.IdempotencyKey != nil {
		if _, exists := f.byKey[*b.IdempotencyKey]; exists {
			return nil, bookingRepo.ErrDuplicateIdempotencyKey
		}
	}

	stored := *b
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.byID[b.ID] = &stored
	if b.IdempotencyKey != nil {
		f.byKey[*b.IdempotencyKey] = &stored
	}
	return &stored, nil
}

func (f *fakeBookings) GetByIdempotencyKey(_ context.Context, key string) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if b, ok := f.byKey[key]; ok {
		return b, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeBookings) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byID, id)
	return nil
}

type fakeConfigRepo struct {
	config *domain.CenterSlotsConfig
}

func (f *fakeConfigRepo) GetConfigWithHierarchy(context.Context, string, *string) (*domain.CenterSlotsConfig, error) {
	return f.config, nil
}

type fakeCatalog struct {
	court  *catalogservice.Court
	center *catalogservice.Center
}

func (f *fakeCatalog) GetCourt(context.Context, string) (*catalogservice.Court, error) {
	if f.court == nil {
		return nil, catalogservice.ErrCourtNotFound
	}
	return f.court, nil
}

func (f *fakeCatalog) GetCenter(context.Context, string) (*catalogservice.Center, error) {
	if f.center == nil {
		return nil, catalogservice.ErrCenterNotFound
	}
	return f.center, nil
}

// --- fixture ---

type fixture struct {
	uc           *UseCase
	bookings     *fakeBookings
	availability *fakeAvailability
}

func allWeekSchedule(open, close string) catalogservice.WeekSchedule {
	day := catalogservice.DaySchedule{IsOpen: true, OpenTime: ptr.Ptr(open), CloseTime: ptr.Ptr(close)}
	return catalogservice.WeekSchedule{
		Monday: day, Tuesday: day, Wednesday: day, Thursday: day,
		Friday: day, Saturday: day, Sunday: day,
	}
}

func newFixture() *fixture {
	bookings := newFakeBookings()
	availability := &fakeAvailability{}

	uc := NewUseCase(
		bookings,
		availability,
		&fakeConfigRepo{config: domain.DefaultSlotsConfig()},
		&fakeCatalog{
			court: &catalogservice.Court{
				ID:           "court-1",
				CenterID:     "center-1",
				PricePerHour: 40.0,
				IsActive:     true,
			},
			center: &catalogservice.Center{
				ID:            "center-1",
				ManagerUserID: "manager-1",
				OpeningHours:  allWeekSchedule("08:00", "22:00"),
			},
		},
		noopLogger{},
	)
	uc.timeProvider = &fixedTime{now: time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)}
	uc.idGenerator = &seqIDs{}

	return &fixture{uc: uc, bookings: bookings, availability: availability}
}

func validRequest() *Request {
	return &Request{
		UserID:      "user-1",
		CourtID:     "court-1",
		Date:        time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		StartTime:   types.TimeString("09:00"),
		EndTime:     types.TimeString("10:30"),
		PlayerCount: 4,
	}
}

// --- tests ---

func TestCreateBooking_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, "center-1", resp.CenterID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, string(domain.PaymentPending), resp.PaymentStatus)

	// Server-side price: 40/hour for 90 minutes
	assert.Equal(t, 60.0, resp.TotalPrice)
	assert.Equal(t, 40.0, resp.BasePricePerHour)

	// The slot is held by the new booking
	require.Len(t, f.availability.holds, 1)
	assert.Equal(t, resp.ID, f.availability.holds[0].BookingID)
}

func TestCreateBooking_ServerPriceAuthoritative(t *testing.T) {
	f := newFixture()

	// Client saw a stale price; the server calculation wins
	req := validRequest()
	req.RequestedPrice = ptr.Ptr(45.0)

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 60.0, resp.TotalPrice)
}

func TestCreateBooking_SlotTaken(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Same slot for another user
	req := validRequest()
	req.UserID = "user-2"
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestCreateBooking_OverlappingSlotTaken(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// 09:30-11:00 overlaps the existing 09:00-10:30 hold
	req := validRequest()
	req.UserID = "user-2"
	req.StartTime = types.TimeString("09:30")
	req.EndTime = types.TimeString("11:00")
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestCreateBooking_AdjacentSlotAllowed(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// 10:30-12:00 touches the 09:00-10:30 hold but does not overlap
	req := validRequest()
	req.UserID = "user-2"
	req.StartTime = types.TimeString("10:30")
	req.EndTime = types.TimeString("12:00")
	_, err = f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, f.availability.holds, 2)
}

func TestCreateBooking_ReleasesHoldOnPersistFailure(t *testing.T) {
	f := newFixture()
	f.bookings.failing = true

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)

	// The hold was compensated, the slot is free again
	assert.Empty(t, f.availability.holds)
	assert.Equal(t, 1, f.availability.releaseCalls)

	// Retry after recovery succeeds
	f.bookings.failing = false
	_, err = f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
}

func TestCreateBooking_IdempotentReplay(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.IdempotencyKey = ptr.Ptr("key-123")

	first, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Same request again returns the same booking, no new hold
	second, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, f.availability.holds, 1)
}

func TestCreateBooking_ConcurrentRequests_ExactlyOneWinner(t *testing.T) {
	f := newFixture()

	const workers = 10
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			req := validRequest()
			req.UserID = fmt.Sprintf("user-%d", n)
			_, errs[n] = f.uc.Execute(context.Background(), req)
		}(i)
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, ErrSlotNotAvailable):
			lost++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, won)
	assert.Equal(t, workers-1, lost)
	assert.Len(t, f.availability.holds, 1)
}

func TestCreateBooking_Validation(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"missing user", func(r *Request) { r.UserID = "" }, ErrInvalidInput},
		{"missing court", func(r *Request) { r.CourtID = "" }, ErrInvalidInput},
		{"start after end", func(r *Request) {
			r.StartTime = types.TimeString("11:00")
			r.EndTime = types.TimeString("09:00")
		}, ErrInvalidInput},
		{"zero players", func(r *Request) { r.PlayerCount = 0 }, ErrInvalidInput},
		{"too many players", func(r *Request) { r.PlayerCount = 5 }, ErrTooManyPlayers},
		{"date in past", func(r *Request) {
			r.Date = time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
		}, ErrInvalidDate},
		{"wrong duration", func(r *Request) {
			r.EndTime = types.TimeString("10:00")
		}, ErrInvalidTimeSlot},
		{"not aligned to grid", func(r *Request) {
			r.StartTime = types.TimeString("09:10")
			r.EndTime = types.TimeString("10:40")
		}, ErrInvalidTimeSlot},
		{"outside working hours", func(r *Request) {
			r.StartTime = types.TimeString("21:30")
			r.EndTime = types.TimeString("23:00")
		}, ErrInvalidTimeSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateBooking_SameDayNotice(t *testing.T) {
	f := newFixture()

	// Now is 10:00, notice is 60 minutes: a 10:30 slot today is too late
	req := validRequest()
	req.Date = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	req.StartTime = types.TimeString("10:30")
	req.EndTime = types.TimeString("12:00")

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTooLateToBook)

	// An 11:00 slot today is fine
	req.StartTime = types.TimeString("11:00")
	req.EndTime = types.TimeString("12:30")
	_, err = f.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestCreateBooking_InactiveCourt(t *testing.T) {
	f := newFixture()
	f.uc.catalog.(*fakeCatalog).court.IsActive = false

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCourtInactive)
}

func TestCreateBooking_CourtNotFound(t *testing.T) {
	f := newFixture()
	f.uc.catalog.(*fakeCatalog).court = nil

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCourtNotFound)
}
