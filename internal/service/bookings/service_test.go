package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PCB-BookingService/internal/domain"
	availabilityStore "github.com/m04kA/PCB-BookingService/internal/infra/storage/availability"
	bookingStore "github.com/m04kA/PCB-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/PCB-BookingService/internal/integrations/catalogservice"
	"github.com/m04kA/PCB-BookingService/internal/service/bookings/models"
	"github.com/m04kA/PCB-BookingService/pkg/types"
)

// --- fakes ---

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeBookingRepo struct {
	byID map[string]*domain.Booking
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{byID: make(map[string]*domain.Booking)}
	for _, b := range bookings {
		repo.byID[b.ID] = b
	}
	return repo
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	if b, ok := f.byID[id]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, bookingStore.ErrBookingNotFound
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, userID string, status *domain.BookingStatus, limit int) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.byID {
		if b.UserID != userID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		result = append(result, b)
	}
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (f *fakeBookingRepo) GetByCenterWithFilter(_ context.Context, filter domain.CenterBookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.byID {
		if b.CenterID != filter.CenterID {
			continue
		}
		if !filter.IncludeInactive && !b.IsActive() {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus, paymentStatus *domain.PaymentStatus, paymentRef *string) error {
	b, ok := f.byID[id]
	if !ok {
		return bookingStore.ErrBookingNotFound
	}
	b.Status = status
	if paymentStatus != nil {
		b.PaymentStatus = *paymentStatus
	}
	if paymentRef != nil {
		b.PaymentRef = paymentRef
	}
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id string, reason string, refund bool) error {
	b, ok := f.byID[id]
	if !ok {
		return bookingStore.ErrBookingNotFound
	}
	now := time.Now()
	b.Status = domain.StatusCancelled
	b.CancellationReason = &reason
	b.CancelledAt = &now
	if refund {
		b.PaymentStatus = domain.PaymentRefunded
	}
	return nil
}

type fakeAvailability struct {
	holders      map[string]string // "court|date|start" -> bookingID
	releaseCalls int
}

func newFakeAvailability() *fakeAvailability {
	return &fakeAvailability{holders: make(map[string]string)}
}

func holdKey(courtID string, date time.Time, start types.TimeString) string {
	return courtID + "|" + date.Format(domain.DateFormat) + "|" + start.String()
}

func (f *fakeAvailability) hold(courtID string, date time.Time, start types.TimeString, bookingID string) {
	f.holders[holdKey(courtID, date, start)] = bookingID
}

func (f *fakeAvailability) Release(_ context.Context, courtID string, date time.Time, start types.TimeString, expectedBookingID string) error {
	f.releaseCalls++
	key := holdKey(courtID, date, start)
	holder, ok := f.holders[key]
	if !ok {
		// Already free counts as success
		return nil
	}
	if holder != expectedBookingID {
		return availabilityStore.ErrHolderMismatch
	}
	delete(f.holders, key)
	return nil
}

type fakeCatalog struct {
	center *catalogservice.Center
}

func (f *fakeCatalog) GetCenter(context.Context, string) (*catalogservice.Center, error) {
	if f.center == nil {
		return nil, catalogservice.ErrCenterNotFound
	}
	return f.center, nil
}

// --- fixture ---

var testNow = time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

func testBooking(id string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		UserID:        "user-1",
		CourtID:       "court-1",
		CenterID:      "center-1",
		BookingDate:   time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		StartTime:     types.TimeString("09:00"),
		EndTime:       types.TimeString("10:30"),
		Status:        status,
		PaymentStatus: domain.PaymentPending,
	}
}

func newService(repo *fakeBookingRepo, availability *fakeAvailability) *Service {
	svc := NewService(
		repo,
		availability,
		&fakeCatalog{center: &catalogservice.Center{ID: "center-1", ManagerUserID: "manager-1"}},
		passthroughTx{},
		noopLogger{},
	)
	svc.timeProvider = &fixedTime{now: testNow}
	return svc
}

// --- tests ---

func TestGetByID_Access(t *testing.T) {
	repo := newFakeBookingRepo(testBooking("b1", domain.StatusPending))
	svc := newService(repo, newFakeAvailability())

	// Owner sees the booking
	b, err := svc.GetByID(context.Background(), "b1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, "b1", b.ID)

	// Center manager sees it too
	_, err = svc.GetByID(context.Background(), "b1", "manager-1")
	require.NoError(t, err)

	// A stranger does not
	_, err = svc.GetByID(context.Background(), "b1", "user-2")
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), "missing", "user-1")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_ReleasesSlot(t *testing.T) {
	booking := testBooking("b1", domain.StatusConfirmed)
	repo := newFakeBookingRepo(booking)
	availability := newFakeAvailability()
	availability.hold(booking.CourtID, booking.BookingDate, booking.StartTime, booking.ID)

	svc := newService(repo, availability)

	result, err := svc.Cancel(context.Background(), &models.CancelRequest{
		BookingID:   "b1",
		RequestedBy: "user-1",
		Reason:      "plans changed",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelled, result.Status)
	assert.Equal(t, domain.PaymentPending, result.PaymentStatus)
	require.NotNil(t, result.CancellationReason)
	assert.Equal(t, "plans changed", *result.CancellationReason)

	// The slot is free and can be claimed by another booking
	assert.Empty(t, availability.holders)
}

func TestCancel_PaidBookingGetsRefund(t *testing.T) {
	booking := testBooking("b1", domain.StatusPaid)
	booking.PaymentStatus = domain.PaymentPaid
	repo := newFakeBookingRepo(booking)
	availability := newFakeAvailability()
	availability.hold(booking.CourtID, booking.BookingDate, booking.StartTime, booking.ID)

	svc := newService(repo, availability)

	result, err := svc.Cancel(context.Background(), &models.CancelRequest{
		BookingID:   "b1",
		RequestedBy: "user-1",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentRefunded, result.PaymentStatus)
}

func TestCancel_Idempotent(t *testing.T) {
	repo := newFakeBookingRepo(testBooking("b1", domain.StatusCancelled))
	availability := newFakeAvailability()
	svc := newService(repo, availability)

	// Cancelling an already-cancelled booking is a no-op success
	result, err := svc.Cancel(context.Background(), &models.CancelRequest{
		BookingID:   "b1",
		RequestedBy: "user-1",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, result.Status)
	assert.Equal(t, 0, availability.releaseCalls)
}

func TestCancel_TerminalStates(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusCompleted, domain.StatusNoShow} {
		repo := newFakeBookingRepo(testBooking("b1", status))
		svc := newService(repo, newFakeAvailability())

		_, err := svc.Cancel(context.Background(), &models.CancelRequest{
			BookingID:   "b1",
			RequestedBy: "user-1",
		})
		assert.ErrorIs(t, err, ErrCannotCancel, "status %s", status)
	}
}

func TestCancel_HolderMismatchIsConsistencyViolation(t *testing.T) {
	booking := testBooking("b1", domain.StatusConfirmed)
	repo := newFakeBookingRepo(booking)
	availability := newFakeAvailability()
	// The slot is held by a different booking: the index diverged
	availability.hold(booking.CourtID, booking.BookingDate, booking.StartTime, "b2")

	svc := newService(repo, availability)

	_, err := svc.Cancel(context.Background(), &models.CancelRequest{
		BookingID:   "b1",
		RequestedBy: "user-1",
	})
	assert.ErrorIs(t, err, ErrConsistencyViolation)
}

func TestCancel_AlreadyFreeSlotSucceeds(t *testing.T) {
	booking := testBooking("b1", domain.StatusConfirmed)
	repo := newFakeBookingRepo(booking)
	availability := newFakeAvailability()

	svc := newService(repo, availability)

	result, err := svc.Cancel(context.Background(), &models.CancelRequest{
		BookingID:   "b1",
		RequestedBy: "user-1",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, result.Status)
}

func TestConfirm(t *testing.T) {
	repo := newFakeBookingRepo(testBooking("b1", domain.StatusPending))
	svc := newService(repo, newFakeAvailability())

	// Only the center manager may confirm
	_, err := svc.Confirm(context.Background(), &models.ConfirmRequest{
		BookingID:   "b1",
		RequestedBy: "user-1",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	result, err := svc.Confirm(context.Background(), &models.ConfirmRequest{
		BookingID:   "b1",
		RequestedBy: "manager-1",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, result.Status)

	// Confirming a confirmed booking again is an invalid transition
	_, err = svc.Confirm(context.Background(), &models.ConfirmRequest{
		BookingID:   "b1",
		RequestedBy: "manager-1",
	})
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestConfirm_MarkPaid(t *testing.T) {
	repo := newFakeBookingRepo(testBooking("b1", domain.StatusConfirmed))
	svc := newService(repo, newFakeAvailability())

	ref := "pay-123"
	result, err := svc.Confirm(context.Background(), &models.ConfirmRequest{
		BookingID:   "b1",
		RequestedBy: "manager-1",
		MarkPaid:    true,
		PaymentRef:  &ref,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPaid, result.Status)
	assert.Equal(t, domain.PaymentPaid, result.PaymentStatus)
	require.NotNil(t, result.PaymentRef)
	assert.Equal(t, "pay-123", *result.PaymentRef)

	// Paying again is not allowed
	_, err = svc.Confirm(context.Background(), &models.ConfirmRequest{
		BookingID:   "b1",
		RequestedBy: "manager-1",
		MarkPaid:    true,
	})
	assert.ErrorIs(t, err, ErrPaymentNotAllowed)
}

func TestUpdateStatus_NoShow(t *testing.T) {
	// Slot ends 2026-09-20 10:30, "now" is 2026-09-15: too early
	repo := newFakeBookingRepo(testBooking("b1", domain.StatusConfirmed))
	svc := newService(repo, newFakeAvailability())

	_, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		BookingID:   "b1",
		RequestedBy: "manager-1",
		Status:      domain.StatusNoShow,
	})
	assert.ErrorIs(t, err, ErrNoShowTooEarly)

	// After the slot end it is allowed
	svc.timeProvider = &fixedTime{now: time.Date(2026, 9, 20, 11, 0, 0, 0, time.UTC)}
	result, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		BookingID:   "b1",
		RequestedBy: "manager-1",
		Status:      domain.StatusNoShow,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNoShow, result.Status)
}

func TestUpdateStatus_Completed(t *testing.T) {
	repo := newFakeBookingRepo(testBooking("b1", domain.StatusPaid))
	svc := newService(repo, newFakeAvailability())

	result, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		BookingID:   "b1",
		RequestedBy: "manager-1",
		Status:      domain.StatusCompleted,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, result.Status)

	// completed is only reachable from paid
	repo2 := newFakeBookingRepo(testBooking("b2", domain.StatusPending))
	svc2 := newService(repo2, newFakeAvailability())
	_, err = svc2.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		BookingID:   "b2",
		RequestedBy: "manager-1",
		Status:      domain.StatusCompleted,
	})
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestUpdateStatus_RejectsArbitraryTargets(t *testing.T) {
	repo := newFakeBookingRepo(testBooking("b1", domain.StatusPending))
	svc := newService(repo, newFakeAvailability())

	_, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		BookingID:   "b1",
		RequestedBy: "manager-1",
		Status:      domain.StatusCancelled,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserBookings_OnlyOwn(t *testing.T) {
	repo := newFakeBookingRepo(testBooking("b1", domain.StatusPending))
	svc := newService(repo, newFakeAvailability())

	_, err := svc.GetUserBookings(context.Background(), &models.UserBookingsRequest{
		RequestedBy: "user-2",
		UserID:      "user-1",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	list, err := svc.GetUserBookings(context.Background(), &models.UserBookingsRequest{
		RequestedBy: "user-1",
		UserID:      "user-1",
	})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestGetCenterBookings_ManagerOnly(t *testing.T) {
	repo := newFakeBookingRepo(testBooking("b1", domain.StatusPending))
	svc := newService(repo, newFakeAvailability())

	_, err := svc.GetCenterBookings(context.Background(), &models.CenterBookingsRequest{
		RequestedBy: "user-1",
		Filter:      domain.CenterBookingsFilter{CenterID: "center-1"},
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	list, err := svc.GetCenterBookings(context.Background(), &models.CenterBookingsRequest{
		RequestedBy: "manager-1",
		Filter:      domain.CenterBookingsFilter{CenterID: "center-1"},
	})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCancelledSlotCanBeRebooked(t *testing.T) {
	booking := testBooking("b1", domain.StatusConfirmed)
	repo := newFakeBookingRepo(booking)
	availability := newFakeAvailability()
	availability.hold(booking.CourtID, booking.BookingDate, booking.StartTime, booking.ID)

	svc := newService(repo, availability)

	_, err := svc.Cancel(context.Background(), &models.CancelRequest{
		BookingID:   "b1",
		RequestedBy: "user-1",
	})
	require.NoError(t, err)

	// The slot key is free, a new hold for another booking succeeds
	key := holdKey(booking.CourtID, booking.BookingDate, booking.StartTime)
	_, held := availability.holders[key]
	assert.False(t, held)

	availability.hold(booking.CourtID, booking.BookingDate, booking.StartTime, "b2")
	assert.Equal(t, "b2", availability.holders[key])
}

func TestCancel_UnexpectedReleaseError(t *testing.T) {
	booking := testBooking("b1", domain.StatusConfirmed)
	repo := newFakeBookingRepo(booking)
	svc := newService(repo, newFakeAvailability())

	// A failing transaction surfaces as internal error
	svc.txManager = failingTx{}
	_, err := svc.Cancel(context.Background(), &models.CancelRequest{
		BookingID:   "b1",
		RequestedBy: "user-1",
	})
	assert.ErrorIs(t, err, ErrInternal)
}

type failingTx struct{}

func (failingTx) Do(context.Context, func(ctx context.Context) error) error {
	return errors.New("tx failed")
}
