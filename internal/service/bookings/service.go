package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PCB-BookingService/internal/domain"
	availabilityStore "github.com/m04kA/PCB-BookingService/internal/infra/storage/availability"
	bookingStore "github.com/m04kA/PCB-BookingService/internal/infra/storage/booking"
	catalogClient "github.com/m04kA/PCB-BookingService/internal/integrations/catalogservice"
	"github.com/m04kA/PCB-BookingService/internal/service/bookings/models"
)

// Service сервис управления жизненным циклом бронирований
type Service struct {
	bookings     BookingRepository
	availability AvailabilityRepository
	catalog      CatalogServiceClient
	txManager    TxManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый сервис бронирований
func NewService(
	bookings BookingRepository,
	availability AvailabilityRepository,
	catalog CatalogServiceClient,
	txManager TxManager,
	logger Logger,
) *Service {
	return &Service{
		bookings:     bookings,
		availability: availability,
		catalog:      catalog,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID возвращает бронирование по ID.
// Доступно владельцу бронирования и менеджеру центра
func (s *Service) GetByID(ctx context.Context, bookingID, requestedBy string) (*domain.Booking, error) {
	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := s.checkViewAccess(ctx, booking, requestedBy); err != nil {
		return nil, err
	}

	return booking, nil
}

// GetUserBookings возвращает бронирования пользователя.
// Пользователь видит только собственные бронирования
func (s *Service) GetUserBookings(ctx context.Context, req *models.UserBookingsRequest) ([]*domain.Booking, error) {
	if req.RequestedBy != req.UserID {
		s.logger.Warn("GetUserBookings: user=%s requested bookings of user=%s", req.RequestedBy, req.UserID)
		return nil, ErrAccessDenied
	}

	list, err := s.bookings.GetByUserID(ctx, req.UserID, req.Status, req.Limit)
	if err != nil {
		s.logger.Error("GetUserBookings: failed to get bookings for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user bookings: %v", ErrInternal, err)
	}

	return list, nil
}

// GetUserBookingsGrouped возвращает бронирования пользователя,
// разбитые на группы upcoming / past / cancelled
func (s *Service) GetUserBookingsGrouped(ctx context.Context, req *models.UserBookingsRequest) (*models.GroupedBookings, error) {
	list, err := s.GetUserBookings(ctx, req)
	if err != nil {
		return nil, err
	}

	return classifyBookings(list, s.timeProvider.Now()), nil
}

// GetCenterBookings возвращает бронирования центра с фильтрацией.
// Доступно только менеджеру центра
func (s *Service) GetCenterBookings(ctx context.Context, req *models.CenterBookingsRequest) ([]*domain.Booking, error) {
	if req.Filter.CenterID == "" {
		return nil, fmt.Errorf("%w: centerID is required", ErrInvalidInput)
	}

	if err := s.checkManagerAccess(ctx, req.Filter.CenterID, req.RequestedBy); err != nil {
		return nil, err
	}

	list, err := s.bookings.GetByCenterWithFilter(ctx, req.Filter)
	if err != nil {
		s.logger.Error("GetCenterBookings: failed to get bookings for center=%s: %v", req.Filter.CenterID, err)
		return nil, fmt.Errorf("%w: failed to get center bookings: %v", ErrInternal, err)
	}

	return list, nil
}

// Cancel отменяет бронирование и освобождает слот в индексе занятости.
// Обновление статуса и освобождение выполняются в одной транзакции.
// Повторная отмена уже отменённого бронирования - no-op (идемпотентность)
func (s *Service) Cancel(ctx context.Context, req *models.CancelRequest) (*domain.Booking, error) {
	s.logger.Info("Cancel: booking=%s, requestedBy=%s", req.BookingID, req.RequestedBy)

	booking, err := s.getBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	if err := s.checkViewAccess(ctx, booking, req.RequestedBy); err != nil {
		return nil, err
	}

	// Идемпотентность: повторная отмена возвращает бронирование без изменений
	if booking.IsCancelled() {
		s.logger.Info("Cancel: booking=%s is already cancelled", req.BookingID)
		return booking, nil
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking=%s in status=%s cannot be cancelled", req.BookingID, booking.Status)
		return nil, fmt.Errorf("%w: status is %s", ErrCannotCancel, booking.Status)
	}

	// Оплаченное бронирование при отмене получает возврат
	refund := booking.PaymentStatus == domain.PaymentPaid

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.bookings.Cancel(txCtx, req.BookingID, req.Reason, refund); err != nil {
			return fmt.Errorf("update booking: %w", err)
		}

		// Слот освобождаем только если бронирование его реально удерживало
		if !booking.HoldsSlot() {
			return nil
		}

		err := s.availability.Release(txCtx, booking.CourtID, booking.BookingDate, booking.StartTime, booking.ID)
		if err != nil {
			if errors.Is(err, availabilityStore.ErrHolderMismatch) {
				// Слот удерживается другим бронированием - индекс занятости
				// разошёлся с бронированиями, транзакцию откатываем
				return fmt.Errorf("%w: %v", ErrConsistencyViolation, err)
			}
			return fmt.Errorf("release slot: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrConsistencyViolation) {
			s.logger.Error("Cancel: consistency violation for booking=%s: %v", req.BookingID, err)
			return nil, ErrConsistencyViolation
		}
		s.logger.Error("Cancel: transaction failed for booking=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: cancel transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking=%s cancelled, refund=%t", req.BookingID, refund)

	return s.getBooking(ctx, req.BookingID)
}

// Confirm подтверждает бронирование менеджером центра.
// При MarkPaid дополнительно фиксирует оплату (payment_status -> paid)
func (s *Service) Confirm(ctx context.Context, req *models.ConfirmRequest) (*domain.Booking, error) {
	s.logger.Info("Confirm: booking=%s, requestedBy=%s, markPaid=%t", req.BookingID, req.RequestedBy, req.MarkPaid)

	booking, err := s.getBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	if err := s.checkManagerAccess(ctx, booking.CenterID, req.RequestedBy); err != nil {
		return nil, err
	}

	target := domain.StatusConfirmed
	var paymentStatus *domain.PaymentStatus
	var paymentRef *string

	if req.MarkPaid {
		if !booking.CanSetPaymentPaid() {
			s.logger.Warn("Confirm: payment not allowed for booking=%s in status=%s/%s",
				req.BookingID, booking.Status, booking.PaymentStatus)
			return nil, ErrPaymentNotAllowed
		}
		target = domain.StatusPaid
		paid := domain.PaymentPaid
		paymentStatus = &paid
		paymentRef = req.PaymentRef
	} else if !booking.CanTransitionTo(domain.StatusConfirmed) {
		s.logger.Warn("Confirm: invalid transition %s -> confirmed for booking=%s", booking.Status, req.BookingID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, booking.Status, domain.StatusConfirmed)
	}

	if err := s.bookings.UpdateStatus(ctx, req.BookingID, target, paymentStatus, paymentRef); err != nil {
		if errors.Is(err, bookingStore.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Confirm: failed to update booking=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
	}

	s.logger.Info("Confirm: booking=%s moved to status=%s", req.BookingID, target)

	return s.getBooking(ctx, req.BookingID)
}

// UpdateStatus переводит бронирование в завершающий статус (completed или no_show).
// Доступно только менеджеру центра. no_show допустим лишь после окончания слота
func (s *Service) UpdateStatus(ctx context.Context, req *models.UpdateStatusRequest) (*domain.Booking, error) {
	s.logger.Info("UpdateStatus: booking=%s, status=%s, requestedBy=%s", req.BookingID, req.Status, req.RequestedBy)

	if req.Status != domain.StatusCompleted && req.Status != domain.StatusNoShow {
		return nil, fmt.Errorf("%w: unsupported target status %q", ErrInvalidInput, req.Status)
	}

	booking, err := s.getBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	if err := s.checkManagerAccess(ctx, booking.CenterID, req.RequestedBy); err != nil {
		return nil, err
	}

	if req.Status == domain.StatusNoShow {
		if !booking.CanTransitionTo(domain.StatusNoShow) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, booking.Status, req.Status)
		}
		if !booking.CanMarkNoShow(s.timeProvider.Now()) {
			s.logger.Warn("UpdateStatus: no_show too early for booking=%s", req.BookingID)
			return nil, ErrNoShowTooEarly
		}
	} else if !booking.CanTransitionTo(req.Status) {
		s.logger.Warn("UpdateStatus: invalid transition %s -> %s for booking=%s", booking.Status, req.Status, req.BookingID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, booking.Status, req.Status)
	}

	if err := s.bookings.UpdateStatus(ctx, req.BookingID, req.Status, nil, nil); err != nil {
		if errors.Is(err, bookingStore.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: failed to update booking=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
	}

	return s.getBooking(ctx, req.BookingID)
}

// getBooking читает бронирование, транслируя ошибку хранилища в ошибку сервиса
func (s *Service) getBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingStore.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("getBooking: failed to get booking=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	return booking, nil
}

// checkViewAccess проверяет доступ к бронированию: владелец или менеджер центра
func (s *Service) checkViewAccess(ctx context.Context, booking *domain.Booking, requestedBy string) error {
	if booking.UserID == requestedBy {
		return nil
	}
	return s.checkManagerAccess(ctx, booking.CenterID, requestedBy)
}

// checkManagerAccess проверяет, что пользователь является менеджером центра
func (s *Service) checkManagerAccess(ctx context.Context, centerID, requestedBy string) error {
	center, err := s.catalog.GetCenter(ctx, centerID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrCenterNotFound) {
			return ErrCenterNotFound
		}
		s.logger.Error("checkManagerAccess: failed to get center=%s: %v", centerID, err)
		return fmt.Errorf("%w: failed to get center: %v", ErrInternal, err)
	}

	if center.ManagerUserID != requestedBy {
		s.logger.Warn("checkManagerAccess: user=%s is not a manager of center=%s", requestedBy, centerID)
		return ErrAccessDenied
	}

	return nil
}
