package create_booking

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/m04kA/PCB-BookingService/internal/domain"
	availabilityRepo "github.com/m04kA/PCB-BookingService/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/PCB-BookingService/internal/infra/storage/booking"
	configRepo "github.com/m04kA/PCB-BookingService/internal/infra/storage/config"
	catalogClient "github.com/m04kA/PCB-BookingService/internal/integrations/catalogservice"
	"github.com/m04kA/PCB-BookingService/pkg/ptr"
)

// priceEpsilon допуск при сверке цены клиента с серверным расчётом
const priceEpsilon = 0.01

// UUIDGenerator генератор идентификаторов бронирований на основе UUID v4
type UUIDGenerator struct{}

// NewID возвращает новый уникальный идентификатор
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// UseCase use case для создания бронирования.
// Координирует резервирование слота в индексе занятости и сохранение
// бронирования: слот резервируется до записи, а при сбое записи
// резервирование компенсируется освобождением
type UseCase struct {
	bookings     BookingRepository
	availability AvailabilityRepository
	configRepo   ConfigRepository
	catalog      CatalogServiceClient
	timeProvider TimeProvider
	idGenerator  IDGenerator
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookings BookingRepository,
	availability AvailabilityRepository,
	configRepo ConfigRepository,
	catalog CatalogServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookings:     bookings,
		availability: availability,
		configRepo:   configRepo,
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		idGenerator:  &UUIDGenerator{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, court=%s, date=%s, slot=%s-%s",
		req.UserID, req.CourtID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверка идемпотентности: повтор с тем же ключом возвращает
	// уже созданное бронирование без побочных эффектов
	if req.IdempotencyKey != nil && *req.IdempotencyKey != "" {
		existing, err := uc.bookings.GetByIdempotencyKey(ctx, *req.IdempotencyKey)
		if err != nil && !errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Error("CreateBooking: idempotency lookup failed: %v", err)
			return nil, fmt.Errorf("%w: idempotency lookup failed: %v", ErrInternal, err)
		}
		if existing != nil {
			uc.logger.Info("CreateBooking: idempotent replay, returning booking id=%s", existing.ID)
			return toResponse(existing), nil
		}
	}

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	// 4. Получаем корт из каталога
	court, err := uc.catalog.GetCourt(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrCourtNotFound) {
			uc.logger.Warn("CreateBooking: court id=%s not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CreateBooking: failed to get court id=%s: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	if !court.IsActive {
		uc.logger.Warn("CreateBooking: court id=%s is not active", req.CourtID)
		return nil, ErrCourtInactive
	}

	// 5. Получаем центр (расписание работы)
	center, err := uc.catalog.GetCenter(ctx, court.CenterID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrCenterNotFound) {
			uc.logger.Warn("CreateBooking: center id=%s not found", court.CenterID)
			return nil, ErrCenterNotFound
		}
		uc.logger.Error("CreateBooking: failed to get center id=%s: %v", court.CenterID, err)
		return nil, fmt.Errorf("%w: failed to get center: %v", ErrInternal, err)
	}

	// 6. Получаем конфигурацию слотов с учетом иерархии
	config, err := uc.configRepo.GetConfigWithHierarchy(ctx, court.CenterID, ptr.Ptr(req.CourtID))
	if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
		uc.logger.Error("CreateBooking: failed to get config: %v", err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}
	if config == nil {
		config = domain.DefaultSlotsConfig()
	}

	// 7. Бизнес-валидация: дата, игроки, сетка слотов, минимальное уведомление
	if err := validateDate(req.Date, now, config.AdvanceBookingDays); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	if req.PlayerCount > config.MaxPlayers {
		uc.logger.Warn("CreateBooking: playerCount=%d exceeds limit=%d", req.PlayerCount, config.MaxPlayers)
		return nil, fmt.Errorf("%w: maximum %d players", ErrTooManyPlayers, config.MaxPlayers)
	}

	workingHours := center.ScheduleForDay(req.Date)
	if err := validateSlotWindow(req.StartTime, req.EndTime, workingHours, config.SlotDurationMinutes, config.SlotStrideMinutes); err != nil {
		uc.logger.Warn("CreateBooking: slot window validation failed: %v", err)
		return nil, err
	}

	if err := validateNotice(req.StartTime, req.Date, now, config.MinBookingNoticeMinutes); err != nil {
		uc.logger.Warn("CreateBooking: notice validation failed: %v", err)
		return nil, err
	}

	// 8. Серверный расчёт цены - единственный авторитетный.
	// Цена клиента используется только для сверки и логируется при расхождении
	totalPrice := court.PricePerHour * float64(config.SlotDurationMinutes) / 60.0
	if req.RequestedPrice != nil && math.Abs(*req.RequestedPrice-totalPrice) > priceEpsilon {
		uc.logger.Warn("CreateBooking: client price %.2f differs from server price %.2f for court=%s",
			*req.RequestedPrice, totalPrice, req.CourtID)
	}

	// 9. Резервируем слот в индексе занятости.
	// Reserve - точка сериализации: из конкурирующих запросов на один
	// интервал выигрывает ровно один
	bookingID := uc.idGenerator.NewID()

	hold := &domain.SlotHold{
		CourtID:   req.CourtID,
		SlotDate:  req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		BookingID: bookingID,
	}

	if err := uc.availability.Reserve(ctx, hold); err != nil {
		if errors.Is(err, availabilityRepo.ErrSlotTaken) {
			uc.logger.Info("CreateBooking: slot %s-%s on %s is taken for court=%s",
				req.StartTime, req.EndTime, req.Date.Format(domain.DateFormat), req.CourtID)
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("CreateBooking: failed to reserve slot: %v", err)
		return nil, fmt.Errorf("%w: failed to reserve slot: %v", ErrInternal, err)
	}

	// 10. Сохраняем бронирование. При сбое освобождаем зарезервированный
	// слот, чтобы не оставить фантомное удержание
	booking := &domain.Booking{
		ID:               bookingID,
		UserID:           req.UserID,
		CourtID:          req.CourtID,
		CenterID:         court.CenterID,
		BookingDate:      req.Date,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		PlayerCount:      req.PlayerCount,
		BasePricePerHour: court.PricePerHour,
		TotalPrice:       totalPrice,
		Status:           domain.StatusPending,
		PaymentStatus:    domain.PaymentPending,
		SpecialRequests:  req.SpecialRequests,
		IdempotencyKey:   req.IdempotencyKey,
	}

	created, err := uc.bookings.Create(ctx, booking)
	if err != nil {
		uc.releaseHold(ctx, hold)

		// Гонка двух повторов с одним ключом идемпотентности: проигравший
		// возвращает бронирование победителя
		if errors.Is(err, bookingRepo.ErrDuplicateIdempotencyKey) && req.IdempotencyKey != nil {
			existing, lookupErr := uc.bookings.GetByIdempotencyKey(ctx, *req.IdempotencyKey)
			if lookupErr == nil && existing != nil {
				uc.logger.Info("CreateBooking: lost idempotency race, returning booking id=%s", existing.ID)
				return toResponse(existing), nil
			}
		}

		uc.logger.Error("CreateBooking: failed to persist booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to persist booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: created booking id=%s, user=%s, court=%s, total=%.2f",
		created.ID, created.UserID, created.CourtID, created.TotalPrice)

	return toResponse(created), nil
}

// releaseHold компенсирует резервирование слота после сбоя записи бронирования.
// Ошибка освобождения логируется, но не меняет исход: вызывающий уже получил сбой
func (uc *UseCase) releaseHold(ctx context.Context, hold *domain.SlotHold) {
	if err := uc.availability.Release(ctx, hold.CourtID, hold.SlotDate, hold.StartTime, hold.BookingID); err != nil {
		uc.logger.Error("CreateBooking: COMPENSATION FAILED, orphaned hold court=%s date=%s start=%s booking=%s: %v",
			hold.CourtID, hold.SlotDate.Format(domain.DateFormat), hold.StartTime, hold.BookingID, err)
	}
}
