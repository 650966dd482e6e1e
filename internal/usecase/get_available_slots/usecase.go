package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PCB-BookingService/internal/domain"
	configRepo "github.com/m04kA/PCB-BookingService/internal/infra/storage/config"
	catalogClient "github.com/m04kA/PCB-BookingService/internal/integrations/catalogservice"
	"github.com/m04kA/PCB-BookingService/pkg/ptr"
)

// UseCase use case для получения слотов корта на дату
type UseCase struct {
	availabilityRepo AvailabilityRepository
	configRepo       ConfigRepository
	catalogClient    CatalogServiceClient
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	configRepo ConfigRepository,
	catalogClient CatalogServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		configRepo:       configRepo,
		catalogClient:    catalogClient,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%s, court=%s, date=%s",
		req.UserID, req.CourtID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем корт из каталога
	court, err := uc.catalogClient.GetCourt(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrCourtNotFound) {
			uc.logger.Warn("GetAvailableSlots: court id=%s not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get court id=%s: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	if !court.IsActive {
		uc.logger.Warn("GetAvailableSlots: court id=%s is not active", req.CourtID)
		return nil, ErrCourtInactive
	}

	// 4. Получаем центр (расписание работы)
	center, err := uc.catalogClient.GetCenter(ctx, court.CenterID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrCenterNotFound) {
			uc.logger.Warn("GetAvailableSlots: center id=%s not found", court.CenterID)
			return nil, ErrCenterNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get center id=%s: %v", court.CenterID, err)
		return nil, fmt.Errorf("%w: failed to get center: %v", ErrInternal, err)
	}

	// 5. Получаем конфигурацию слотов с учетом иерархии
	config, err := uc.configRepo.GetConfigWithHierarchy(ctx, court.CenterID, ptr.Ptr(req.CourtID))
	if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get config: %v", err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	// Если конфигурация не найдена, используем дефолтные значения
	if config == nil {
		config = domain.DefaultSlotsConfig()
		uc.logger.Info("GetAvailableSlots: using default config for center=%s, court=%s",
			court.CenterID, req.CourtID)
	} else {
		uc.logger.Info("GetAvailableSlots: using config id=%d", config.ID)
	}

	// 6. Валидация даты с учетом конфигурации
	if err := validateDate(req.Date, now, config.AdvanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 7. Получаем расписание работы центра на указанную дату
	workingHours := center.ScheduleForDay(req.Date)
	if !workingHours.IsOpen {
		uc.logger.Info("GetAvailableSlots: center is closed on %s", req.Date.Format(domain.DateFormat))
		return &Response{
			CourtID:  req.CourtID,
			CenterID: court.CenterID,
			Date:     req.Date,
			Slots:    []Slot{},
		}, nil
	}

	// 8. Генерируем кандидаты слотов
	starts, err := generateTimeSlots(
		workingHours,
		config.SlotDurationMinutes,
		config.SlotStrideMinutes,
		req.Date,
		now,
		config.MinBookingNoticeMinutes,
	)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 9. Получаем удержания корта на дату из индекса занятости
	holds, err := uc.availabilityRepo.ListHolds(ctx, req.CourtID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list holds: %v", err)
		return nil, fmt.Errorf("%w: failed to list holds: %v", ErrInternal, err)
	}

	// 10. Аннотируем слоты ценой и признаком доступности
	slots := annotateSlots(starts, config.SlotDurationMinutes, court.PricePerHour, holds)

	uc.logger.Info("GetAvailableSlots: generated %d slots for court=%s, date=%s",
		len(slots), req.CourtID, req.Date.Format(domain.DateFormat))

	return &Response{
		CourtID:  req.CourtID,
		CenterID: court.CenterID,
		Date:     req.Date,
		Slots:    slots,
	}, nil
}
