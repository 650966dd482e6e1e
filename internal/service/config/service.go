package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PCB-BookingService/internal/domain"
	configStore "github.com/m04kA/PCB-BookingService/internal/infra/storage/config"
	catalogClient "github.com/m04kA/PCB-BookingService/internal/integrations/catalogservice"
	"github.com/m04kA/PCB-BookingService/internal/service/config/models"
)

// Service сервис управления конфигурацией слотов центров
type Service struct {
	configRepo ConfigRepository
	catalog    CatalogServiceClient
	logger     Logger
}

// NewService создает новый сервис конфигурации
func NewService(configRepo ConfigRepository, catalog CatalogServiceClient, logger Logger) *Service {
	return &Service{
		configRepo: configRepo,
		catalog:    catalog,
		logger:     logger,
	}
}

// GetConfig возвращает действующую конфигурацию слотов с учётом иерархии
// (корт -> центр -> дефолты). Конфигурация публична - доступна без авторизации
func (s *Service) GetConfig(ctx context.Context, req *models.GetConfigRequest) (*domain.CenterSlotsConfig, error) {
	if req.CenterID == "" {
		return nil, fmt.Errorf("%w: centerID is required", ErrInvalidInput)
	}

	config, err := s.configRepo.GetConfigWithHierarchy(ctx, req.CenterID, req.CourtID)
	if err != nil {
		if errors.Is(err, configStore.ErrConfigNotFound) {
			// Конфигурация не задана - действуют дефолтные значения
			defaults := domain.DefaultSlotsConfig()
			defaults.CenterID = req.CenterID
			return defaults, nil
		}
		s.logger.Error("GetConfig: failed to get config for center=%s: %v", req.CenterID, err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	return config, nil
}

// GetAllByCenter возвращает все конфигурации центра (общую и покортовые)
func (s *Service) GetAllByCenter(ctx context.Context, centerID string) ([]*domain.CenterSlotsConfig, error) {
	if centerID == "" {
		return nil, fmt.Errorf("%w: centerID is required", ErrInvalidInput)
	}

	configs, err := s.configRepo.GetAllByCenter(ctx, centerID)
	if err != nil {
		s.logger.Error("GetAllByCenter: failed to get configs for center=%s: %v", centerID, err)
		return nil, fmt.Errorf("%w: failed to get configs: %v", ErrInternal, err)
	}

	return configs, nil
}

// UpdateConfig создает или обновляет конфигурацию слотов.
// Доступно только менеджеру центра
func (s *Service) UpdateConfig(ctx context.Context, req *models.UpdateConfigRequest) (*domain.CenterSlotsConfig, error) {
	s.logger.Info("UpdateConfig: center=%s, requestedBy=%s", req.CenterID, req.RequestedBy)

	if err := validateUpdateRequest(req); err != nil {
		s.logger.Warn("UpdateConfig: validation failed: %v", err)
		return nil, err
	}

	center, err := s.catalog.GetCenter(ctx, req.CenterID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrCenterNotFound) {
			return nil, ErrCenterNotFound
		}
		s.logger.Error("UpdateConfig: failed to get center=%s: %v", req.CenterID, err)
		return nil, fmt.Errorf("%w: failed to get center: %v", ErrInternal, err)
	}

	if center.ManagerUserID != req.RequestedBy {
		s.logger.Warn("UpdateConfig: user=%s is not a manager of center=%s", req.RequestedBy, req.CenterID)
		return nil, ErrAccessDenied
	}

	config := &domain.CenterSlotsConfig{
		CenterID:                req.CenterID,
		CourtID:                 req.CourtID,
		SlotDurationMinutes:     req.SlotDurationMinutes,
		SlotStrideMinutes:       req.SlotStrideMinutes,
		AdvanceBookingDays:      req.AdvanceBookingDays,
		MinBookingNoticeMinutes: req.MinBookingNoticeMinutes,
		MaxPlayers:              req.MaxPlayers,
	}

	updated, err := s.configRepo.Upsert(ctx, config)
	if err != nil {
		s.logger.Error("UpdateConfig: failed to upsert config for center=%s: %v", req.CenterID, err)
		return nil, fmt.Errorf("%w: failed to upsert config: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateConfig: config id=%d saved for center=%s", updated.ID, req.CenterID)

	return updated, nil
}

// validateUpdateRequest проверяет бизнес-ограничения конфигурации
func validateUpdateRequest(req *models.UpdateConfigRequest) error {
	if req.CenterID == "" {
		return fmt.Errorf("%w: centerID is required", ErrInvalidInput)
	}

	if req.SlotDurationMinutes < domain.MinSlotDurationMinutes || req.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slotDurationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	if req.SlotStrideMinutes < domain.MinSlotStrideMinutes || req.SlotStrideMinutes > domain.MaxSlotStrideMinutes {
		return fmt.Errorf("%w: slotStrideMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotStrideMinutes, domain.MaxSlotStrideMinutes)
	}

	if req.AdvanceBookingDays < domain.MinAdvanceBookingDays || req.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advanceBookingDays must be between %d and %d",
			ErrInvalidInput, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
	}

	if req.MinBookingNoticeMinutes < domain.MinBookingNotice || req.MinBookingNoticeMinutes > domain.MaxBookingNotice {
		return fmt.Errorf("%w: minBookingNoticeMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinBookingNotice, domain.MaxBookingNotice)
	}

	if req.MaxPlayers < domain.MinPlayers || req.MaxPlayers > domain.MaxPlayersLimit {
		return fmt.Errorf("%w: maxPlayers must be between %d and %d",
			ErrInvalidInput, domain.MinPlayers, domain.MaxPlayersLimit)
	}

	return nil
}
