package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/PCB-BookingService/internal/domain"
	"github.com/m04kA/PCB-BookingService/internal/integrations/catalogservice"
)

// AvailabilityRepository интерфейс индекса занятости слотов (только чтение)
type AvailabilityRepository interface {
	ListHolds(ctx context.Context, courtID string, date time.Time) ([]*domain.SlotHold, error)
}

// ConfigRepository интерфейс репозитория конфигурации слотов
type ConfigRepository interface {
	// GetConfigWithHierarchy получает конфигурацию с учетом иерархии приоритетов
	GetConfigWithHierarchy(ctx context.Context, centerID string, courtID *string) (*domain.CenterSlotsConfig, error)
}

// CatalogServiceClient интерфейс клиента для CatalogService
type CatalogServiceClient interface {
	GetCourt(ctx context.Context, courtID string) (*catalogservice.Court, error)
	GetCenter(ctx context.Context, centerID string) (*catalogservice.Center, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
