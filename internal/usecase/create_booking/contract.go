package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/PCB-BookingService/internal/domain"
	"github.com/m04kA/PCB-BookingService/internal/integrations/catalogservice"
	"github.com/m04kA/PCB-BookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

// AvailabilityRepository интерфейс индекса занятости слотов
// Reserve/Release - единственная точка сериализации конкурирующих бронирований
type AvailabilityRepository interface {
	Reserve(ctx context.Context, hold *domain.SlotHold) error
	Release(ctx context.Context, courtID string, date time.Time, start types.TimeString, expectedBookingID string) error
}

// ConfigRepository интерфейс репозитория конфигурации слотов
type ConfigRepository interface {
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

// IDGenerator интерфейс генерации идентификаторов бронирований (для тестирования)
type IDGenerator interface {
	NewID() string
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
