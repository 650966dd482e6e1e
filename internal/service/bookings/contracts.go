package bookings

import (
	"context"
	"time"

	"github.com/m04kA/PCB-BookingService/internal/domain"
	"github.com/m04kA/PCB-BookingService/internal/integrations/catalogservice"
	"github.com/m04kA/PCB-BookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID string, status *domain.BookingStatus, limit int) ([]*domain.Booking, error)
	GetByCenterWithFilter(ctx context.Context, filter domain.CenterBookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, paymentStatus *domain.PaymentStatus, paymentRef *string) error
	Cancel(ctx context.Context, id string, reason string, refund bool) error
}

// AvailabilityRepository интерфейс индекса занятости слотов
type AvailabilityRepository interface {
	Release(ctx context.Context, courtID string, date time.Time, start types.TimeString, expectedBookingID string) error
}

// CatalogServiceClient интерфейс клиента для CatalogService
type CatalogServiceClient interface {
	GetCenter(ctx context.Context, centerID string) (*catalogservice.Center, error)
}

// TxManager интерфейс менеджера транзакций
// Отмена должна атомарно обновить бронирование и освободить слот
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
