package cancel_booking

import (
	"context"

	"github.com/m04kA/PCB-BookingService/internal/domain"
	"github.com/m04kA/PCB-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	Cancel(ctx context.Context, req *models.CancelRequest) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
