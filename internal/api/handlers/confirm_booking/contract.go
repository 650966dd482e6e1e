package confirm_booking

import (
	"context"

	"github.com/m04kA/PCB-BookingService/internal/domain"
	"github.com/m04kA/PCB-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	Confirm(ctx context.Context, req *models.ConfirmRequest) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
