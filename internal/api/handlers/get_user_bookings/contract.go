package get_user_bookings

import (
	"context"

	"github.com/m04kA/PCB-BookingService/internal/domain"
	"github.com/m04kA/PCB-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetUserBookings(ctx context.Context, req *models.UserBookingsRequest) ([]*domain.Booking, error)
	GetUserBookingsGrouped(ctx context.Context, req *models.UserBookingsRequest) (*models.GroupedBookings, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
