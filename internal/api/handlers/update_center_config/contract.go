package update_center_config

import (
	"context"

	"github.com/m04kA/PCB-BookingService/internal/domain"
	"github.com/m04kA/PCB-BookingService/internal/service/config/models"
)

type ConfigService interface {
	UpdateConfig(ctx context.Context, req *models.UpdateConfigRequest) (*domain.CenterSlotsConfig, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
