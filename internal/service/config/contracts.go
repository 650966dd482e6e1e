package config

import (
	"context"

	"github.com/m04kA/PCB-BookingService/internal/domain"
	"github.com/m04kA/PCB-BookingService/internal/integrations/catalogservice"
)

// ConfigRepository интерфейс репозитория конфигурации слотов
type ConfigRepository interface {
	GetConfigWithHierarchy(ctx context.Context, centerID string, courtID *string) (*domain.CenterSlotsConfig, error)
	GetAllByCenter(ctx context.Context, centerID string) ([]*domain.CenterSlotsConfig, error)
	Upsert(ctx context.Context, config *domain.CenterSlotsConfig) (*domain.CenterSlotsConfig, error)
}

// CatalogServiceClient интерфейс клиента для CatalogService
type CatalogServiceClient interface {
	GetCenter(ctx context.Context, centerID string) (*catalogservice.Center, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
