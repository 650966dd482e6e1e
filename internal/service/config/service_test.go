package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PCB-BookingService/internal/domain"
	configStore "github.com/m04kA/PCB-BookingService/internal/infra/storage/config"
	"github.com/m04kA/PCB-BookingService/internal/integrations/catalogservice"
	"github.com/m04kA/PCB-BookingService/internal/service/config/models"
	"github.com/m04kA/PCB-BookingService/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fakeConfigRepo struct {
	config *domain.CenterSlotsConfig
	saved  *domain.CenterSlotsConfig
}

func (f *fakeConfigRepo) GetConfigWithHierarchy(context.Context, string, *string) (*domain.CenterSlotsConfig, error) {
	if f.config == nil {
		return nil, configStore.ErrConfigNotFound
	}
	return f.config, nil
}

func (f *fakeConfigRepo) GetAllByCenter(context.Context, string) ([]*domain.CenterSlotsConfig, error) {
	if f.config == nil {
		return []*domain.CenterSlotsConfig{}, nil
	}
	return []*domain.CenterSlotsConfig{f.config}, nil
}

func (f *fakeConfigRepo) Upsert(_ context.Context, config *domain.CenterSlotsConfig) (*domain.CenterSlotsConfig, error) {
	config.ID = 1
	f.saved = config
	return config, nil
}

type fakeCatalog struct {
	center *catalogservice.Center
}

func (f *fakeCatalog) GetCenter(context.Context, string) (*catalogservice.Center, error) {
	if f.center == nil {
		return nil, catalogservice.ErrCenterNotFound
	}
	return f.center, nil
}

func newTestService(repo *fakeConfigRepo) *Service {
	return NewService(
		repo,
		&fakeCatalog{center: &catalogservice.Center{ID: "center-1", ManagerUserID: "manager-1"}},
		noopLogger{},
	)
}

func validUpdate() *models.UpdateConfigRequest {
	return &models.UpdateConfigRequest{
		RequestedBy:             "manager-1",
		CenterID:                "center-1",
		SlotDurationMinutes:     90,
		SlotStrideMinutes:       30,
		AdvanceBookingDays:      14,
		MinBookingNoticeMinutes: 60,
		MaxPlayers:              4,
	}
}

func TestGetConfig_FallsBackToDefaults(t *testing.T) {
	svc := newTestService(&fakeConfigRepo{})

	config, err := svc.GetConfig(context.Background(), &models.GetConfigRequest{CenterID: "center-1"})
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultSlotDurationMinutes, config.SlotDurationMinutes)
	assert.Equal(t, domain.DefaultSlotStrideMinutes, config.SlotStrideMinutes)
	assert.Equal(t, "center-1", config.CenterID)
}

func TestGetConfig_ReturnsStoredConfig(t *testing.T) {
	stored := &domain.CenterSlotsConfig{
		ID:                  7,
		CenterID:            "center-1",
		SlotDurationMinutes: 60,
		SlotStrideMinutes:   60,
		MaxPlayers:          2,
	}
	svc := newTestService(&fakeConfigRepo{config: stored})

	config, err := svc.GetConfig(context.Background(), &models.GetConfigRequest{CenterID: "center-1"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), config.ID)
	assert.Equal(t, 60, config.SlotDurationMinutes)
}

func TestUpdateConfig_ManagerOnly(t *testing.T) {
	svc := newTestService(&fakeConfigRepo{})

	req := validUpdate()
	req.RequestedBy = "user-1"
	_, err := svc.UpdateConfig(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateConfig_Success(t *testing.T) {
	repo := &fakeConfigRepo{}
	svc := newTestService(repo)

	req := validUpdate()
	req.CourtID = ptr.Ptr("court-1")

	result, err := svc.UpdateConfig(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.ID)
	require.NotNil(t, repo.saved)
	assert.Equal(t, "center-1", repo.saved.CenterID)
	require.NotNil(t, repo.saved.CourtID)
	assert.Equal(t, "court-1", *repo.saved.CourtID)
}

func TestUpdateConfig_Validation(t *testing.T) {
	svc := newTestService(&fakeConfigRepo{})

	tests := []struct {
		name   string
		mutate func(*models.UpdateConfigRequest)
	}{
		{"missing center", func(r *models.UpdateConfigRequest) { r.CenterID = "" }},
		{"duration too short", func(r *models.UpdateConfigRequest) { r.SlotDurationMinutes = 15 }},
		{"duration too long", func(r *models.UpdateConfigRequest) { r.SlotDurationMinutes = 300 }},
		{"stride too short", func(r *models.UpdateConfigRequest) { r.SlotStrideMinutes = 5 }},
		{"advance days negative", func(r *models.UpdateConfigRequest) { r.AdvanceBookingDays = -1 }},
		{"advance days too large", func(r *models.UpdateConfigRequest) { r.AdvanceBookingDays = 400 }},
		{"notice negative", func(r *models.UpdateConfigRequest) { r.MinBookingNoticeMinutes = -1 }},
		{"zero players", func(r *models.UpdateConfigRequest) { r.MaxPlayers = 0 }},
		{"too many players", func(r *models.UpdateConfigRequest) { r.MaxPlayers = 20 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUpdate()
			tt.mutate(req)
			_, err := svc.UpdateConfig(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdateConfig_CenterNotFound(t *testing.T) {
	svc := NewService(&fakeConfigRepo{}, &fakeCatalog{}, noopLogger{})

	_, err := svc.UpdateConfig(context.Background(), validUpdate())
	assert.ErrorIs(t, err, ErrCenterNotFound)
}
