package config

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/PCB-BookingService/internal/domain"
	"github.com/m04kA/PCB-BookingService/pkg/dbmetrics"
	"github.com/m04kA/PCB-BookingService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

var configColumns = []string{
	"id",
	"center_id",
	"court_id",
	"slot_duration_minutes",
	"slot_stride_minutes",
	"advance_booking_days",
	"min_booking_notice_minutes",
	"max_players",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с конфигурацией слотов центров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByCenterAndCourt получает конфигурацию по точному ключу (центр, корт)
// courtID = nil означает общецентровую конфигурацию
func (r *Repository) GetByCenterAndCourt(ctx context.Context, centerID string, courtID *string) (*domain.CenterSlotsConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(configColumns...).
		From("center_slot_configs").
		Where(squirrel.Eq{"center_id": centerID})

	if courtID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"court_id": *courtID})
	} else {
		selectBuilder = selectBuilder.Where("court_id IS NULL")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCenterAndCourt - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanConfig(executor.QueryRowContext(ctx, query, args...), "GetByCenterAndCourt")
}

// GetConfigWithHierarchy получает конфигурацию с учетом иерархии приоритетов:
// сначала конфигурация конкретного корта, затем общецентровая
func (r *Repository) GetConfigWithHierarchy(ctx context.Context, centerID string, courtID *string) (*domain.CenterSlotsConfig, error) {
	if courtID != nil {
		config, err := r.GetByCenterAndCourt(ctx, centerID, courtID)
		if err == nil {
			return config, nil
		}
		if err != ErrConfigNotFound {
			return nil, err
		}
	}

	return r.GetByCenterAndCourt(ctx, centerID, nil)
}

// GetAllByCenter получает все конфигурации центра (общецентровую и покортовые)
func (r *Repository) GetAllByCenter(ctx context.Context, centerID string) ([]*domain.CenterSlotsConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(configColumns...).
		From("center_slot_configs").
		Where(squirrel.Eq{"center_id": centerID}).
		OrderBy("court_id NULLS FIRST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAllByCenter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllByCenter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	configs := make([]*domain.CenterSlotsConfig, 0)
	for rows.Next() {
		config, err := scanConfigFields(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAllByCenter - scan row: %v", ErrScanRow, err)
		}
		configs = append(configs, config)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAllByCenter - rows error: %v", ErrScanRow, err)
	}

	return configs, nil
}

// Upsert создает или обновляет конфигурацию по ключу (центр, корт)
func (r *Repository) Upsert(ctx context.Context, config *domain.CenterSlotsConfig) (*domain.CenterSlotsConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("center_slot_configs").
		Columns(
			"center_id",
			"court_id",
			"slot_duration_minutes",
			"slot_stride_minutes",
			"advance_booking_days",
			"min_booking_notice_minutes",
			"max_players",
		).
		Values(
			config.CenterID,
			config.CourtID,
			config.SlotDurationMinutes,
			config.SlotStrideMinutes,
			config.AdvanceBookingDays,
			config.MinBookingNoticeMinutes,
			config.MaxPlayers,
		).
		Suffix(`ON CONFLICT (center_id, COALESCE(court_id, '')) DO UPDATE SET
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			slot_stride_minutes = EXCLUDED.slot_stride_minutes,
			advance_booking_days = EXCLUDED.advance_booking_days,
			min_booking_notice_minutes = EXCLUDED.min_booking_notice_minutes,
			max_players = EXCLUDED.max_players,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}

// Delete удаляет конфигурацию по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("center_slot_configs").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrConfigNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanConfig(row *sql.Row, op string) (*domain.CenterSlotsConfig, error) {
	config, err := scanConfigFields(row)
	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan config: %v", ErrScanRow, op, err)
	}
	return config, nil
}

func scanConfigFields(row rowScanner) (*domain.CenterSlotsConfig, error) {
	var config domain.CenterSlotsConfig
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&config.ID,
		&config.CenterID,
		&config.CourtID,
		&config.SlotDurationMinutes,
		&config.SlotStrideMinutes,
		&config.AdvanceBookingDays,
		&config.MinBookingNoticeMinutes,
		&config.MaxPlayers,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}
