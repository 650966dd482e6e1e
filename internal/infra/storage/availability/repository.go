package availability

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/PCB-BookingService/internal/domain"
	"github.com/m04kA/PCB-BookingService/pkg/dbmetrics"
	"github.com/m04kA/PCB-BookingService/pkg/psqlbuilder"
	"github.com/m04kA/PCB-BookingService/pkg/types"
)

// Коды ошибок PostgreSQL, означающие проигранную гонку за слот
const (
	uniqueViolation    = "23505" // первичный ключ (court_id, slot_date, start_time)
	exclusionViolation = "23P01" // gist EXCLUDE по пересечению интервалов
)

// reserveQuery условная вставка удержания: одна атомарная запись, решающая гонку.
// Вставка проходит только если ни одно существующее удержание не пересекается
// с запрошенным интервалом; конфликт по ключу или по EXCLUDE-ограничению
// (court_id, slot_date, [start_time, end_time)) обрабатывается как проигрыш гонки.
const reserveQuery = `
INSERT INTO slot_holds (court_id, slot_date, start_time, end_time, booking_id)
SELECT $1, $2, $3, $4, $5
WHERE NOT EXISTS (
    SELECT 1 FROM slot_holds
    WHERE court_id = $1 AND slot_date = $2 AND start_time < $4 AND end_time > $3
)
ON CONFLICT (court_id, slot_date, start_time) DO NOTHING`

// Repository индекс занятости слотов: единственный авторитетный источник того,
// какие интервалы (court, date, time) заняты бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория занятости
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Reserve атомарно удерживает интервал за бронированием
// Из конкурирующих вызовов на один и тот же интервал выигрывает ровно один;
// остальные получают ErrSlotTaken. Повторный вызов с тем же bookingID
// идемпотентен и возвращает успех.
func (r *Repository) Reserve(ctx context.Context, hold *domain.SlotHold) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	result, err := executor.ExecContext(ctx, reserveQuery,
		hold.CourtID,
		hold.SlotDate,
		hold.StartTime,
		hold.EndTime,
		hold.BookingID,
	)

	if err != nil {
		if isConstraintRace(err) {
			return r.resolveReserveConflict(ctx, hold)
		}
		return fmt.Errorf("%w: Reserve - execute insert: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Reserve - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return r.resolveReserveConflict(ctx, hold)
	}

	return nil
}

// resolveReserveConflict различает повтор собственного запроса и проигранную гонку
func (r *Repository) resolveReserveConflict(ctx context.Context, hold *domain.SlotHold) error {
	holderID, err := r.getHolder(ctx, hold.CourtID, hold.SlotDate, hold.StartTime)
	if err != nil {
		return err
	}

	if holderID != nil && *holderID == hold.BookingID {
		// Тот же holder - повтор после таймаута, удержание уже наше
		return nil
	}

	return ErrSlotTaken
}

// IsFree проверяет, что интервал свободен (ни одно удержание с ним не пересекается)
// Результат является снимком и может устареть к моменту Reserve - это ожидаемо
func (r *Repository) IsFree(ctx context.Context, courtID string, date time.Time, start, end types.TimeString) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("slot_holds").
		Where(squirrel.Eq{"court_id": courtID, "slot_date": date}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: IsFree - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsFree - scan: %v", ErrScanRow, err)
	}

	return false, nil
}

// Release освобождает удержание интервала
// Уже свободный слот - успех (no-op); слот, удержанный другим бронированием, -
// ErrHolderMismatch (защита от устаревшей отмены)
func (r *Repository) Release(ctx context.Context, courtID string, date time.Time, start types.TimeString, expectedBookingID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("slot_holds").
		Where(squirrel.Eq{
			"court_id":   courtID,
			"slot_date":  date,
			"start_time": start,
			"booking_id": expectedBookingID,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Release - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Release - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Release - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected > 0 {
		return nil
	}

	// Ничего не удалили: либо слот уже свободен, либо удержан другим бронированием
	holderID, err := r.getHolder(ctx, courtID, date, start)
	if err != nil {
		return err
	}

	if holderID == nil {
		return nil
	}

	return fmt.Errorf("%w: expected %s, held by %s", ErrHolderMismatch, expectedBookingID, *holderID)
}

// ListHolds возвращает все удержания корта на дату
// Используется генератором слотов для аннотации доступности
func (r *Repository) ListHolds(ctx context.Context, courtID string, date time.Time) ([]*domain.SlotHold, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"court_id",
		"slot_date",
		"start_time",
		"end_time",
		"booking_id",
		"created_at",
	).
		From("slot_holds").
		Where(squirrel.Eq{"court_id": courtID, "slot_date": date}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListHolds - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListHolds - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	holds := make([]*domain.SlotHold, 0)
	for rows.Next() {
		var hold domain.SlotHold
		var createdAt sql.NullTime

		err := rows.Scan(
			&hold.CourtID,
			&hold.SlotDate,
			&hold.StartTime,
			&hold.EndTime,
			&hold.BookingID,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListHolds - scan row: %v", ErrScanRow, err)
		}

		hold.CreatedAt = createdAt.Time
		holds = append(holds, &hold)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListHolds - rows error: %v", ErrScanRow, err)
	}

	return holds, nil
}

// getHolder возвращает booking_id удержания по точному ключу слота, nil если слот свободен
func (r *Repository) getHolder(ctx context.Context, courtID string, date time.Time, start types.TimeString) (*string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("booking_id").
		From("slot_holds").
		Where(squirrel.Eq{
			"court_id":   courtID,
			"slot_date":  date,
			"start_time": start,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getHolder - build select query: %v", ErrBuildQuery, err)
	}

	var holderID string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&holderID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getHolder - scan: %v", ErrScanRow, err)
	}

	return &holderID, nil
}

// isConstraintRace проверяет, что ошибка вызвана проигранной гонкой за слот
func isConstraintRace(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		code := string(pqErr.Code)
		return code == uniqueViolation || code == exclusionViolation
	}
	return false
}
