package block

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/avdeevlv/barber-booking-service/internal/domain"
	"github.com/avdeevlv/barber-booking-service/pkg/dbmetrics"
	"github.com/avdeevlv/barber-booking-service/pkg/psqlbuilder"
	"github.com/avdeevlv/barber-booking-service/pkg/types"
)

var blockColumns = []string{
	"id",
	"block_date",
	"kind",
	"start_time",
	"end_time",
	"reason",
	"created_by",
	"created_at",
}

// Repository репозиторий для работы с блокировками администратора
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую блокировку.
// Блокировки иммутабельны после создания: методов обновления нет,
// только создание и удаление.
func (r *Repository) Create(ctx context.Context, block *domain.AdHocBlock) (*domain.AdHocBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocks").
		Columns(
			"block_date",
			"kind",
			"start_time",
			"end_time",
			"reason",
			"created_by",
		).
		Values(
			block.Date,
			block.Kind,
			nullableTime(block.StartTime),
			nullableTime(block.EndTime),
			block.Reason,
			block.CreatedBy,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&block.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	block.CreatedAt = createdAt.Time

	return block, nil
}

// GetByID получает блокировку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.AdHocBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("blocks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	block, err := scanBlock(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBlockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan block: %v", ErrScanRow, err)
	}

	return block, nil
}

// GetByDate получает все блокировки на конкретную дату
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.AdHocBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("blocks").
		Where(squirrel.Eq{"block_date": date}).
		OrderBy("start_time ASC NULLS FIRST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBlocks(rows)
}

// GetByPeriod получает блокировки за период [from, to] включительно —
// используется месячным видом календаря
func (r *Repository) GetByPeriod(ctx context.Context, from, to time.Time) ([]*domain.AdHocBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("blocks").
		Where(squirrel.GtOrEq{"block_date": from}).
		Where(squirrel.LtOrEq{"block_date": to}).
		OrderBy("block_date ASC, start_time ASC NULLS FIRST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPeriod - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPeriod - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBlocks(rows)
}

// Delete удаляет блокировку — единственный способ снять её
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocks").
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
		return ErrBlockNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// nullableTime конвертирует опциональное время в аргумент запроса
func nullableTime(ts *types.TimeString) interface{} {
	if ts == nil {
		return nil
	}
	return *ts
}

func scanBlock(row rowScanner) (*domain.AdHocBlock, error) {
	var block domain.AdHocBlock
	var startTime, endTime sql.NullString
	var createdAt sql.NullTime

	err := row.Scan(
		&block.ID,
		&block.Date,
		&block.Kind,
		&startTime,
		&endTime,
		&block.Reason,
		&block.CreatedBy,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if startTime.Valid {
		ts, err := parseTimeColumn(startTime.String)
		if err != nil {
			return nil, err
		}
		block.StartTime = &ts
	}
	if endTime.Valid {
		ts, err := parseTimeColumn(endTime.String)
		if err != nil {
			return nil, err
		}
		block.EndTime = &ts
	}

	block.CreatedAt = createdAt.Time

	return &block, nil
}

// parseTimeColumn парсит значение колонки TIME ("HH:MM:SS") в TimeString
func parseTimeColumn(s string) (types.TimeString, error) {
	if len(s) > 5 {
		s = s[:5]
	}
	return types.NewTimeStringFromString(s)
}

func scanBlocks(rows *sql.Rows) ([]*domain.AdHocBlock, error) {
	blocks := make([]*domain.AdHocBlock, 0)

	for rows.Next() {
		block, err := scanBlock(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBlocks - scan row: %v", ErrScanRow, err)
		}
		blocks = append(blocks, block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBlocks - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}
