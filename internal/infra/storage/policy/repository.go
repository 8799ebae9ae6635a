package policy

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/UKC-FacilityService/internal/domain"
	"github.com/m04kA/UKC-FacilityService/pkg/dbmetrics"
	"github.com/m04kA/UKC-FacilityService/pkg/psqlbuilder"
)

// Repository репозиторий политик бронирования объектов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория политик
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByFacility возвращает политику объекта.
// Если политика не задана - ErrPolicyNotFound; вызывающий код подставляет
// domain.DefaultPolicy.
func (r *Repository) GetByFacility(ctx context.Context, facilityID int64) (*domain.FacilityPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"facility_id",
		"open_hour",
		"close_hour",
		"advance_days",
		"min_notice_minutes",
		"created_at",
		"updated_at",
	).
		From("facility_policies").
		Where(squirrel.Eq{"facility_id": facilityID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByFacility - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.FacilityPolicy
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.FacilityID,
		&p.OpenHour,
		&p.CloseHour,
		&p.AdvanceDays,
		&p.MinNoticeMinutes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFacility - scan policy: %v", ErrScanRow, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

// Upsert создает или обновляет политику объекта
func (r *Repository) Upsert(ctx context.Context, p *domain.FacilityPolicy) (*domain.FacilityPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("facility_policies").
		Columns(
			"facility_id",
			"open_hour",
			"close_hour",
			"advance_days",
			"min_notice_minutes",
		).
		Values(
			p.FacilityID,
			p.OpenHour,
			p.CloseHour,
			p.AdvanceDays,
			p.MinNoticeMinutes,
		).
		Suffix(`ON CONFLICT (facility_id) DO UPDATE SET
			open_hour = EXCLUDED.open_hour,
			close_hour = EXCLUDED.close_hour,
			advance_days = EXCLUDED.advance_days,
			min_notice_minutes = EXCLUDED.min_notice_minutes,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}
