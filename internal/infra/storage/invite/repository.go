package invite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/UKC-FacilityService/internal/domain"
	"github.com/m04kA/UKC-FacilityService/pkg/dbmetrics"
	"github.com/m04kA/UKC-FacilityService/pkg/psqlbuilder"
)

// Repository репозиторий гостевых приглашений
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория приглашений
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое приглашение
func (r *Repository) Create(ctx context.Context, inv *domain.Invite) (*domain.Invite, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("invites").
		Columns(
			"host_user_id",
			"visitor_name",
			"visit_date",
			"pass_code",
		).
		Values(
			inv.HostUserID,
			inv.VisitorName,
			inv.VisitDate,
			inv.PassCode,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&inv.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	inv.CreatedAt = createdAt.Time

	return inv, nil
}

// GetByPassCode возвращает приглашение по коду пропуска (проверка на проходной)
func (r *Repository) GetByPassCode(ctx context.Context, passCode string) (*domain.Invite, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"host_user_id",
		"visitor_name",
		"visit_date",
		"pass_code",
		"created_at",
	).
		From("invites").
		Where(squirrel.Eq{"pass_code": passCode}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPassCode - build select query: %v", ErrBuildQuery, err)
	}

	var inv domain.Invite
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&inv.ID,
		&inv.HostUserID,
		&inv.VisitorName,
		&inv.VisitDate,
		&inv.PassCode,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrInviteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPassCode - scan invite: %v", ErrScanRow, err)
	}

	inv.CreatedAt = createdAt.Time

	return &inv, nil
}
