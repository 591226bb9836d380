package repository

import (
	"context"

	"studio-booking/internal/domain/admin"
	"studio-booking/internal/infra"
	"studio-booking/internal/infra/repository/converter"
	sqlc "studio-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type AdminWriteQueries interface {
	CreateAdmin(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAdminParams) (sqlc.Admins, error)
	UpdateAdminLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
}

type AdminRepository struct {
	queries AdminWriteQueries
	db      sqlc.DBTX
}

func NewAdminRepository(queries AdminWriteQueries, db sqlc.DBTX) *AdminRepository {
	return &AdminRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AdminRepository) Create(ctx context.Context, tx sqlc.DBTX, a *admin.Admin) (uuid.UUID, error) {
	row, err := r.queries.CreateAdmin(ctx, tx, converter.AdminToCreateParams(a))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create admin", err)
	}
	return row.ID, nil
}

func (r *AdminRepository) UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, adminID uuid.UUID) error {
	if err := r.queries.UpdateAdminLastLogin(ctx, tx, adminID); err != nil {
		return infra.WrapRepoErr("failed to update admin last login", err)
	}
	return nil
}
