package readstore

import (
	"context"

	"studio-booking/internal/infra"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/pgconv"
	"studio-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type AdminReadQueries interface {
	GetAdminByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Admins, error)
	GetActiveAdminByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Admins, error)
}

type AdminReadStore struct {
	queries AdminReadQueries
	db      sqlc.DBTX
}

func NewAdminReadStore(queries AdminReadQueries, db sqlc.DBTX) *AdminReadStore {
	return &AdminReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AdminReadStore) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AdminRM, error) {
	row, err := r.queries.GetAdminByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find admin by ID", err)
	}
	return toAdminRM(row), nil
}

// FindByEmail also returns the password hash for credential checks.
func (r *AdminReadStore) FindByEmail(ctx context.Context, email string) (*readmodel.AdminRM, string, error) {
	row, err := r.queries.GetActiveAdminByEmail(ctx, r.db, email)
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to find admin by email", err)
	}
	return toAdminRM(row), row.PasswordHash, nil
}

func toAdminRM(row sqlc.Admins) *readmodel.AdminRM {
	return &readmodel.AdminRM{
		ID:        row.ID,
		Email:     row.Email,
		Role:      row.Role,
		IsActive:  row.IsActive,
		LastLogin: pgconv.TimePtrFromPgtype(row.LastLogin),
	}
}
