package converter

import (
	"studio-booking/internal/domain/admin"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/pgconv"
)

func AdminToCreateParams(a *admin.Admin) sqlc.CreateAdminParams {
	return sqlc.CreateAdminParams{
		ID:           a.ID(),
		Email:        a.Email().Value(),
		PasswordHash: a.PasswordHash(),
		Role:         a.Role().String(),
		IsActive:     a.IsActive(),
	}
}

func AdminFromRow(row sqlc.Admins) (*admin.Admin, error) {
	email, err := admin.NewEmail(row.Email)
	if err != nil {
		return nil, err
	}
	role, err := admin.NewRole(row.Role)
	if err != nil {
		return nil, err
	}
	return admin.Reconstruct(
		row.ID,
		email,
		row.PasswordHash,
		role,
		pgconv.TimePtrFromPgtype(row.LastLogin),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
