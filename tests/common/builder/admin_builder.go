//go:build unit || e2e

package builder

import (
	"time"

	"studio-booking/internal/domain/admin"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AdminBuilder struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}

func NewAdminBuilder() *AdminBuilder {
	return &AdminBuilder{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		PasswordHash: "hashed_password",
		Role:         "admin",
		IsActive:     true,
	}
}

func (a *AdminBuilder) With(mutate func(*AdminBuilder)) *AdminBuilder {
	mutate(a)
	return a
}

// Build methods
func (a *AdminBuilder) BuildDomain() (*admin.Admin, error) {
	email, err := admin.NewEmail(a.Email)
	if err != nil {
		return nil, err
	}
	role, err := admin.NewRole(a.Role)
	if err != nil {
		return nil, err
	}
	return admin.Reconstruct(a.ID, email, a.PasswordHash, role, nil, a.IsActive, time.Now()), nil
}

func (a *AdminBuilder) BuildInfra() sqlc.Admins {
	now := time.Now()
	return sqlc.Admins{
		ID:           a.ID,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Role:         a.Role,
		IsActive:     a.IsActive,
		LastLogin:    pgtype.Timestamptz{},
		CreatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (a *AdminBuilder) BuildReadModel() *readmodel.AdminRM {
	return &readmodel.AdminRM{
		ID:       a.ID,
		Email:    a.Email,
		Role:     a.Role,
		IsActive: a.IsActive,
	}
}

// Fluent builder methods
func (a *AdminBuilder) WithEmail(email string) *AdminBuilder {
	a.Email = email
	return a
}

func (a *AdminBuilder) WithRole(role string) *AdminBuilder {
	a.Role = role
	return a
}

func (a *AdminBuilder) WithPasswordHash(hash string) *AdminBuilder {
	a.PasswordHash = hash
	return a
}

func (a *AdminBuilder) AsStaff() *AdminBuilder {
	a.Role = "staff"
	return a
}

func (a *AdminBuilder) AsInactive() *AdminBuilder {
	a.IsActive = false
	return a
}
