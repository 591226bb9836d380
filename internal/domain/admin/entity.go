package admin

import (
	"time"

	"github.com/google/uuid"
)

// Admin is an operator account allowed to run gated booking operations.
type Admin struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
}

func NewAdmin(email Email, passwordHash string, role Role) *Admin {
	return &Admin{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
	}
}

func Reconstruct(id uuid.UUID, email Email, passwordHash string, role Role, lastLogin *time.Time, isActive bool, createdAt time.Time) *Admin {
	return &Admin{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		lastLogin:    lastLogin,
		isActive:     isActive,
		createdAt:    createdAt,
	}
}

func (a *Admin) ID() uuid.UUID         { return a.id }
func (a *Admin) Email() Email          { return a.email }
func (a *Admin) PasswordHash() string  { return a.passwordHash }
func (a *Admin) Role() Role            { return a.role }
func (a *Admin) LastLogin() *time.Time { return a.lastLogin }
func (a *Admin) IsActive() bool        { return a.isActive }
func (a *Admin) CreatedAt() time.Time  { return a.createdAt }
