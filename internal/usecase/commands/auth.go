package commands

import (
	"context"
	"log/slog"

	"studio-booking/internal/domain/admin"
	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/pkg/jwt"
	"studio-booking/internal/pkg/password"
	"studio-booking/internal/usecase/queries"
	"studio-booking/internal/usecase/readmodel"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.Sentinel(admin.ErrInvalidCredentials.Error(), errs.ErrUnauthorized)
	ErrAdminInactive      = errs.Sentinel("admin inactive", errs.ErrUnauthorized)
	ErrTokenValidation    = errs.Sentinel("token validation failed", errs.ErrUnauthorized)
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	AdminID   uuid.UUID
	Role      admin.Role
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	// EnsureBootstrapAdmin creates the first admin account when it does not
	// exist yet. It is a no-op otherwise.
	EnsureBootstrapAdmin(ctx context.Context, email, password string) error
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.AdminReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.AdminReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, pw string) (*LoginResult, error) {
	credentials, err := admin.NewCredentials(email, pw)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	account, err := a.validateAdmin(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := admin.NewRole(account.Role)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrUnauthorized)
	}

	pair, err := a.issue(account.ID, role)
	if err != nil {
		return nil, err
	}

	// last_login is informational; a failed update does not fail the login
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Admins().UpdateLastLogin(ctx, tx.DB(), account.ID)
	})
	if err != nil {
		slog.Warn("failed to update last login", "admin_id", account.ID, "error", err.Error())
	}

	return &LoginResult{
		AdminID:   account.ID,
		Role:      role,
		TokenPair: pair,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrUnauthorized)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := admin.NewRole(claims.Role)
	if err != nil {
		return nil, ErrTokenValidation
	}

	account, err := a.readStore.FindByID(ctx, claims.AdminID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTokenValidation
		}
		return nil, shared.Storage(err, "failed to load admin")
	}
	if !account.IsActive {
		return nil, ErrAdminInactive
	}

	return a.issue(claims.AdminID, role)
}

func (a *authCommandsImpl) EnsureBootstrapAdmin(ctx context.Context, email, pw string) error {
	credentials, err := admin.NewCredentials(email, pw)
	if err != nil {
		return shared.Validation(err)
	}

	_, _, err = a.readStore.FindByEmail(ctx, credentials.Email().Value())
	switch {
	case err == nil:
		return nil
	case !infra.IsKind(err, infra.KindNotFound):
		return shared.Storage(err, "failed to look up bootstrap admin")
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return errs.Wrap(err, "failed to hash bootstrap admin password")
	}

	account := admin.NewAdmin(credentials.Email(), hash, admin.RoleAdmin)
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, cerr := tx.Admins().Create(ctx, tx.DB(), account)
		if infra.IsKind(cerr, infra.KindDuplicateKey) {
			// another instance seeded it first
			return nil
		}
		return cerr
	})
	if err != nil {
		return shared.FromRepo(err, "admin")
	}

	slog.Info("bootstrap admin created", "email", credentials.Email().Value())
	return nil
}

func (a *authCommandsImpl) issue(adminID uuid.UUID, role admin.Role) (*TokenPair, error) {
	pair, err := a.jwtService.GeneratePair(adminID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}

func (a *authCommandsImpl) validateAdmin(ctx context.Context, credentials admin.Credentials) (*readmodel.AdminRM, error) {
	account, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// same error as a password mismatch so emails cannot be enumerated
			return nil, ErrInvalidCredentials
		}
		return nil, shared.Storage(err, "failed to load admin")
	}

	if !account.IsActive {
		return nil, ErrAdminInactive
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}
