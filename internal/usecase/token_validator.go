package usecase

import (
	"studio-booking/internal/domain/admin"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/pkg/jwt"
	"studio-booking/internal/usecase/shared"
)

// TokenValidator turns an access token into the caller it was issued to.
type TokenValidator interface {
	Authenticate(accessToken string) (shared.Principal, error)
}

type accessTokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &accessTokenValidator{jwtService: jwtService}
}

// Authenticate rejects refresh tokens; only the refresh endpoint takes those.
func (v *accessTokenValidator) Authenticate(accessToken string) (shared.Principal, error) {
	claims, err := v.jwtService.ValidateToken(accessToken)
	if err != nil {
		return shared.Anonymous(), errs.Mark(err, errs.ErrUnauthorized)
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return shared.Anonymous(), errs.Mark(errs.Wrapf(jwt.ErrInvalidToken, "%s token used for access", claims.TokenType), errs.ErrUnauthorized)
	}

	role, err := admin.NewRole(claims.Role)
	if err != nil {
		return shared.Anonymous(), errs.Mark(err, errs.ErrUnauthorized)
	}
	return shared.NewPrincipal(claims.AdminID, role), nil
}
