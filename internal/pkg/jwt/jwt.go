// Package jwt issues and verifies the HS256 tokens carried by admin sessions.
package jwt

import (
	"errors"
	"time"

	"studio-booking/internal/domain/admin"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

const (
	Issuer = "studio-booking"

	// tolerated drift between the signing and verifying clocks
	leeway = 5 * time.Second
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

type Claims struct {
	AdminID   uuid.UUID `json:"admin_id"`
	Role      string    `json:"role"`
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// Pair is what a successful login or refresh hands back.
type Pair struct {
	AccessToken  string
	RefreshToken string
}

type Service struct {
	secretKey       []byte
	accessDuration  time.Duration
	refreshDuration time.Duration
	now             func() time.Time
	parser          *jwt.Parser
}

func NewService(secretKey string, accessDuration, refreshDuration time.Duration) *Service {
	return NewServiceWithClock(secretKey, accessDuration, refreshDuration, time.Now)
}

// NewServiceWithClock signs and verifies against now instead of the wall clock.
func NewServiceWithClock(secretKey string, accessDuration, refreshDuration time.Duration, now func() time.Time) *Service {
	s := &Service{
		secretKey:       []byte(secretKey),
		accessDuration:  accessDuration,
		refreshDuration: refreshDuration,
		now:             now,
	}
	s.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(leeway),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	return s
}

func (s *Service) AccessDuration() time.Duration  { return s.accessDuration }
func (s *Service) RefreshDuration() time.Duration { return s.refreshDuration }

func (s *Service) GenerateAccessToken(adminID uuid.UUID, role admin.Role) (string, error) {
	return s.sign(adminID, role, TokenTypeAccess, s.accessDuration)
}

func (s *Service) GenerateRefreshToken(adminID uuid.UUID, role admin.Role) (string, error) {
	return s.sign(adminID, role, TokenTypeRefresh, s.refreshDuration)
}

// GeneratePair signs a fresh access and refresh token for the same admin.
func (s *Service) GeneratePair(adminID uuid.UUID, role admin.Role) (Pair, error) {
	access, err := s.GenerateAccessToken(adminID, role)
	if err != nil {
		return Pair{}, err
	}
	refresh, err := s.GenerateRefreshToken(adminID, role)
	if err != nil {
		return Pair{}, err
	}
	return Pair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *Service) sign(adminID uuid.UUID, role admin.Role, typ TokenType, ttl time.Duration) (string, error) {
	now := s.now()
	claims := Claims{
		AdminID:   adminID,
		Role:      role.String(),
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    Issuer,
			Subject:   adminID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
}

// ValidateToken checks signature, issuer and lifetime. Every failure other
// than expiry collapses to ErrInvalidToken.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secretKey, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, ErrInvalidToken
	case claims.AdminID == uuid.Nil:
		return nil, ErrInvalidToken
	}
	return claims, nil
}
