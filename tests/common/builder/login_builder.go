//go:build unit || e2e

package builder

import (
	reqdto "studio-booking/internal/handler/dto/request"
)

// LoginBuilder produces login request bodies; the default matches
// NewAdminBuilder's account.
type LoginBuilder struct {
	req reqdto.LoginRequest
}

func NewLoginBuilder() *LoginBuilder {
	return &LoginBuilder{req: reqdto.LoginRequest{
		Email:    "admin@example.com",
		Password: "password123",
	}}
}

// For logs in as the account a describes.
func (b *LoginBuilder) For(a *AdminBuilder) *LoginBuilder {
	b.req.Email = a.Email
	return b
}

func (b *LoginBuilder) WithPassword(password string) *LoginBuilder {
	b.req.Password = password
	return b
}

func (b *LoginBuilder) Build() reqdto.LoginRequest {
	return b.req
}
