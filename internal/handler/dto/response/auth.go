package response

import "studio-booking/internal/usecase/readmodel"

type LoginResponse struct {
	AccessToken string             `json:"access_token"`
	ExpiresIn   int64              `json:"expires_in"`
	Admin       *readmodel.AdminRM `json:"admin,omitempty"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}
