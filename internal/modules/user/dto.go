package user

import "tattoohub/internal/domain"

type RegisterRequest struct {
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=6,max=72"`
	UserType domain.UserType `json:"userType" validate:"required,oneof=artist studio client"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
