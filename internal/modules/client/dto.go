package client

import "tattoohub/internal/domain"

type SaveRequest struct {
	FullName       *string       `json:"fullName" validate:"omitempty,max=120"`
	Phone          *string       `json:"phone" validate:"omitempty,max=32"`
	ProfilePicture *domain.Image `json:"profilePicture" validate:"omitempty"`
}
