package studio

import "tattoohub/internal/domain"

// SaveRequest creates or updates a studio. When ID is empty the requester's
// own studio is updated, if there is one.
type SaveRequest struct {
	ID             string                 `json:"_id" validate:"omitempty,max=64"`
	Name           string                 `json:"name" validate:"required,max=120"`
	Owners         []string               `json:"owners" validate:"omitempty,max=20,dive,required"`
	Description    *string                `json:"description" validate:"omitempty,max=2000"`
	ProfilePicture *domain.Image          `json:"profilePicture" validate:"omitempty"`
	CoverImage     *domain.Image          `json:"coverImage" validate:"omitempty"`
	Photos         []domain.Image         `json:"photos" validate:"omitempty,max=30,dive"`
	Social         *domain.Social         `json:"social" validate:"omitempty"`
	Location       *domain.Location       `json:"location" validate:"omitempty"`
	BusinessHours  []domain.BusinessHours `json:"businessHours" validate:"omitempty,max=7,dive"`
}

const (
	KindProfile = "profile"
	KindCover   = "cover"
)

type ImageRequest struct {
	StudioID string `json:"studioId" validate:"required"`
	Kind     string `json:"kind" validate:"required,oneof=profile cover"`
	domain.Image
}

type ImagesRequest struct {
	StudioID string         `json:"studioId" validate:"required"`
	Images   []domain.Image `json:"images" validate:"required,min=1,max=30,dive"`
}
