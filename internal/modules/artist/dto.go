package artist

import "tattoohub/internal/domain"

// SaveRequest is the profile body. Nil fields leave the stored value untouched.
type SaveRequest struct {
	FullName       string          `json:"fullName" validate:"required,max=120"`
	ProfilePicture *domain.Image   `json:"profilePicture" validate:"omitempty"`
	CoverImage     *domain.Image   `json:"coverImage" validate:"omitempty"`
	Biography      *string         `json:"biography" validate:"omitempty,max=2000"`
	Workplaces     []string        `json:"workplaces" validate:"omitempty,max=10,dive,max=120"`
	TattooStyles   []string        `json:"tattooStyles" validate:"omitempty,max=20,dive,max=60"`
	Portfolio      []domain.Image  `json:"portfolio" validate:"omitempty,max=30,dive"`
	Social         *domain.Social  `json:"social" validate:"omitempty"`
	Pricing        *domain.Pricing `json:"pricing" validate:"omitempty"`
}

type PortfolioRequest struct {
	Images []domain.Image `json:"images" validate:"required,min=1,max=30,dive"`
}

type SearchQuery struct {
	Q    string `form:"q"`
	Size int    `form:"size"`
}

// ImageKind selects which artist picture an image request replaces.
type ImageKind int

const (
	ProfilePicture ImageKind = iota
	CoverImage
)
