package domain

import "time"

// MaxPortfolioItems caps an artist's portfolio.
const MaxPortfolioItems = 30

type Pricing struct {
	HourRate *float64 `json:"hourRate,omitempty" validate:"omitempty,gte=0"`
	MinRate  *float64 `json:"minRate,omitempty" validate:"omitempty,gte=0"`
	Currency string   `json:"currency,omitempty" validate:"omitempty,len=3"`
}

type Artist struct {
	ID             string    `json:"_id" gorm:"primaryKey;size:36"`
	UserID         string    `json:"user" gorm:"column:user_id;size:36;uniqueIndex;not null"`
	FullName       string    `json:"fullName" gorm:"column:full_name;not null"`
	ProfilePicture *Image    `json:"profilePicture,omitempty" gorm:"type:jsonb;serializer:json"`
	CoverImage     *Image    `json:"coverImage,omitempty" gorm:"type:jsonb;serializer:json"`
	Biography      string    `json:"biography"`
	Workplaces     []string  `json:"workplaces" gorm:"type:jsonb;serializer:json"`
	TattooStyles   []string  `json:"tattooStyles" gorm:"type:jsonb;serializer:json"`
	Portfolio      []Image   `json:"portfolio" gorm:"type:jsonb;serializer:json"`
	Social         Social    `json:"social" gorm:"type:jsonb;serializer:json"`
	Pricing        Pricing   `json:"pricing" gorm:"type:jsonb;serializer:json"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (Artist) TableName() string { return "artists" }
