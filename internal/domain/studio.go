package domain

import (
	"slices"
	"time"
)

// MaxStudioPhotos caps a studio's photo gallery.
const MaxStudioPhotos = 30

type Location struct {
	Address    string   `json:"address,omitempty" validate:"omitempty,max=255"`
	City       string   `json:"city,omitempty" validate:"omitempty,max=120"`
	State      string   `json:"state,omitempty" validate:"omitempty,max=120"`
	Country    string   `json:"country,omitempty" validate:"omitempty,max=120"`
	PostalCode string   `json:"postalCode,omitempty" validate:"omitempty,max=20"`
	Latitude   *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude  *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

// BusinessHours is one weekday entry; Open/Close are "HH:MM".
type BusinessHours struct {
	Day    string `json:"day" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	Open   string `json:"open,omitempty" validate:"omitempty,datetime=15:04"`
	Close  string `json:"close,omitempty" validate:"omitempty,datetime=15:04"`
	Closed bool   `json:"closed"`
}

type Studio struct {
	ID             string          `json:"_id" gorm:"primaryKey;size:36"`
	Name           string          `json:"name" gorm:"not null"`
	Owners         []string        `json:"owners" gorm:"-"`
	Description    string          `json:"description"`
	ProfilePicture *Image          `json:"profilePicture,omitempty" gorm:"type:jsonb;serializer:json"`
	CoverImage     *Image          `json:"coverImage,omitempty" gorm:"type:jsonb;serializer:json"`
	Photos         []Image         `json:"photos" gorm:"type:jsonb;serializer:json"`
	Social         Social          `json:"social" gorm:"type:jsonb;serializer:json"`
	Location       Location        `json:"location" gorm:"type:jsonb;serializer:json"`
	BusinessHours  []BusinessHours `json:"businessHours" gorm:"column:business_hours;type:jsonb;serializer:json"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

func (Studio) TableName() string { return "studios" }

// HasOwner reports whether userID is listed among the studio's owners.
func (s *Studio) HasOwner(userID string) bool {
	return slices.Contains(s.Owners, userID)
}

// StudioOwner is a row of the studio <-> user ownership relation.
type StudioOwner struct {
	StudioID  string    `gorm:"primaryKey;size:36"`
	UserID    string    `gorm:"primaryKey;size:36;index"`
	CreatedAt time.Time
}

func (StudioOwner) TableName() string { return "studio_owners" }
