package domain

import "time"

type UserType string

const (
	UserTypeArtist UserType = "artist"
	UserTypeStudio UserType = "studio"
	UserTypeClient UserType = "client"
)

type User struct {
	ID             string    `json:"_id" gorm:"primaryKey;size:36"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash   string    `json:"-" gorm:"column:password;not null"`
	UserType       UserType  `json:"userType" gorm:"column:user_type;not null"`
	ProfilePicture *Image    `json:"profilePicture,omitempty" gorm:"type:jsonb;serializer:json"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }
