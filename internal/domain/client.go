package domain

import "time"

type Client struct {
	ID             string    `json:"_id" gorm:"primaryKey;size:36"`
	UserID         string    `json:"user" gorm:"column:user_id;size:36;uniqueIndex;not null"`
	FullName       string    `json:"fullName,omitempty" gorm:"column:full_name"`
	Phone          string    `json:"phone,omitempty"`
	ProfilePicture *Image    `json:"profilePicture,omitempty" gorm:"type:jsonb;serializer:json"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (Client) TableName() string { return "clients" }
