package domain

import "time"

// Upload is a stored image. ID doubles as the publicId handed back to callers.
type Upload struct {
	ID        string    `gorm:"column:id;primaryKey;size:36" json:"publicId"`
	UserID    string    `gorm:"column:user_id;size:36;index" json:"user"`
	Key       string    `gorm:"column:object_key" json:"-"`
	URL       string    `gorm:"column:url" json:"url"`
	MimeType  string    `gorm:"column:mime_type" json:"mimeType"`
	Size      int64     `gorm:"column:size" json:"size"`
	Width     int       `gorm:"column:width" json:"width"`
	Height    int       `gorm:"column:height" json:"height"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Upload) TableName() string { return "uploads" }

// Image returns the reference form stored on profiles.
func (u *Upload) Image() Image {
	return Image{PublicID: u.ID, URL: u.URL}
}
