package domain

type TattooStyle struct {
	ID          string `json:"_id" gorm:"primaryKey;size:36"`
	Name        string `json:"name" gorm:"uniqueIndex;not null"`
	Description string `json:"description,omitempty"`
}

func (TattooStyle) TableName() string { return "tattoo_styles" }
