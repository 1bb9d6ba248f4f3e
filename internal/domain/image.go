package domain

// Image is a reference to a hosted picture. PublicID is the storage key
// returned by the upload endpoint (or by an external image host).
type Image struct {
	PublicID string `json:"publicId" validate:"required,max=512"`
	URL      string `json:"url,omitempty" validate:"omitempty,url"`
}

// Social holds optional contact links shared by artists and studios.
type Social struct {
	Facebook  *string `json:"facebook" validate:"omitempty,url"`
	Instagram *string `json:"instagram" validate:"omitempty,url"`
	Website   *string `json:"website" validate:"omitempty,url"`
	Phone     *string `json:"phone" validate:"omitempty,max=32"`
	Email     *string `json:"email" validate:"omitempty,email"`
}
