package upload

import "errors"

var (
	ErrUploadNotFound  = errors.New("Upload not found")
	ErrNotOwner        = errors.New("You do not own this upload")
	ErrFileTooLarge    = errors.New("File exceeds the 10MB limit")
	ErrInvalidMimeType = errors.New("Only JPEG, PNG, GIF and WebP images are allowed")
	ErrEmptyFile       = errors.New("File is empty")
	ErrNoFile          = errors.New("No file provided")
)
