package dto

import "github.com/jymtan/contact-manager-be/internal/models"

// UserWithContacts is the admin view of a user together with their contacts.
type UserWithContacts struct {
	models.User
	Contacts []models.Contact `json:"contacts"`
}

// ImageUploadResponse confirms a stored profile image.
type ImageUploadResponse struct {
	ImagePath string `json:"imagePath"`
	ImageURL  string `json:"imageUrl"`
}
