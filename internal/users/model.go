package users

import "time"

// Preferences are the per-user defaults applied to new generation requests.
type Preferences struct {
	DefaultTone   string `json:"defaultTone"`
	DefaultLength string `json:"defaultLength"`
}

type User struct {
	ID          string      `json:"id"`
	Email       string      `json:"email"`
	FullName    string      `json:"fullName"`
	PictureURL  string      `json:"pictureUrl"`
	Preferences Preferences `json:"preferences"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
