package model

type Doctor struct {
	ID              string `json:"id"`
	UserID          string `json:"user_id"`
	LicenseNumber   string `json:"license_number"`
	Specialization  string `json:"specialization,omitempty"`
	Bio             string `json:"bio,omitempty"`
	ProfileImageURL string `json:"profile_image_url,omitempty"`
}

// DoctorListing is a Doctor joined with its user record for the public directory
type DoctorListing struct {
	Doctor
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}
