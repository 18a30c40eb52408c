package model

type Pharmacy struct {
	ID             string `json:"id"`
	UserID         string `json:"user_id"`
	PharmacyName   string `json:"pharmacy_name"`
	LicenseNumber  string `json:"license_number"`
	Address        string `json:"address,omitempty"`
	Phone          string `json:"phone,omitempty"`
	OperatingHours string `json:"operating_hours,omitempty"`
}

// PharmacyListing is a Pharmacy joined with its user record for the public
// directory. Phone comes from the user account when present.
type PharmacyListing struct {
	ID             string `json:"id"`
	UserID         string `json:"user_id"`
	PharmacyName   string `json:"pharmacy_name"`
	LicenseNumber  string `json:"license_number"`
	Address        string `json:"address,omitempty"`
	OperatingHours string `json:"operating_hours,omitempty"`
	Name           string `json:"name,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
}
