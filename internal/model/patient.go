package model

type Patient struct {
	ID                    string `json:"id"`
	UserID                string `json:"user_id"`
	DateOfBirth           string `json:"date_of_birth,omitempty"`
	Gender                string `json:"gender,omitempty"`
	BloodType             string `json:"blood_type,omitempty"`
	Allergies             string `json:"allergies,omitempty"`
	ChronicConditions     string `json:"chronic_conditions,omitempty"`
	EmergencyContactName  string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string `json:"emergency_contact_phone,omitempty"`
}

// PatientSummary is the roster view doctors see: patient joined with user
// contact details plus fields derived at read time (age, follow-up status).
type PatientSummary struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Age               int    `json:"age"`
	Status            string `json:"status"`
	Email             string `json:"email,omitempty"`
	Phone             string `json:"phone,omitempty"`
	Gender            string `json:"gender,omitempty"`
	BloodType         string `json:"blood_type,omitempty"`
	Allergies         string `json:"allergies,omitempty"`
	ChronicConditions string `json:"chronic_conditions,omitempty"`
}
