package model

import "time"

type Prescription struct {
	ID             string     `json:"id"`
	PatientID      string     `json:"patient_id"`
	DoctorID       string     `json:"doctor_id"`
	MedicationName string     `json:"medication_name"`
	Dosage         string     `json:"dosage,omitempty"`
	Frequency      string     `json:"frequency,omitempty"`
	DurationDays   int        `json:"duration_days,omitempty"`
	Quantity       int        `json:"quantity,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
}

type CreatePrescriptionRequest struct {
	PatientID      string `json:"patient_id" binding:"required"`
	MedicationName string `json:"medication_name" binding:"required"`
	Dosage         string `json:"dosage"`
	Frequency      string `json:"frequency"`
	DurationDays   int    `json:"duration_days"`
	Quantity       int    `json:"quantity"`
	Notes          string `json:"notes"`
}

// PrescriptionView is a Prescription joined with the counterpart's name
type PrescriptionView struct {
	Prescription
	PatientName string `json:"patient_name,omitempty"`
	DoctorName  string `json:"doctor_name,omitempty"`
}
