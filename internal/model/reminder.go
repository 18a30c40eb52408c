package model

import "time"

// MedicineReminder is a per-day medication reminder. ReminderTime is "HH:MM"
// and ReminderDate is "YYYY-MM-DD"; stale dates are rolled forward to today
// (with taken reset) when the store initializes.
type MedicineReminder struct {
	ID             string    `json:"id"`
	PatientID      string    `json:"patient_id"`
	PrescriptionID string    `json:"prescription_id"`
	ReminderTime   string    `json:"reminder_time"`
	ReminderDate   string    `json:"reminder_date"`
	Taken          bool      `json:"taken"`
	CreatedAt      time.Time `json:"created_at"`
}

type UpdateReminderRequest struct {
	Taken *bool `json:"taken" binding:"required"`
}

// ReminderPatch carries updatable reminder fields; nil means keep
type ReminderPatch struct {
	ReminderTime *string
	ReminderDate *string
	Taken        *bool
}

// ReminderView is a reminder joined with prescription medication details
type ReminderView struct {
	MedicineReminder
	MedicationName string `json:"medication_name"`
	Dosage         string `json:"dosage"`
}
