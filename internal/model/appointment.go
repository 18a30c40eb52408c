package model

import "time"

type AppointmentStatus string

const (
	AppointmentStatusScheduled  AppointmentStatus = "scheduled"
	AppointmentStatusInProgress AppointmentStatus = "in-progress"
	AppointmentStatusCompleted  AppointmentStatus = "completed"
	AppointmentStatusCancelled  AppointmentStatus = "cancelled"
	AppointmentStatusNoShow     AppointmentStatus = "no-show"
)

// ValidAppointmentStatus reports whether s is one of the accepted status values
func ValidAppointmentStatus(s string) bool {
	switch AppointmentStatus(s) {
	case AppointmentStatusScheduled, AppointmentStatusInProgress,
		AppointmentStatusCompleted, AppointmentStatusCancelled,
		AppointmentStatusNoShow:
		return true
	}
	return false
}

type Appointment struct {
	ID              string            `json:"id"`
	PatientID       string            `json:"patient_id"`
	DoctorID        string            `json:"doctor_id"`
	AppointmentDate time.Time         `json:"appointment_date"`
	Status          AppointmentStatus `json:"status"`
	Notes           string            `json:"notes,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}

type CreateAppointmentRequest struct {
	DoctorID        string    `json:"doctor_id" binding:"required"`
	AppointmentDate time.Time `json:"appointment_date" binding:"required"`
	Notes           string    `json:"notes"`
}

type UpdateAppointmentRequest struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes"`
}

// AppointmentPatch carries the fields an update may change; nil means keep
type AppointmentPatch struct {
	AppointmentDate *time.Time
	Status          *AppointmentStatus
	Notes           *string
}

// AppointmentView is an Appointment joined with human-readable names
type AppointmentView struct {
	Appointment
	PatientName string `json:"patient_name,omitempty"`
	DoctorName  string `json:"doctor_name,omitempty"`
}
