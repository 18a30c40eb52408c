package repository

import (
	"errors"

	"github.com/carelink/carelink-api/internal/model"
)

// ErrNotFound is returned by lookups and updates addressing an unknown id
var ErrNotFound = errors.New("record not found")

// Repositories are backed by in-memory collections; lookups are linear scans,
// relation finders preserve insertion order, and mutations on the persisted
// entity types mirror the collection to disk on a best-effort basis. No
// operation takes a context: nothing blocks on the request path, and the
// trailing disk write is not cancellable.

type UserRepository interface {
	FindByID(id string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	Create(user *model.User) *model.User
	GetAll() []*model.User
}

type DoctorRepository interface {
	FindByID(id string) (*model.Doctor, error)
	FindByUserID(userID string) (*model.Doctor, error)
	Create(doctor *model.Doctor) *model.Doctor
	GetAll() []*model.Doctor
}

type PatientRepository interface {
	FindByID(id string) (*model.Patient, error)
	FindByUserID(userID string) (*model.Patient, error)
	Create(patient *model.Patient) *model.Patient
	GetAll() []*model.Patient
}

type PharmacyRepository interface {
	FindByID(id string) (*model.Pharmacy, error)
	FindByUserID(userID string) (*model.Pharmacy, error)
	Create(pharmacy *model.Pharmacy) *model.Pharmacy
	GetAll() []*model.Pharmacy
}

type AppointmentRepository interface {
	FindByID(id string) (*model.Appointment, error)
	FindByPatientID(patientID string) []*model.Appointment
	FindByDoctorID(doctorID string) []*model.Appointment
	Create(appointment *model.Appointment) *model.Appointment
	Update(id string, patch *model.AppointmentPatch) (*model.Appointment, error)
	GetAll() []*model.Appointment
}

type PrescriptionRepository interface {
	FindByID(id string) (*model.Prescription, error)
	FindByPatientID(patientID string) []*model.Prescription
	FindByDoctorID(doctorID string) []*model.Prescription
	Create(prescription *model.Prescription) *model.Prescription
	GetAll() []*model.Prescription
}

type OrderRepository interface {
	FindByID(id string) (*model.PrescriptionOrder, error)
	FindByPharmacyID(pharmacyID string) []*model.PrescriptionOrder
	FindByPrescriptionID(prescriptionID string) []*model.PrescriptionOrder
	Create(order *model.PrescriptionOrder) *model.PrescriptionOrder
	Update(id string, patch *model.OrderPatch) (*model.PrescriptionOrder, error)
	GetAll() []*model.PrescriptionOrder
}

type MessageRepository interface {
	FindByUserID(userID string) []*model.Message
	Create(message *model.Message) *model.Message
	GetAll() []*model.Message
}

type ReminderRepository interface {
	FindByID(id string) (*model.MedicineReminder, error)
	FindByPatientID(patientID string) []*model.MedicineReminder
	FindByPatientIDAndDate(patientID, date string) []*model.MedicineReminder
	Create(reminder *model.MedicineReminder) *model.MedicineReminder
	Update(id string, patch *model.ReminderPatch) (*model.MedicineReminder, error)
	// ResetForDate rolls every reminder dated other than date forward to date
	// with taken cleared. Returns the number of reminders touched.
	ResetForDate(date string) int
	GetAll() []*model.MedicineReminder
}

type InventoryRepository interface {
	FindByID(id string) (*model.InventoryItem, error)
	FindByPharmacyID(pharmacyID string) []*model.InventoryItem
	Create(item *model.InventoryItem) *model.InventoryItem
	Update(id string, patch *model.InventoryPatch) (*model.InventoryItem, error)
	Delete(id string) error
	GetAll() []*model.InventoryItem
}
