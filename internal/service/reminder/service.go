package reminder

import (
	"time"

	"github.com/carelink/carelink-api/internal/model"
	"github.com/carelink/carelink-api/internal/repository"
	apperr "github.com/carelink/carelink-api/pkg/errors"
)

type Service struct {
	reminders     repository.ReminderRepository
	prescriptions repository.PrescriptionRepository
	patients      repository.PatientRepository
}

func NewService(
	reminders repository.ReminderRepository,
	prescriptions repository.PrescriptionRepository,
	patients repository.PatientRepository,
) *Service {
	return &Service{
		reminders:     reminders,
		prescriptions: prescriptions,
		patients:      patients,
	}
}

// ListToday returns the patient's reminders for the current day, joined with
// medication details from the underlying prescription.
func (s *Service) ListToday(actor *model.AuthUser, now time.Time) ([]*model.ReminderView, error) {
	if actor.Role != model.RolePatient {
		return nil, apperr.Forbidden("only patients have medicine reminders", nil)
	}

	patient, err := s.patients.FindByUserID(actor.ID)
	if err != nil {
		return nil, apperr.NotFound("patient profile", err)
	}

	today := now.Format("2006-01-02")
	views := []*model.ReminderView{}
	for _, rem := range s.reminders.FindByPatientIDAndDate(patient.ID, today) {
		view := &model.ReminderView{
			MedicineReminder: *rem,
			MedicationName:   "Unknown Medication",
		}
		if rx, err := s.prescriptions.FindByID(rem.PrescriptionID); err == nil {
			view.MedicationName = rx.MedicationName
			view.Dosage = rx.Dosage
		}
		views = append(views, view)
	}
	return views, nil
}

// SetTaken marks one of the patient's own reminders taken or not taken
func (s *Service) SetTaken(actor *model.AuthUser, id string, taken bool) (*model.MedicineReminder, error) {
	if actor.Role != model.RolePatient {
		return nil, apperr.Forbidden("only patients have medicine reminders", nil)
	}

	patient, err := s.patients.FindByUserID(actor.ID)
	if err != nil {
		return nil, apperr.NotFound("patient profile", err)
	}

	rem, err := s.reminders.FindByID(id)
	if err != nil {
		return nil, apperr.NotFound("reminder", err)
	}
	if rem.PatientID != patient.ID {
		return nil, apperr.Forbidden("reminder belongs to another patient", nil)
	}

	updated, err := s.reminders.Update(id, &model.ReminderPatch{Taken: &taken})
	if err != nil {
		return nil, apperr.NotFound("reminder", err)
	}
	return updated, nil
}
