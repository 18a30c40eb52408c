package prescription

import (
	"github.com/carelink/carelink-api/internal/model"
	"github.com/carelink/carelink-api/internal/repository"
	apperr "github.com/carelink/carelink-api/pkg/errors"
)

type Service struct {
	prescriptions repository.PrescriptionRepository
	doctors       repository.DoctorRepository
	patients      repository.PatientRepository
	users         repository.UserRepository
}

func NewService(
	prescriptions repository.PrescriptionRepository,
	doctors repository.DoctorRepository,
	patients repository.PatientRepository,
	users repository.UserRepository,
) *Service {
	return &Service{
		prescriptions: prescriptions,
		doctors:       doctors,
		patients:      patients,
		users:         users,
	}
}

// ListForUser returns the actor's prescriptions joined with the counterpart's name
func (s *Service) ListForUser(actor *model.AuthUser) ([]*model.PrescriptionView, error) {
	views := []*model.PrescriptionView{}

	switch actor.Role {
	case model.RolePatient:
		patient, err := s.patients.FindByUserID(actor.ID)
		if err != nil {
			return views, nil
		}
		for _, rx := range s.prescriptions.FindByPatientID(patient.ID) {
			views = append(views, &model.PrescriptionView{
				Prescription: *rx,
				DoctorName:   s.doctorName(rx.DoctorID),
			})
		}
	case model.RoleDoctor:
		doctor, err := s.doctors.FindByUserID(actor.ID)
		if err != nil {
			return views, nil
		}
		for _, rx := range s.prescriptions.FindByDoctorID(doctor.ID) {
			views = append(views, &model.PrescriptionView{
				Prescription: *rx,
				PatientName:  s.patientName(rx.PatientID),
			})
		}
	}

	return views, nil
}

// Create issues a prescription. Doctors only.
func (s *Service) Create(actor *model.AuthUser, req *model.CreatePrescriptionRequest) (*model.Prescription, error) {
	if actor.Role != model.RoleDoctor {
		return nil, apperr.Forbidden("only doctors can issue prescriptions", nil)
	}

	doctor, err := s.doctors.FindByUserID(actor.ID)
	if err != nil {
		return nil, apperr.NotFound("doctor profile", err)
	}

	return s.prescriptions.Create(&model.Prescription{
		PatientID:      req.PatientID,
		DoctorID:       doctor.ID,
		MedicationName: req.MedicationName,
		Dosage:         req.Dosage,
		Frequency:      req.Frequency,
		DurationDays:   req.DurationDays,
		Quantity:       req.Quantity,
		Notes:          req.Notes,
	}), nil
}

func (s *Service) doctorName(doctorID string) string {
	doctor, err := s.doctors.FindByID(doctorID)
	if err != nil {
		return "Unknown Doctor"
	}
	user, err := s.users.FindByID(doctor.UserID)
	if err != nil {
		return "Unknown Doctor"
	}
	return user.Name
}

func (s *Service) patientName(patientID string) string {
	patient, err := s.patients.FindByID(patientID)
	if err != nil {
		return "Unknown Patient"
	}
	user, err := s.users.FindByID(patient.UserID)
	if err != nil {
		return "Unknown Patient"
	}
	return user.Name
}
