package appointment

import (
	"github.com/carelink/carelink-api/internal/model"
	"github.com/carelink/carelink-api/internal/repository"
	apperr "github.com/carelink/carelink-api/pkg/errors"
)

const (
	unknownDoctor  = "Unknown Doctor"
	unknownPatient = "Unknown Patient"
)

type Service struct {
	appointments repository.AppointmentRepository
	doctors      repository.DoctorRepository
	patients     repository.PatientRepository
	users        repository.UserRepository
}

func NewService(
	appointments repository.AppointmentRepository,
	doctors repository.DoctorRepository,
	patients repository.PatientRepository,
	users repository.UserRepository,
) *Service {
	return &Service{
		appointments: appointments,
		doctors:      doctors,
		patients:     patients,
		users:        users,
	}
}

// ListForUser returns the actor's appointments joined with the counterpart's
// name. Patients see their doctor's name, doctors their patient's. Other
// roles get an empty list.
func (s *Service) ListForUser(actor *model.AuthUser) ([]*model.AppointmentView, error) {
	views := []*model.AppointmentView{}

	switch actor.Role {
	case model.RolePatient:
		patient, err := s.patients.FindByUserID(actor.ID)
		if err != nil {
			return views, nil
		}
		for _, apt := range s.appointments.FindByPatientID(patient.ID) {
			views = append(views, &model.AppointmentView{
				Appointment: *apt,
				DoctorName:  s.doctorName(apt.DoctorID),
			})
		}
	case model.RoleDoctor:
		doctor, err := s.doctors.FindByUserID(actor.ID)
		if err != nil {
			return views, nil
		}
		for _, apt := range s.appointments.FindByDoctorID(doctor.ID) {
			views = append(views, &model.AppointmentView{
				Appointment: *apt,
				PatientName: s.patientName(apt.PatientID),
			})
		}
	}

	return views, nil
}

// Book creates a scheduled appointment for the actor's patient profile
func (s *Service) Book(actor *model.AuthUser, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	patient, err := s.patients.FindByUserID(actor.ID)
	if err != nil {
		return nil, apperr.NotFound("patient profile", err)
	}

	return s.appointments.Create(&model.Appointment{
		PatientID:       patient.ID,
		DoctorID:        req.DoctorID,
		AppointmentDate: req.AppointmentDate,
		Status:          model.AppointmentStatusScheduled,
		Notes:           req.Notes,
	}), nil
}

// UpdateStatus changes an appointment's status (and optionally notes) after
// checking the appointment belongs to the acting doctor or patient. Any value
// of the status enum is accepted; transitions are not restricted.
func (s *Service) UpdateStatus(actor *model.AuthUser, id string, req *model.UpdateAppointmentRequest) (*model.AppointmentView, error) {
	if !model.ValidAppointmentStatus(req.Status) {
		return nil, apperr.BadRequest("invalid appointment status", nil)
	}

	apt, err := s.appointments.FindByID(id)
	if err != nil {
		return nil, apperr.NotFound("appointment", err)
	}

	switch actor.Role {
	case model.RoleDoctor:
		doctor, err := s.doctors.FindByUserID(actor.ID)
		if err != nil || apt.DoctorID != doctor.ID {
			return nil, apperr.Forbidden("appointment belongs to another doctor", nil)
		}
	case model.RolePatient:
		patient, err := s.patients.FindByUserID(actor.ID)
		if err != nil || apt.PatientID != patient.ID {
			return nil, apperr.Forbidden("appointment belongs to another patient", nil)
		}
	}

	status := model.AppointmentStatus(req.Status)
	patch := &model.AppointmentPatch{Status: &status}
	if req.Notes != nil {
		patch.Notes = req.Notes
	}

	updated, err := s.appointments.Update(id, patch)
	if err != nil {
		return nil, apperr.NotFound("appointment", err)
	}

	return &model.AppointmentView{
		Appointment: *updated,
		PatientName: s.patientName(updated.PatientID),
		DoctorName:  s.doctorName(updated.DoctorID),
	}, nil
}

func (s *Service) doctorName(doctorID string) string {
	doctor, err := s.doctors.FindByID(doctorID)
	if err != nil {
		return unknownDoctor
	}
	user, err := s.users.FindByID(doctor.UserID)
	if err != nil {
		return unknownDoctor
	}
	return user.Name
}

func (s *Service) patientName(patientID string) string {
	patient, err := s.patients.FindByID(patientID)
	if err != nil {
		return unknownPatient
	}
	user, err := s.users.FindByID(patient.UserID)
	if err != nil {
		return unknownPatient
	}
	return user.Name
}
