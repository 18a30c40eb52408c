package memory

import (
	"time"

	"github.com/carelink/carelink-api/internal/model"
	"github.com/carelink/carelink-api/internal/repository"
)

type AppointmentRepository struct {
	s *Store
}

func NewAppointmentRepository(s *Store) *AppointmentRepository {
	return &AppointmentRepository{s: s}
}

func (r *AppointmentRepository) FindByID(id string) (*model.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, a := range r.s.appointments {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *AppointmentRepository) FindByPatientID(patientID string) []*model.Appointment {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []*model.Appointment
	for _, a := range r.s.appointments {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	return out
}

func (r *AppointmentRepository) FindByDoctorID(doctorID string) []*model.Appointment {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []*model.Appointment
	for _, a := range r.s.appointments {
		if a.DoctorID == doctorID {
			out = append(out, a)
		}
	}
	return out
}

func (r *AppointmentRepository) Create(appointment *model.Appointment) *model.Appointment {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := *appointment
	stored.ID = r.s.ids.Next("apt")
	stored.CreatedAt = time.Now().UTC()
	r.s.appointments = append(r.s.appointments, &stored)
	r.s.persistAppointments()
	return &stored
}

func (r *AppointmentRepository) Update(id string, patch *model.AppointmentPatch) (*model.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, a := range r.s.appointments {
		if a.ID != id {
			continue
		}
		updated := *a
		if patch.AppointmentDate != nil {
			updated.AppointmentDate = *patch.AppointmentDate
		}
		if patch.Status != nil {
			updated.Status = *patch.Status
		}
		if patch.Notes != nil {
			updated.Notes = *patch.Notes
		}
		r.s.appointments[i] = &updated
		r.s.persistAppointments()
		return &updated, nil
	}
	return nil, repository.ErrNotFound
}

func (r *AppointmentRepository) GetAll() []*model.Appointment {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return append([]*model.Appointment(nil), r.s.appointments...)
}
