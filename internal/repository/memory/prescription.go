package memory

import (
	"time"

	"github.com/carelink/carelink-api/internal/model"
	"github.com/carelink/carelink-api/internal/repository"
)

type PrescriptionRepository struct {
	s *Store
}

func NewPrescriptionRepository(s *Store) *PrescriptionRepository {
	return &PrescriptionRepository{s: s}
}

func (r *PrescriptionRepository) FindByID(id string) (*model.Prescription, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, p := range r.s.prescriptions {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *PrescriptionRepository) FindByPatientID(patientID string) []*model.Prescription {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []*model.Prescription
	for _, p := range r.s.prescriptions {
		if p.PatientID == patientID {
			out = append(out, p)
		}
	}
	return out
}

func (r *PrescriptionRepository) FindByDoctorID(doctorID string) []*model.Prescription {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []*model.Prescription
	for _, p := range r.s.prescriptions {
		if p.DoctorID == doctorID {
			out = append(out, p)
		}
	}
	return out
}

func (r *PrescriptionRepository) Create(prescription *model.Prescription) *model.Prescription {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := *prescription
	stored.ID = r.s.ids.Next("rx")
	stored.CreatedAt = time.Now().UTC()
	r.s.prescriptions = append(r.s.prescriptions, &stored)
	r.s.persistPrescriptions()
	return &stored
}

func (r *PrescriptionRepository) GetAll() []*model.Prescription {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return append([]*model.Prescription(nil), r.s.prescriptions...)
}
