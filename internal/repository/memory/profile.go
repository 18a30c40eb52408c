package memory

import (
	"github.com/carelink/carelink-api/internal/model"
	"github.com/carelink/carelink-api/internal/repository"
)

// Role profile repositories: doctors, patients, pharmacies. Profiles are
// created once at signup and never mutated afterwards.

type DoctorRepository struct {
	s *Store
}

func NewDoctorRepository(s *Store) *DoctorRepository {
	return &DoctorRepository{s: s}
}

func (r *DoctorRepository) FindByID(id string) (*model.Doctor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, d := range r.s.doctors {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *DoctorRepository) FindByUserID(userID string) (*model.Doctor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, d := range r.s.doctors {
		if d.UserID == userID {
			return d, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *DoctorRepository) Create(doctor *model.Doctor) *model.Doctor {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := *doctor
	stored.ID = r.s.ids.Next("doctor")
	r.s.doctors = append(r.s.doctors, &stored)
	return &stored
}

func (r *DoctorRepository) GetAll() []*model.Doctor {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return append([]*model.Doctor(nil), r.s.doctors...)
}

type PatientRepository struct {
	s *Store
}

func NewPatientRepository(s *Store) *PatientRepository {
	return &PatientRepository{s: s}
}

func (r *PatientRepository) FindByID(id string) (*model.Patient, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, p := range r.s.patients {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *PatientRepository) FindByUserID(userID string) (*model.Patient, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, p := range r.s.patients {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *PatientRepository) Create(patient *model.Patient) *model.Patient {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := *patient
	stored.ID = r.s.ids.Next("patient")
	r.s.patients = append(r.s.patients, &stored)
	return &stored
}

func (r *PatientRepository) GetAll() []*model.Patient {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return append([]*model.Patient(nil), r.s.patients...)
}

type PharmacyRepository struct {
	s *Store
}

func NewPharmacyRepository(s *Store) *PharmacyRepository {
	return &PharmacyRepository{s: s}
}

func (r *PharmacyRepository) FindByID(id string) (*model.Pharmacy, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, p := range r.s.pharmacies {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *PharmacyRepository) FindByUserID(userID string) (*model.Pharmacy, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, p := range r.s.pharmacies {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *PharmacyRepository) Create(pharmacy *model.Pharmacy) *model.Pharmacy {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := *pharmacy
	stored.ID = r.s.ids.Next("pharmacy")
	r.s.pharmacies = append(r.s.pharmacies, &stored)
	return &stored
}

func (r *PharmacyRepository) GetAll() []*model.Pharmacy {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return append([]*model.Pharmacy(nil), r.s.pharmacies...)
}
