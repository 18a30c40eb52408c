package memory

import "github.com/carelink/carelink-api/internal/model"

// Seed insertion keeps the ids the rows carry and does not touch the disk
// mirror: seed rows only reach disk once a later mutation persists the
// collection, at which point the file's version wins on the next start.

func (s *Store) SeedUsers(rows ...*model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, rows...)
}

func (s *Store) SeedDoctors(rows ...*model.Doctor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doctors = append(s.doctors, rows...)
}

func (s *Store) SeedPatients(rows ...*model.Patient) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.patients = append(s.patients, rows...)
}

func (s *Store) SeedPharmacies(rows ...*model.Pharmacy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pharmacies = append(s.pharmacies, rows...)
}

func (s *Store) SeedAppointments(rows ...*model.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments = append(s.appointments, rows...)
}

func (s *Store) SeedPrescriptions(rows ...*model.Prescription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prescriptions = append(s.prescriptions, rows...)
}
