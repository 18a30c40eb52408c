package directory

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carelink/carelink-api/internal/model"
	"github.com/carelink/carelink-api/internal/repository/memory"
	"github.com/carelink/carelink-api/internal/storage"
	apperr "github.com/carelink/carelink-api/pkg/errors"
	"github.com/carelink/carelink-api/pkg/logger"
)

func newTestService(t *testing.T) (*Service, *memory.Store) {
	t.Helper()
	log := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Output: io.Discard})
	store := memory.NewStore(storage.New(t.TempDir()), log)

	store.SeedUsers(
		&model.User{ID: "user-1", Email: "doctor@demo.com", Role: model.RoleDoctor, Name: "Dr. Sarah Smith", Phone: "555-0101"},
		&model.User{ID: "user-2", Email: "patient@demo.com", Role: model.RolePatient, Name: "John Doe"},
		&model.User{ID: "user-3", Email: "pharmacy@demo.com", Role: model.RolePharmacy, Name: "HealthCare Pharmacy"},
	)
	store.SeedDoctors(&model.Doctor{ID: "doctor-1", UserID: "user-1", Specialization: "General Medicine"})
	store.SeedPatients(&model.Patient{ID: "patient-1", UserID: "user-2", DateOfBirth: "1980-01-15", Gender: "Male"})
	store.SeedPharmacies(&model.Pharmacy{ID: "pharmacy-1", UserID: "user-3", PharmacyName: "HealthCare Pharmacy"})

	svc := NewService(
		memory.NewDoctorRepository(store),
		memory.NewPatientRepository(store),
		memory.NewPharmacyRepository(store),
		memory.NewUserRepository(store),
		memory.NewAppointmentRepository(store),
	)
	return svc, store
}

func TestDoctorsJoinedWithUser(t *testing.T) {
	svc, _ := newTestService(t)

	doctors, err := svc.Doctors()
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, "Dr. Sarah Smith", doctors[0].Name)
	assert.Equal(t, "doctor@demo.com", doctors[0].Email)
	assert.Equal(t, "555-0101", doctors[0].Phone)
	assert.Equal(t, "General Medicine", doctors[0].Specialization)
}

func TestPharmaciesJoinedWithUser(t *testing.T) {
	svc, _ := newTestService(t)

	pharmacies, err := svc.Pharmacies()
	require.NoError(t, err)
	require.Len(t, pharmacies, 1)
	assert.Equal(t, "HealthCare Pharmacy", pharmacies[0].Name)
	assert.Equal(t, "pharmacy@demo.com", pharmacies[0].Email)
}

func TestDoctorListingCached(t *testing.T) {
	svc, store := newTestService(t)

	first, err := svc.Doctors()
	require.NoError(t, err)
	require.Len(t, first, 1)

	store.SeedUsers(&model.User{ID: "user-8", Email: "d2@demo.com", Role: model.RoleDoctor, Name: "Dr. Late"})
	store.SeedDoctors(&model.Doctor{ID: "doctor-2", UserID: "user-8"})

	// still the cached listing until the TTL passes
	second, err := svc.Doctors()
	require.NoError(t, err)
	assert.Len(t, second, 1)
}

func TestPatientsDoctorOnly(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Patients(&model.AuthUser{ID: "user-2", Role: model.RolePatient}, time.Now())
	appErr, ok := apperr.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperr.ErrForbidden, appErr.Code)
}

func TestPatientRoster(t *testing.T) {
	svc, store := newTestService(t)
	doctor := &model.AuthUser{ID: "user-1", Role: model.RoleDoctor}
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	patients, err := svc.Patients(doctor, now)
	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, "John Doe", patients[0].Name)
	assert.Equal(t, 46, patients[0].Age)
	assert.Equal(t, "Stable", patients[0].Status)

	store.SeedAppointments(&model.Appointment{
		ID:        "apt-roster",
		PatientID: "patient-1",
		DoctorID:  "doctor-1",
		Status:    model.AppointmentStatusScheduled,
	})

	patients, err = svc.Patients(doctor, now)
	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, "Follow-up needed", patients[0].Status)
}

func TestAgeBeforeBirthday(t *testing.T) {
	// born 1980-01-15; the day before the birthday the age is still 45
	now := time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 45, age("1980-01-15", now))
	assert.Equal(t, 46, age("1980-01-15", now.AddDate(0, 0, 1)))
	assert.Equal(t, 0, age("", now))
	assert.Equal(t, 0, age("not-a-date", now))
}
