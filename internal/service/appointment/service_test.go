package appointment

import (
	"io"
	"regexp"
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
		&model.User{ID: "user-1", Email: "doctor@demo.com", Role: model.RoleDoctor, Name: "Dr. Sarah Smith"},
		&model.User{ID: "user-2", Email: "patient@demo.com", Role: model.RolePatient, Name: "John Doe"},
	)
	store.SeedDoctors(&model.Doctor{ID: "doctor-1", UserID: "user-1"})
	store.SeedPatients(&model.Patient{ID: "patient-1", UserID: "user-2"})

	svc := NewService(
		memory.NewAppointmentRepository(store),
		memory.NewDoctorRepository(store),
		memory.NewPatientRepository(store),
		memory.NewUserRepository(store),
	)
	return svc, store
}

func TestBookAppointment(t *testing.T) {
	svc, _ := newTestService(t)
	patient := &model.AuthUser{ID: "user-2", Role: model.RolePatient}

	date := time.Now().Add(48 * time.Hour).UTC()
	booked, err := svc.Book(patient, &model.CreateAppointmentRequest{
		DoctorID:        "doctor-1",
		AppointmentDate: date,
		Notes:           "General Checkup",
	})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^apt-\d+$`), booked.ID)
	assert.Equal(t, "patient-1", booked.PatientID)
	assert.Equal(t, model.AppointmentStatusScheduled, booked.Status)
	assert.False(t, booked.CreatedAt.IsZero())

	views, err := svc.ListForUser(patient)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, booked.ID, views[0].ID)
	assert.Equal(t, "Dr. Sarah Smith", views[0].DoctorName)
	assert.Empty(t, views[0].PatientName)
}

func TestBookWithoutPatientProfile(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Book(&model.AuthUser{ID: "user-99", Role: model.RolePatient}, &model.CreateAppointmentRequest{
		DoctorID:        "doctor-1",
		AppointmentDate: time.Now(),
	})
	appErr, ok := apperr.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperr.ErrNotFound, appErr.Code)
}

func TestDoctorSeesPatientName(t *testing.T) {
	svc, _ := newTestService(t)
	patient := &model.AuthUser{ID: "user-2", Role: model.RolePatient}

	_, err := svc.Book(patient, &model.CreateAppointmentRequest{
		DoctorID:        "doctor-1",
		AppointmentDate: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)

	views, err := svc.ListForUser(&model.AuthUser{ID: "user-1", Role: model.RoleDoctor})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "John Doe", views[0].PatientName)
}

func TestUpdateStatus(t *testing.T) {
	svc, _ := newTestService(t)
	patient := &model.AuthUser{ID: "user-2", Role: model.RolePatient}
	doctor := &model.AuthUser{ID: "user-1", Role: model.RoleDoctor}

	booked, err := svc.Book(patient, &model.CreateAppointmentRequest{
		DoctorID:        "doctor-1",
		AppointmentDate: time.Now().Add(24 * time.Hour),
		Notes:           "initial",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(doctor, booked.ID, &model.UpdateAppointmentRequest{Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusCompleted, updated.Status)
	assert.Equal(t, "initial", updated.Notes)
	assert.Equal(t, "John Doe", updated.PatientName)
	assert.Equal(t, "Dr. Sarah Smith", updated.DoctorName)
}

func TestUpdateStatusInvalid(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateStatus(
		&model.AuthUser{ID: "user-1", Role: model.RoleDoctor},
		"apt-1",
		&model.UpdateAppointmentRequest{Status: "teleported"},
	)
	appErr, ok := apperr.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperr.ErrBadRequest, appErr.Code)
}

func TestUpdateStatusForeignAppointment(t *testing.T) {
	svc, store := newTestService(t)
	patient := &model.AuthUser{ID: "user-2", Role: model.RolePatient}

	booked, err := svc.Book(patient, &model.CreateAppointmentRequest{
		DoctorID:        "doctor-1",
		AppointmentDate: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)

	store.SeedUsers(&model.User{ID: "user-5", Email: "other@demo.com", Role: model.RoleDoctor, Name: "Dr. Other"})
	store.SeedDoctors(&model.Doctor{ID: "doctor-2", UserID: "user-5"})

	_, err = svc.UpdateStatus(
		&model.AuthUser{ID: "user-5", Role: model.RoleDoctor},
		booked.ID,
		&model.UpdateAppointmentRequest{Status: "cancelled"},
	)
	appErr, ok := apperr.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperr.ErrForbidden, appErr.Code)
}

func TestUpdateStatusUnknownID(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateStatus(
		&model.AuthUser{ID: "user-1", Role: model.RoleDoctor},
		"apt-does-not-exist",
		&model.UpdateAppointmentRequest{Status: "completed"},
	)
	appErr, ok := apperr.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperr.ErrNotFound, appErr.Code)
}
