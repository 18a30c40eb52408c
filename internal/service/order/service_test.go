package order

import (
	"io"
	"testing"

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
		&model.User{ID: "user-3", Email: "pharmacy@demo.com", Role: model.RolePharmacy, Name: "HealthCare Pharmacy"},
	)
	store.SeedDoctors(&model.Doctor{ID: "doctor-1", UserID: "user-1"})
	store.SeedPatients(&model.Patient{ID: "patient-1", UserID: "user-2"})
	store.SeedPharmacies(&model.Pharmacy{ID: "pharmacy-1", UserID: "user-3", PharmacyName: "HealthCare Pharmacy"})
	store.SeedPrescriptions(&model.Prescription{
		ID:             "rx-1",
		PatientID:      "patient-1",
		DoctorID:       "doctor-1",
		MedicationName: "Aspirin",
		Dosage:         "500mg",
		Quantity:       30,
	})

	svc := NewService(
		memory.NewOrderRepository(store),
		memory.NewPrescriptionRepository(store),
		memory.NewPharmacyRepository(store),
		memory.NewDoctorRepository(store),
		memory.NewPatientRepository(store),
		memory.NewUserRepository(store),
	)
	return svc, store
}

func TestOrderLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	patient := &model.AuthUser{ID: "user-2", Role: model.RolePatient}
	pharmacy := &model.AuthUser{ID: "user-3", Role: model.RolePharmacy}

	created, err := svc.Create(patient, &model.CreateOrderRequest{
		PrescriptionID: "rx-1",
		PharmacyID:     "pharmacy-1",
	})
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPending, created.Status)

	// the pharmacy sees the order with prescription details joined in
	views, err := svc.ListForPharmacy(pharmacy)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Aspirin", views[0].MedicationName)
	assert.Equal(t, "500mg", views[0].Dosage)
	assert.Equal(t, 30, views[0].Quantity)
	assert.Equal(t, "John Doe", views[0].PatientName)
	assert.Equal(t, "Dr. Sarah Smith", views[0].DoctorName)

	// the patient sees it under their own prescriptions
	mine, err := svc.ListForPatient(patient)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, created.ID, mine[0].ID)

	alt := "Ibuprofen"
	updated, err := svc.UpdateStatus(pharmacy, created.ID, &model.UpdateOrderRequest{
		Status:              "alternative_suggested",
		AlternativeMedicine: &alt,
	})
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusAlternativeSuggested, updated.Status)
	assert.Equal(t, "Ibuprofen", updated.AlternativeMedicine)
}

func TestDanglingPrescriptionFallsBackToUnknown(t *testing.T) {
	svc, _ := newTestService(t)
	patient := &model.AuthUser{ID: "user-2", Role: model.RolePatient}
	pharmacy := &model.AuthUser{ID: "user-3", Role: model.RolePharmacy}

	_, err := svc.Create(patient, &model.CreateOrderRequest{
		PrescriptionID: "rx-deleted",
		PharmacyID:     "pharmacy-1",
	})
	require.NoError(t, err)

	views, err := svc.ListForPharmacy(pharmacy)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Unknown Medication", views[0].MedicationName)
	assert.Equal(t, "Unknown Patient", views[0].PatientName)
	assert.Equal(t, "Unknown Doctor", views[0].DoctorName)
}

func TestOrderRoleChecks(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(&model.AuthUser{ID: "user-3", Role: model.RolePharmacy}, &model.CreateOrderRequest{
		PrescriptionID: "rx-1",
		PharmacyID:     "pharmacy-1",
	})
	appErr, ok := apperr.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperr.ErrForbidden, appErr.Code)

	_, err = svc.UpdateStatus(&model.AuthUser{ID: "user-2", Role: model.RolePatient}, "ord-1", &model.UpdateOrderRequest{Status: "ready"})
	appErr, ok = apperr.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperr.ErrForbidden, appErr.Code)

	_, err = svc.UpdateStatus(&model.AuthUser{ID: "user-3", Role: model.RolePharmacy}, "ord-1", &model.UpdateOrderRequest{Status: "vaporized"})
	appErr, ok = apperr.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperr.ErrBadRequest, appErr.Code)
}
