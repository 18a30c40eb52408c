package auth

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carelink/carelink-api/internal/model"
	"github.com/carelink/carelink-api/internal/repository/memory"
	"github.com/carelink/carelink-api/internal/storage"
	"github.com/carelink/carelink-api/pkg/auth"
	apperr "github.com/carelink/carelink-api/pkg/errors"
	"github.com/carelink/carelink-api/pkg/logger"
)

func newTestService(t *testing.T) (*Service, *memory.Store) {
	t.Helper()
	log := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Output: io.Discard})
	store := memory.NewStore(storage.New(t.TempDir()), log)

	svc := NewService(
		memory.NewUserRepository(store),
		memory.NewDoctorRepository(store),
		memory.NewPatientRepository(store),
		memory.NewPharmacyRepository(store),
		auth.NewTokenService("test-secret", time.Hour),
	)
	return svc, store
}

func TestSignupCreatesProfile(t *testing.T) {
	svc, store := newTestService(t)

	resp, err := svc.Signup(&model.SignupRequest{
		Email:    "new.doctor@example.com",
		Password: "s3cret",
		Name:     "Dr. New",
		Role:     "doctor",
		Phone:    "555-0100",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "new.doctor@example.com", resp.User.Email)
	assert.Equal(t, model.RoleDoctor, resp.User.Role)

	doctor, err := memory.NewDoctorRepository(store).FindByUserID(resp.User.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, doctor.LicenseNumber)
}

func TestSignupRejectsBadRole(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Signup(&model.SignupRequest{
		Email:    "someone@example.com",
		Password: "s3cret",
		Name:     "Someone",
		Role:     "admin",
	})
	appErr, ok := apperr.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperr.ErrBadRequest, appErr.Code)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)

	req := &model.SignupRequest{
		Email:    "dup@example.com",
		Password: "s3cret",
		Name:     "First",
		Role:     "patient",
	}
	_, err := svc.Signup(req)
	require.NoError(t, err)

	_, err = svc.Signup(req)
	appErr, ok := apperr.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperr.ErrBadRequest, appErr.Code)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Signup(&model.SignupRequest{
		Email:    "login@example.com",
		Password: "correct-horse",
		Name:     "Login User",
		Role:     "patient",
	})
	require.NoError(t, err)

	resp, err := svc.Login(&model.LoginRequest{Email: "login@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	_, err = svc.Login(&model.LoginRequest{Email: "login@example.com", Password: "wrong"})
	appErr, ok := apperr.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperr.ErrUnauthorized, appErr.Code)

	_, err = svc.Login(&model.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	appErr, ok = apperr.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperr.ErrUnauthorized, appErr.Code)
}

func TestCurrentUser(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Signup(&model.SignupRequest{
		Email:    "me@example.com",
		Password: "s3cret",
		Name:     "Me",
		Role:     "pharmacy",
	})
	require.NoError(t, err)

	user, err := svc.CurrentUser(resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", user.Email)

	_, err = svc.CurrentUser("user-does-not-exist")
	appErr, ok := apperr.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperr.ErrNotFound, appErr.Code)
}
