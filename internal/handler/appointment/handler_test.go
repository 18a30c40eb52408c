package appointment

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carelink/carelink-api/internal/middleware"
	"github.com/carelink/carelink-api/internal/model"
	"github.com/carelink/carelink-api/internal/repository/memory"
	appointmentService "github.com/carelink/carelink-api/internal/service/appointment"
	"github.com/carelink/carelink-api/internal/storage"
	"github.com/carelink/carelink-api/pkg/auth"
	"github.com/carelink/carelink-api/pkg/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *auth.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Output: io.Discard})
	store := memory.NewStore(storage.New(t.TempDir()), log)

	store.SeedUsers(
		&model.User{ID: "user-1", Email: "doctor@demo.com", Role: model.RoleDoctor, Name: "Dr. Sarah Smith"},
		&model.User{ID: "user-2", Email: "patient@demo.com", Role: model.RolePatient, Name: "John Doe"},
	)
	store.SeedDoctors(&model.Doctor{ID: "doctor-1", UserID: "user-1"})
	store.SeedPatients(&model.Patient{ID: "patient-1", UserID: "user-2"})

	svc := appointmentService.NewService(
		memory.NewAppointmentRepository(store),
		memory.NewDoctorRepository(store),
		memory.NewPatientRepository(store),
		memory.NewUserRepository(store),
	)

	tokens := auth.NewTokenService("test-secret", time.Hour)
	engine := gin.New()
	api := engine.Group("/api/v1")
	api.Use(middleware.NewAuthMiddleware(tokens).Authenticate())
	NewHandler(svc).RegisterRoutes(api)

	return engine, tokens
}

func doRequest(engine *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestBookAppointmentEndpoint(t *testing.T) {
	engine, tokens := newTestRouter(t)
	token, err := tokens.Generate("user-2", "patient@demo.com", "patient", "John Doe")
	require.NoError(t, err)

	w := doRequest(engine, http.MethodPost, "/api/v1/appointments", token, map[string]interface{}{
		"doctor_id":        "doctor-1",
		"appointment_date": time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		"notes":            "General Checkup",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Status string            `json:"status"`
		Data   model.Appointment `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Regexp(t, `^apt-\d+$`, resp.Data.ID)
	assert.Equal(t, "patient-1", resp.Data.PatientID)
	assert.Equal(t, model.AppointmentStatusScheduled, resp.Data.Status)

	// the booked appointment shows up on the patient's list, joined with the doctor's name
	w = doRequest(engine, http.MethodGet, "/api/v1/appointments", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Status string                   `json:"status"`
		Data   []*model.AppointmentView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Data, 1)
	assert.Equal(t, resp.Data.ID, list.Data[0].ID)
	assert.Equal(t, "Dr. Sarah Smith", list.Data[0].DoctorName)
}

func TestBookAppointmentRequiresToken(t *testing.T) {
	engine, _ := newTestRouter(t)

	w := doRequest(engine, http.MethodPost, "/api/v1/appointments", "", map[string]interface{}{
		"doctor_id":        "doctor-1",
		"appointment_date": time.Now().Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBookAppointmentValidation(t *testing.T) {
	engine, tokens := newTestRouter(t)
	token, err := tokens.Generate("user-2", "patient@demo.com", "patient", "John Doe")
	require.NoError(t, err)

	// missing appointment_date
	w := doRequest(engine, http.MethodPost, "/api/v1/appointments", token, map[string]interface{}{
		"doctor_id": "doctor-1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateAppointmentEndpoint(t *testing.T) {
	engine, tokens := newTestRouter(t)
	patientToken, err := tokens.Generate("user-2", "patient@demo.com", "patient", "John Doe")
	require.NoError(t, err)
	doctorToken, err := tokens.Generate("user-1", "doctor@demo.com", "doctor", "Dr. Sarah Smith")
	require.NoError(t, err)

	w := doRequest(engine, http.MethodPost, "/api/v1/appointments", patientToken, map[string]interface{}{
		"doctor_id":        "doctor-1",
		"appointment_date": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data model.Appointment `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doRequest(engine, http.MethodPatch, "/api/v1/appointments/"+created.Data.ID, doctorToken, map[string]interface{}{
		"status": "completed",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated struct {
		Data model.AppointmentView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, model.AppointmentStatusCompleted, updated.Data.Status)
	assert.Equal(t, "John Doe", updated.Data.PatientName)

	// unknown id
	w = doRequest(engine, http.MethodPatch, "/api/v1/appointments/apt-missing", doctorToken, map[string]interface{}{
		"status": "completed",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
