package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"medical-tourism-backend/internal/config"
	"medical-tourism-backend/internal/database"
	"medical-tourism-backend/internal/models"
	"medical-tourism-backend/internal/repository"
	"medical-tourism-backend/internal/service"
	"medical-tourism-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testDBCounter int64

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	tokens *utils.JWTManager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:handlertest%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		Server: config.ServerConfig{GinMode: gin.TestMode},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}
	tokens := utils.NewJWTManager("test-secret", time.Hour)

	userRepo := repository.NewUserRepo(db)
	hospitalRepo := repository.NewHospitalRepo(db)
	treatmentRepo := repository.NewTreatmentRepo(db)
	doctorRepo := repository.NewDoctorRepo(db)
	hospitalTreatmentRepo := repository.NewHospitalTreatmentRepo(db)
	bookingRepo := repository.NewBookingRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	handlers := &Handlers{
		Auth:              NewAuthHandler(service.NewAuthService(userRepo, auditRepo, tokens)),
		User:              NewUserHandler(service.NewUserService(userRepo)),
		Hospital:          NewHospitalHandler(service.NewHospitalService(hospitalRepo, auditRepo)),
		Treatment:         NewTreatmentHandler(service.NewTreatmentService(treatmentRepo, auditRepo)),
		Doctor:            NewDoctorHandler(service.NewDoctorService(doctorRepo, hospitalRepo, treatmentRepo, auditRepo)),
		HospitalTreatment: NewHospitalTreatmentHandler(service.NewHospitalTreatmentService(hospitalTreatmentRepo, hospitalRepo, treatmentRepo, auditRepo)),
		Booking:           NewBookingHandler(service.NewBookingService(bookingRepo, hospitalTreatmentRepo, auditRepo)),
		Admin:             NewAdminHandler(service.NewStatsService(userRepo, hospitalRepo, treatmentRepo, bookingRepo)),
	}

	router := NewRouter(cfg, zerolog.Nop(), tokens, handlers)
	return &testServer{router: router, db: db, tokens: tokens}
}

func (s *testServer) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// adminToken seeds an admin user directly and returns a bearer token for it.
func (s *testServer) adminToken(t *testing.T) string {
	t.Helper()

	hash, err := utils.HashPassword("admin-pass")
	require.NoError(t, err)
	admin := &models.User{Name: "Admin", Email: "admin@clinic.test", PasswordHash: hash, Role: models.RoleAdmin}
	require.NoError(t, s.db.Create(admin).Error)

	token, err := s.tokens.GenerateToken(admin.ID, admin.Role)
	require.NoError(t, err)
	return token
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := s.request(t, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
}

func TestBookingLifecycle(t *testing.T) {
	s := newTestServer(t)
	adminToken := s.adminToken(t)

	// Register and log in as a regular user
	w := s.request(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Asha Patel",
		"email":    "asha@example.com",
		"password": "secret123",
		"country":  "India",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.request(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "asha@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	loginData := decode(t, w)["data"].(map[string]interface{})
	userToken := loginData["token"].(string)
	require.NotEmpty(t, userToken)

	// Admin builds the catalog over the API
	w = s.request(t, http.MethodPost, "/api/hospitals", adminToken, gin.H{
		"name": "Apollo Chennai",
		"city": "Chennai",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	hospitalID := decode(t, w)["data"].(map[string]interface{})["id"].(float64)

	w = s.request(t, http.MethodPost, "/api/treatments", adminToken, gin.H{
		"name":        "Knee Replacement",
		"category":    "Orthopedics",
		"description": "Total knee arthroplasty",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	treatmentID := decode(t, w)["data"].(map[string]interface{})["id"].(float64)

	w = s.request(t, http.MethodPost, "/api/hospital-treatments", adminToken, gin.H{
		"hospital_id":  hospitalID,
		"treatment_id": treatmentID,
		"cost_min_usd": 4000,
		"cost_max_usd": 7000,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	offeringID := decode(t, w)["data"].(map[string]interface{})["id"].(float64)

	// User creates a booking
	w = s.request(t, http.MethodPost, "/api/bookings", userToken, gin.H{
		"hospital_treatment_id": offeringID,
		"medical_notes":         "Prior arthroscopy in 2024",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	booking := decode(t, w)["data"].(map[string]interface{})
	bookingID := booking["id"].(float64)
	assert.Equal(t, models.BookingPending, booking["status"])

	// A second booking for the same offering while the first is pending is rejected
	w = s.request(t, http.MethodPost, "/api/bookings", userToken, gin.H{
		"hospital_treatment_id": offeringID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Admin approves
	w = s.request(t, http.MethodPut, fmt.Sprintf("/api/bookings/%v/status", bookingID), adminToken, gin.H{
		"status": models.BookingApproved,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.BookingApproved, decode(t, w)["data"].(map[string]interface{})["status"])

	// The user's booking list reflects the new status with expanded references
	w = s.request(t, http.MethodGet, "/api/bookings/my", userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode(t, w)["data"].([]interface{})
	require.Len(t, list, 1)
	mine := list[0].(map[string]interface{})
	assert.Equal(t, models.BookingApproved, mine["status"])
	offering := mine["hospital_treatment"].(map[string]interface{})
	assert.Equal(t, "Apollo Chennai", offering["hospital"].(map[string]interface{})["name"])
	assert.Equal(t, "Knee Replacement", offering["treatment"].(map[string]interface{})["name"])

	// Cancelling an approved booking is refused
	w = s.request(t, http.MethodPut, fmt.Sprintf("/api/bookings/%v/cancel", bookingID), userToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingRoutesRequireAuth(t *testing.T) {
	s := newTestServer(t)

	w := s.request(t, http.MethodPost, "/api/bookings", "", gin.H{"hospital_treatment_id": 1})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.request(t, http.MethodGet, "/api/bookings/my", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutesForbiddenForUsers(t *testing.T) {
	s := newTestServer(t)

	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)
	user := &models.User{Name: "Plain User", Email: "plain@example.com", PasswordHash: hash, Role: models.RoleUser}
	require.NoError(t, s.db.Create(user).Error)
	token, err := s.tokens.GenerateToken(user.ID, user.Role)
	require.NoError(t, err)

	w := s.request(t, http.MethodPost, "/api/hospitals", token, gin.H{"name": "X", "city": "Y"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.request(t, http.MethodGet, "/api/bookings", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.request(t, http.MethodPut, "/api/bookings/1/status", token, gin.H{"status": models.BookingApproved})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.request(t, http.MethodGet, "/api/admin/stats", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCatalogReadsArePublic(t *testing.T) {
	s := newTestServer(t)

	hospital := &models.Hospital{Name: "Fortis Delhi", City: "Delhi"}
	require.NoError(t, s.db.Create(hospital).Error)

	w := s.request(t, http.MethodGet, "/api/hospitals", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode(t, w)["data"].([]interface{})
	require.Len(t, list, 1)
	assert.Equal(t, "Fortis Delhi", list[0].(map[string]interface{})["name"])

	// Deactivated hospitals drop out of the public listing
	require.NoError(t, s.db.Model(hospital).Update("is_active", false).Error)
	w = s.request(t, http.MethodGet, "/api/hospitals", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["data"])
}

func TestAdminStats(t *testing.T) {
	s := newTestServer(t)
	adminToken := s.adminToken(t)

	require.NoError(t, s.db.Create(&models.Hospital{Name: "Apollo Chennai", City: "Chennai"}).Error)

	w := s.request(t, http.MethodGet, "/api/admin/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(1), stats["total_users"])
	assert.Equal(t, float64(1), stats["total_hospitals"])
	assert.Equal(t, float64(0), stats["total_bookings"])
}
