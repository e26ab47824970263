package routes

import (
	"ClinicDesk/config"
	"ClinicDesk/logger"
	"ClinicDesk/models"
	"ClinicDesk/services"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type staticDoctors []models.Doctor

func (d staticDoctors) Create(context.Context, *models.Doctor) error { return nil }

func (d staticDoctors) GetAll(context.Context) ([]models.Doctor, error) {
	return append([]models.Doctor(nil), d...), nil
}

func testRouter() http.Handler {
	cfg := &config.AppConfig{
		Env:            "test",
		BearerToken:    "staff-token",
		AllowedOrigins: []string{"https://clinic.example"},
		RateLimitRPS:   1,
		RateLimitBurst: 2,
	}
	log := logger.Discard()
	svc := &Services{
		Invoices:     services.NewInvoiceService(nil, nil, nil, nil, services.InvoiceOptions{}, log),
		Patients:     services.NewPatientService(nil),
		Appointments: services.NewAppointmentService(nil, nil, "City Clinic", log),
		Doctors:      services.NewDoctorService(staticDoctors{{ID: "d-1", Name: "Dr. Mehta", Speciality: "Cardiology"}}),
	}
	return SetupRoutes(cfg, log, svc)
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestSetupRoutes_Health(t *testing.T) {
	w := serve(testRouter(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestSetupRoutes_EchoesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w := serve(testRouter(), req)
	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
}

func TestSetupRoutes_AdminRequiresBearerToken(t *testing.T) {
	router := testRouter()

	w := serve(router, httptest.NewRequest(http.MethodGet, "/api/admin/bills", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"success": false, "message": "Authorization header is missing"}`, w.Body.String())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/doctors", strings.NewReader(`{}`))
	req.Header.Set("Authorization", "Bearer wrong")
	w = serve(router, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/admin/doctors", strings.NewReader(`{"name": "Dr. Rao", "speciality": "ENT"}`))
	req.Header.Set("Authorization", "Bearer staff-token")
	req.Header.Set("Content-Type", "application/json")
	w = serve(router, req)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestSetupRoutes_CORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/appointment-booking/book", nil)
	req.Header.Set("Origin", "https://clinic.example")
	w := serve(testRouter(), req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://clinic.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "X-Request-ID")

	req = httptest.NewRequest(http.MethodOptions, "/api/doctor/list", nil)
	req.Header.Set("Origin", "https://elsewhere.example")
	w = serve(testRouter(), req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSetupRoutes_PublicRoutesAreRateLimited(t *testing.T) {
	router := testRouter()

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := serve(router, httptest.NewRequest(http.MethodGet, "/api/doctor/list", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetupRoutes_UnknownRoute(t *testing.T) {
	w := serve(testRouter(), httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success": false, "message": "Route not found"}`, w.Body.String())
}
