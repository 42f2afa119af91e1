package doctor

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/medassist/medassist-api/internal/repository/memory"
	"github.com/medassist/medassist-api/internal/service/appointment"
	"github.com/medassist/medassist-api/internal/service/doctor"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	doctorRepo := memory.NewDoctorRepository(memory.SeedDoctors())
	hospitalRepo := memory.NewHospitalRepository(memory.SeedHospitals())
	specialtyRepo := memory.NewSpecialtyRepository(memory.SeedSpecialties())

	r := gin.New()
	NewHandler(
		doctor.NewService(doctorRepo, hospitalRepo, specialtyRepo),
		appointment.NewService(doctorRepo, hospitalRepo),
	).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestQueryByDoctorName(t *testing.T) {
	r := setupRouter()

	w := doJSON(r, http.MethodPost, "/api/v1/doctors", `{"doctor_name":"王强"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Doctors []struct {
			Name string `json:"name"`
		} `json:"doctors"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Doctors)
	assert.Equal(t, "王强", body.Doctors[0].Name)
}

func TestGetByIDNotFound(t *testing.T) {
	r := setupRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/doctors?id=d999", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Doctor not found"}`, w.Body.String())
}

func TestBook(t *testing.T) {
	r := setupRouter()

	w := doJSON(r, http.MethodPut, "/api/v1/doctors", `{
		"doctorId":"d001",
		"patientName":"张三",
		"patientPhone":"13900000000",
		"timeSlot":{"day":"周一","startTime":"09:00","endTime":"10:00"},
		"reason":"复诊"
	}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success     bool   `json:"success"`
		Message     string `json:"message"`
		Appointment struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"appointment"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "预约成功", body.Message)
	assert.True(t, strings.HasPrefix(body.Appointment.ID, "a"))
	assert.Equal(t, "confirmed", body.Appointment.Status)
}

func TestBookMissingParameters(t *testing.T) {
	r := setupRouter()

	w := doJSON(r, http.MethodPut, "/api/v1/doctors", `{"doctorId":"d001"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing required parameters"}`, w.Body.String())
}

func TestBookUnknownDoctor(t *testing.T) {
	r := setupRouter()

	w := doJSON(r, http.MethodPut, "/api/v1/doctors", `{
		"doctorId":"d999",
		"patientName":"张三",
		"patientPhone":"13900000000",
		"timeSlot":{"day":"周一","startTime":"09:00","endTime":"10:00"}
	}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Doctor not found"}`, w.Body.String())
}
