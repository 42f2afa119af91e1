package hospital

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/medassist/medassist-api/internal/repository/memory"
	"github.com/medassist/medassist-api/internal/service/hospital"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := hospital.NewService(
		memory.NewHospitalRepository(memory.SeedHospitals()),
		memory.NewSpecialtyRepository(memory.SeedSpecialties()),
	)
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestGetByID(t *testing.T) {
	r := setupRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/hospitals?id=h001", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "hospital")
}

func TestGetByIDNotFound(t *testing.T) {
	r := setupRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/hospitals?id=h999", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Hospital not found"}`, w.Body.String())
}

func TestGetRecommended(t *testing.T) {
	r := setupRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/hospitals?recommended=true&limit=3", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Hospitals []json.RawMessage `json:"hospitals"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Hospitals, 3)
}

func TestQueryPost(t *testing.T) {
	r := setupRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/hospitals", strings.NewReader(`{"query":"协和"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Hospitals []struct {
			Name string `json:"name"`
		} `json:"hospitals"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Hospitals)
	for _, h := range body.Hospitals {
		assert.Contains(t, h.Name, "协和")
	}
}
