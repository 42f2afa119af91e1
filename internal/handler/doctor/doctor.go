package doctor

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medassist/medassist-api/internal/model"
	"github.com/medassist/medassist-api/internal/service/appointment"
	"github.com/medassist/medassist-api/internal/service/doctor"
	"github.com/medassist/medassist-api/pkg/httputil"
)

type Handler struct {
	service      *doctor.Service
	appointments *appointment.Service
}

func NewHandler(service *doctor.Service, appointments *appointment.Service) *Handler {
	return &Handler{service: service, appointments: appointments}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	doctors := r.Group("/doctors")
	{
		doctors.GET("", h.List)
		doctors.POST("", h.Query)
		doctors.PUT("", h.Book)
	}
}

// List serves simple lookups via query parameters: by id, recommended,
// available, or filtered listing.
func (h *Handler) List(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		found, ok := h.service.Get(id)
		if !ok {
			c.JSON(http.StatusNotFound, httputil.ErrorBody{Error: "Doctor not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"doctor": found})
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))

	if c.Query("recommended") == "true" {
		count := limit
		if count <= 0 {
			count = 5
		}
		c.JSON(http.StatusOK, model.DoctorList{Doctors: h.service.Recommended(count)})
		return
	}

	if c.Query("available") == "true" {
		c.JSON(http.StatusOK, model.DoctorList{Doctors: h.service.Available()})
		return
	}

	minRating, _ := strconv.ParseFloat(c.Query("minRating"), 64)
	doctors := h.service.Query(model.DoctorQuery{
		Query:         c.Query("name"),
		HospitalID:    c.Query("hospitalId"),
		HospitalName:  c.Query("hospitalName"),
		Specialty:     c.Query("specialty"),
		SpecialtyName: c.Query("specialtyName"),
		MinRating:     minRating,
		Limit:         limit,
	})
	c.JSON(http.StatusOK, model.DoctorList{Doctors: doctors})
}

// Query serves structured searches, the shape the tool router sends.
func (h *Handler) Query(c *gin.Context) {
	var q model.DoctorQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		httputil.RespondBadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, model.DoctorList{Doctors: h.service.Query(q)})
}

// Book creates an appointment with the doctor.
func (h *Handler) Book(c *gin.Context) {
	var req model.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondBadRequest(c, err.Error())
		return
	}

	result, err := h.appointments.Book(&req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
