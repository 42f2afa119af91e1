package hospital

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medassist/medassist-api/internal/model"
	"github.com/medassist/medassist-api/internal/service/hospital"
	"github.com/medassist/medassist-api/pkg/httputil"
)

type Handler struct {
	service *hospital.Service
}

func NewHandler(service *hospital.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	hospitals := r.Group("/hospitals")
	{
		hospitals.GET("", h.List)
		hospitals.POST("", h.Query)
	}
}

// List serves simple lookups via query parameters: by id, recommended, or
// filtered listing.
func (h *Handler) List(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		found, ok := h.service.Get(id)
		if !ok {
			c.JSON(http.StatusNotFound, httputil.ErrorBody{Error: "Hospital not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"hospital": found})
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))

	if c.Query("recommended") == "true" {
		count := limit
		if count <= 0 {
			count = 5
		}
		c.JSON(http.StatusOK, model.HospitalList{Hospitals: h.service.Recommended(count)})
		return
	}

	minRating, _ := strconv.ParseFloat(c.Query("minRating"), 64)
	hospitals := h.service.Query(model.HospitalQuery{
		Query:         c.Query("name"),
		Specialty:     c.Query("specialty"),
		SpecialtyName: c.Query("specialtyName"),
		MinRating:     minRating,
		Limit:         limit,
	})
	c.JSON(http.StatusOK, model.HospitalList{Hospitals: hospitals})
}

// Query serves structured searches, the shape the tool router sends.
func (h *Handler) Query(c *gin.Context) {
	var q model.HospitalQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		httputil.RespondBadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, model.HospitalList{Hospitals: h.service.Query(q)})
}
