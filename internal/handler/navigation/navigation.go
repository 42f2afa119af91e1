package navigation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medassist/medassist-api/internal/model"
	"github.com/medassist/medassist-api/internal/service/navigation"
	"github.com/medassist/medassist-api/pkg/httputil"
)

type Handler struct {
	service *navigation.Service
}

func NewHandler(service *navigation.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	maps := r.Group("/map")
	{
		maps.GET("", h.Get)
		maps.POST("", h.Navigate)
	}
}

// Get serves navigation by hospital id, with an optional origin given as
// originLat/originLng query parameters.
func (h *Handler) Get(c *gin.Context) {
	hospitalID := c.Query("hospitalId")
	if hospitalID == "" {
		httputil.RespondBadRequest(c, "Hospital ID is required")
		return
	}

	req := model.NavigationRequest{HospitalID: hospitalID}
	if latStr, lngStr := c.Query("originLat"), c.Query("originLng"); latStr != "" && lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr == nil && lngErr == nil {
			req.Origin = &model.GeoLocation{Latitude: lat, Longitude: lng}
		}
	}

	h.respond(c, req)
}

// Navigate serves navigation by hospital id or name, the shape the tool
// router sends.
func (h *Handler) Navigate(c *gin.Context) {
	var req model.NavigationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondBadRequest(c, err.Error())
		return
	}
	if req.HospitalID == "" && req.EffectiveHospitalName() == "" {
		httputil.RespondBadRequest(c, "Either hospital ID or name is required")
		return
	}

	h.respond(c, req)
}

func (h *Handler) respond(c *gin.Context, req model.NavigationRequest) {
	result, err := h.service.Navigate(req)
	if err != nil {
		var notFound *navigation.HospitalNotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, httputil.ErrorBody{
				Error:              notFound.Error(),
				Message:            notFound.Message(),
				SuggestedHospitals: notFound.Suggested,
			})
			return
		}
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
