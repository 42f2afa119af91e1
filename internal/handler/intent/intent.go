package intent

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medassist/medassist-api/internal/service/intent"
	"github.com/medassist/medassist-api/pkg/httputil"
)

type Handler struct {
	service *intent.Service
}

func NewHandler(service *intent.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/intent", h.Classify)
}

type classifyRequest struct {
	Query string `json:"query"`
}

// Classify returns the recognized intent for a query. Classification
// itself never fails; the service degrades to the general-medical default.
func (h *Handler) Classify(c *gin.Context) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondBadRequest(c, err.Error())
		return
	}
	if req.Query == "" {
		httputil.RespondBadRequest(c, "Query is required")
		return
	}

	c.JSON(http.StatusOK, h.service.Classify(c.Request.Context(), req.Query))
}
