package tool

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medassist/medassist-api/internal/service/tool"
	"github.com/medassist/medassist-api/pkg/httputil"
)

type Handler struct {
	service *tool.Service
}

func NewHandler(service *tool.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/tools", h.Run)
}

type runRequest struct {
	Query string `json:"query"`
}

// Run classifies the query and executes the selected tool.
func (h *Handler) Run(c *gin.Context) {
	var req runRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondBadRequest(c, err.Error())
		return
	}
	if req.Query == "" {
		httputil.RespondBadRequest(c, "Query is required")
		return
	}

	outcome, err := h.service.Run(c.Request.Context(), req.Query)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}
