package specialty

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medassist/medassist-api/internal/repository"
	"github.com/medassist/medassist-api/pkg/httputil"
)

type Handler struct {
	repo repository.SpecialtyRepository
}

func NewHandler(repo repository.SpecialtyRepository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	specialties := r.Group("/specialties")
	{
		specialties.GET("", h.List)
		specialties.GET("/:id", h.Get)
	}
}

func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"specialties": h.repo.List()})
}

func (h *Handler) Get(c *gin.Context) {
	found, ok := h.repo.GetByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, httputil.ErrorBody{Error: "Specialty not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"specialty": found})
}
