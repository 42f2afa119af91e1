package article

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medassist/medassist-api/internal/model"
	"github.com/medassist/medassist-api/internal/service/article"
	"github.com/medassist/medassist-api/pkg/httputil"
)

type Handler struct {
	service *article.Service
}

func NewHandler(service *article.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	articles := r.Group("/articles")
	{
		articles.GET("", h.List)
		articles.GET("/:id", h.Get)
		articles.POST("", h.Publish)
	}
	r.POST("/uploads", h.Upload)
}

func (h *Handler) List(c *gin.Context) {
	articles, err := h.service.List(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

func (h *Handler) Get(c *gin.Context) {
	found, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": found})
}

func (h *Handler) Publish(c *gin.Context) {
	var req model.PublishArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondBadRequest(c, err.Error())
		return
	}

	published, err := h.service.Publish(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"article": published})
}

// Upload stores the files of a multipart request and returns their
// attachment metadata for inclusion in a later publish.
func (h *Handler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		httputil.RespondBadRequest(c, err.Error())
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		httputil.RespondBadRequest(c, "No files provided")
		return
	}

	attachments := make([]model.Attachment, 0, len(files))
	for i, fh := range files {
		f, err := fh.Open()
		if err != nil {
			httputil.RespondWithError(c, err)
			return
		}
		attachment, err := h.service.Upload(c.Request.Context(), fh.Filename, fh.Header.Get("Content-Type"), fh.Size, f, i)
		f.Close()
		if err != nil {
			httputil.RespondWithError(c, err)
			return
		}
		attachments = append(attachments, *attachment)
	}
	c.JSON(http.StatusCreated, gin.H{"attachments": attachments})
}
