package chat

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medassist/medassist-api/internal/model"
	"github.com/medassist/medassist-api/internal/service/chat"
	"github.com/medassist/medassist-api/pkg/httputil"
	"github.com/medassist/medassist-api/pkg/logger"
)

type Handler struct {
	service *chat.Service
	logger  *logger.Logger
}

func NewHandler(service *chat.Service, log *logger.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/chat", h.Chat)
}

// flushWriter pushes each stream part to the client as soon as it is
// written.
type flushWriter struct {
	w http.ResponseWriter
	f http.Flusher
}

func (fw flushWriter) Write(p []byte) (int, error) {
	n, err := fw.w.Write(p)
	if fw.f != nil {
		fw.f.Flush()
	}
	return n, err
}

// Chat streams the assistant's answer as data stream parts.
func (h *Handler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondBadRequest(c, err.Error())
		return
	}

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.Header(chat.StreamHeaderName, chat.StreamHeaderValue)
	c.Status(http.StatusOK)

	flusher, _ := c.Writer.(http.Flusher)
	out := flushWriter{w: c.Writer, f: flusher}

	if err := h.service.Stream(c.Request.Context(), req, out); err != nil {
		// Headers are out; all we can do is log and stop the stream.
		h.logger.Error(err, "chat stream aborted")
	}
}
