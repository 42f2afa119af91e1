package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medassist/medassist-api/pkg/errors"
)

// ErrorBody is the error payload shape shared by every endpoint. Tool
// consumers key off the "error" string, so it is part of the wire contract.
type ErrorBody struct {
	Error              string   `json:"error"`
	Message            string   `json:"message,omitempty"`
	SuggestedHospitals []string `json:"suggestedHospitals,omitempty"`
}

// RespondWithError writes err with the status derived from its AppError
// code, or 500 for anything untyped.
func RespondWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := err.Error()
	if appErr, ok := err.(*errors.AppError); ok {
		status = appErr.StatusCode()
		message = appErr.Message
	}
	c.JSON(status, ErrorBody{Error: message})
}

// RespondBadRequest writes a 400 with the given message.
func RespondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: message})
}
