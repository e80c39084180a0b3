package api

import (
	"log"
	"net/http"

	"mindwell/internal/errors"

	"github.com/gin-gonic/gin"
)

// respondError maps application error codes onto HTTP statuses. Storage
// detail never reaches the client; the full chain goes to the log.
func respondError(c *gin.Context, err error) {
	code := errors.GetCode(err)

	status := http.StatusInternalServerError
	message := "internal server error"

	switch code {
	case errors.CodeNotFound:
		status = http.StatusNotFound
		message = err.Error()
	case errors.CodeValidationError, errors.CodeInvalidInput:
		status = http.StatusBadRequest
		message = err.Error()
	}

	if status == http.StatusInternalServerError {
		log.Printf("[API] %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, gin.H{"error": message})
}
