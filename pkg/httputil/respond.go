package httputil

import (
	"log"

	"legox-backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// Error writes a domain error as JSON. Errors outside the taxonomy are
// logged and mapped to a generic 500 response.
func Error(c *gin.Context, err error) {
	appErr := apperrors.Translate(err)
	if appErr.Code == apperrors.CodeInternal {
		log.Printf("internal error: %v", err)
	}
	c.JSON(appErr.Status, gin.H{"code": appErr.Code, "message": appErr.Message})
}

// AbortWithError writes the error and stops the handler chain.
func AbortWithError(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}
