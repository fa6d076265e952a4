package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/ScribeSpace/internal/handler/http/dto"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Message: message})
}

// FailureHandler answers with a static message plus the underlying error
// text, and attaches err to the context for the request log.
func FailureHandler(c *gin.Context, statusCode int, message string, err error) {
	resp := dto.ErrorResponse{Message: message}
	if err != nil {
		resp.Error = err.Error()
		_ = c.Error(err)
	}
	c.JSON(statusCode, resp)
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		FailureHandler(c, http.StatusBadRequest, "Invalid request body", err)
		return err
	}
	return nil
}
