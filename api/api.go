package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ApiResponse is the envelope every endpoint answers with. Exactly one of
// Errors or Data is set; a bare success carries neither.
type ApiResponse struct {
	Errors []string `json:"errors,omitempty"`
	Data   any      `json:"data,omitempty"`
}

func ResultData(c *gin.Context, obj any) {
	c.JSON(http.StatusOK, ApiResponse{Data: obj})
}

func ResultSuccess(c *gin.Context) {
	c.JSON(http.StatusOK, ApiResponse{})
}

// ResultError answers 400 with the given error codes, or 500 with a generic
// code when the caller has nothing safe to report.
func ResultError(c *gin.Context, errors []string) {
	if len(errors) == 0 {
		c.JSON(http.StatusInternalServerError, ApiResponse{Errors: []string{"unknownError"}})
		return
	}

	c.JSON(http.StatusBadRequest, ApiResponse{Errors: errors})
}
