package dto

import "github.com/gin-gonic/gin"

// SuccessResponse is the envelope wrapping every successful response body.
type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Success sends a success envelope with the given HTTP status.
func Success(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, SuccessResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}
