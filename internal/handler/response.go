package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperr "github.com/carelink/carelink-api/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// RespondError writes an error envelope with the status an AppError maps to.
// Anything else is treated as an internal error with a generic message.
func RespondError(c *gin.Context, err error) {
	if appErr, ok := apperr.AsAppError(err); ok {
		c.JSON(appErr.StatusCode(), NewErrorResponse(appErr.Message))
		return
	}
	c.Error(err)
	c.JSON(http.StatusInternalServerError, NewErrorResponse("internal server error"))
}
