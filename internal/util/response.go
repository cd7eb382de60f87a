package util

import (
	"errors"
	"net/http"

	"github.com/M-Ibrahim-Raza/Expensilo-Backend/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Response is the data part of the success envelope.
type Response map[string]interface{}

// Business error codes.
const (
	CodeOK           = 0
	CodeInvalidParam = 40001
	CodeAuth         = 40101
	CodeNotFound     = 40401
	CodeConflict     = 40901
	CodeServerErr    = 50001
)

// Success writes the uniform success envelope.
func Success(c *gin.Context, data Response) {
	c.JSON(http.StatusOK, gin.H{
		"code": CodeOK,
		"data": data,
	})
}

// Error writes the uniform error envelope.
func Error(c *gin.Context, httpStatus int, code int, msg string) {
	c.JSON(httpStatus, gin.H{
		"code":    code,
		"message": msg,
	})
}

// RespondError maps a core error onto the transport. Typed NotFound and
// Conflict errors keep their entity-specific message; a raw duplicated
// key becomes the generic integrity conflict; anything else is a 500.
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		Error(c, http.StatusNotFound, CodeNotFound, err.Error())
	case errors.Is(err, service.ErrConflict):
		Error(c, http.StatusConflict, CodeConflict, err.Error())
	case errors.Is(err, gorm.ErrDuplicatedKey):
		Error(c, http.StatusConflict, CodeConflict, "Duplicate entry or integrity error")
	default:
		Error(c, http.StatusInternalServerError, CodeServerErr, "internal error")
	}
}
