package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/jobboard/internal/dtos"
)

// RespondSuccess writes the shared envelope with success=true.
func RespondSuccess(c *gin.Context, status int, message string, data any) {
	c.JSON(status, dtos.Envelope{StatusCode: status, Success: true, Message: message, Data: data})
}

// RespondError writes the shared envelope with success=false and no data.
func RespondError(c *gin.Context, status int, message string) {
	RespondErrorData(c, status, message, nil)
}

func RespondErrorData(c *gin.Context, status int, message string, data any) {
	c.JSON(status, dtos.Envelope{StatusCode: status, Success: false, Message: message, Data: data})
}

// pathID parses a positive integer path parameter.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
