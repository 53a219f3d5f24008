package handlers

import "github.com/gin-gonic/gin"

type errorResponse struct {
	Errors []string `json:"errors"`
}

func writeError(c *gin.Context, statusCode int, errors ...string) {
	c.Abort()
	c.JSON(statusCode, errorResponse{Errors: errors})
}
