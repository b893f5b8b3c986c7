package util

import (
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chileautosearch/internal/logging"
)

// SafeErrorResponse returns a JSON error response, logging details but only exposing safe info to users
func SafeErrorResponse(c *gin.Context, statusCode int, userMessage string, err error) {
	if err != nil {
		logging.Logger.Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", statusCode),
			zap.Error(err))
	}

	response := gin.H{
		"error": userMessage,
	}

	// Only include detailed error in development mode
	if os.Getenv("GIN_MODE") != "release" && err != nil {
		response["detail"] = err.Error()
	}

	c.JSON(statusCode, response)
}
