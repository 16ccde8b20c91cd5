package res

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AbortWithError writes the client-safe message of err. Causes of 5xx
// responses only reach the log.
func AbortWithError(c *gin.Context, logger *zap.Logger, err *ErrorRes) {
	if err.StatusCode >= http.StatusInternalServerError {
		logger.Error(
			"request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("kind", string(err.Kind)),
			zap.Error(err.Err),
		)
	}
	c.AbortWithStatusJSON(err.StatusCode, Response{
		Success: false,
		Message: err.Message(),
	})
}

func AbortWithMessage(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, Response{
		Success: false,
		Message: message,
	})
}

// Body responds {"success":true,"body":{key:value}}
func Body(c *gin.Context, statusCode int, key string, value interface{}) {
	response := make(map[string]interface{})
	response[key] = value
	c.JSON(statusCode, Response{
		Success: true,
		Data:    response,
	})
}
