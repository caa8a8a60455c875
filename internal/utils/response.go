package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/princeprakhar/ratings-service/pkg/logger"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func SendJSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func SendMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageResponse{Message: message})
}

func SendError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{
		Error:  message,
		Status: statusCode,
	})
}

func SendValidationError(c *gin.Context, message string) {
	SendAppError(c, ValidationError(message))
}

// SendAppError writes err as an error body. Internal causes are logged and
// replaced by the generic message.
func SendAppError(c *gin.Context, err error) {
	appErr := AsAppError(err)

	if appErr.Kind == KindInternal {
		logger.WithFields(logrus.Fields{
			"request_id": c.GetString(RequestIDKey),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
		}).WithError(appErr.Err).Error("request failed")
	}

	SendError(c, appErr.Status, appErr.Message)
}
