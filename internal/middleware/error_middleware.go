package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

// genericErrorMessage is all a client learns about an unexpected failure
const genericErrorMessage = "An unexpected error occurred"

// --- Central Error Handling Middleware/Function ---

// HandleAPIError maps err onto a status code and failure envelope for operation apiID
func HandleAPIError(c *gin.Context, apiID string, err error) {
	status, detail := classify(err)

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("api", apiID).
			Str("requestId", RequestIDFrom(c)).
			Msg("Unhandled error")
	}

	c.AbortWithStatusJSON(status, dto.NewFailureResponse(apiID, RequestIDFrom(c), detail))
}

func classify(err error) (int, *dto.ErrorDetail) {
	var (
		status int
		code   dto.ErrorCode
		msg    string
	)

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		status, code, msg = http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"
	case errors.Is(err, apperrors.ErrResourceNotFound):
		status, code, msg = http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"
	case errors.Is(err, apperrors.ErrUnauthorized):
		status, code, msg = http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Authentication required"
	case errors.Is(err, apperrors.ErrTokenExpired):
		status, code, msg = http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token has expired"
	case errors.Is(err, apperrors.ErrTokenInvalid):
		status, code, msg = http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token"
	case errors.Is(err, apperrors.ErrPermissionDenied):
		status, code, msg = http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied"
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, genericErrorMessage)
	}

	var ce *apperrors.CustomError
	if errors.As(err, &ce) && ce.Code != "" {
		code = dto.ErrorCode(ce.Code)
	}

	return status, dto.NewErrorDetail(code, apperrors.MessageOf(err, msg)).WithField(apperrors.FieldOf(err))
}

// NoRoute answers unknown routes with a not-found envelope
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		detail := dto.NewErrorDetail(dto.ErrorCodeRouteNotFound, "No route for "+c.Request.Method+" "+c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusNotFound, dto.NewFailureResponse(dto.OpErrorNotFound, RequestIDFrom(c), detail))
	}
}

// Recovery turns a panic into a 500 failure envelope
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().
			Interface("panic", recovered).
			Str("requestId", RequestIDFrom(c)).
			Msg("Recovered from panic")
		detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, genericErrorMessage)
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewFailureResponse(dto.OpError, RequestIDFrom(c), detail))
	})
}
