package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/middleware"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// parseUUIDParam reads a UUID path parameter
func parseUUIDParam(ctx *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		return uuid.Nil, apperrors.NewValidationError(name, name+" must be a valid UUID")
	}
	return id, nil
}

// bindJSON decodes the request body. Malformed JSON is a validation failure
// with the invalid-request code.
func bindJSON(ctx *gin.Context, obj interface{}) error {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "Invalid request body: "+err.Error()).
			WithCode(string(dto.ErrorCodeInvalidRequest))
	}
	return nil
}

// respond writes a success envelope
func respond(ctx *gin.Context, status int, apiID, message string, data interface{}) {
	ctx.JSON(status, dto.NewSuccessResponse(apiID, middleware.RequestIDFrom(ctx), message, data))
}
