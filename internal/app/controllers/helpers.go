package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edunova/backend/internal/app/models"
	"github.com/edunova/backend/internal/app/models/dto"
	"github.com/edunova/backend/internal/middleware"
)

// parseIDParam reads a numeric path parameter. On failure it writes the 400
// response itself and reports false.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name)
		errorDetail = errorDetail.WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// actingIdentity returns the admin identity resolved by the auth middleware.
// On failure it writes the 401 response itself and reports false.
func actingIdentity(ctx *gin.Context) (models.Identity, bool) {
	identity, ok := middleware.CurrentIdentity(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return models.Identity{}, false
	}
	return identity, true
}

func badRequest(ctx *gin.Context, message string, err error) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)
	if err != nil {
		errorDetail = errorDetail.WithDetails(err.Error())
	}
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}
