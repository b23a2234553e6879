package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edunova/backend/internal/app/models"
	"github.com/edunova/backend/internal/app/models/dto"
	"github.com/edunova/backend/internal/app/services"
	"github.com/edunova/backend/internal/middleware"
)

// TimetableController handles timetable operations
type TimetableController struct {
	timetableService services.TimetableService
}

// NewTimetableController creates a new TimetableController
func NewTimetableController(timetableService services.TimetableService) *TimetableController {
	return &TimetableController{
		timetableService: timetableService,
	}
}

// GetTimetable retrieves the weekly timetable
// @Summary Get timetable
// @Description Retrieves all timetable slots in weekday order; no authentication required
// @Tags timetable
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.TimetableResponse} "Timetable retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timetable [get]
func (c *TimetableController) GetTimetable(ctx *gin.Context) {
	resp, err := c.timetableService.GetTimetable(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      resp,
		Timestamp: time.Now(),
	})
}

// CreateEntry adds a timetable slot
// @Summary Create timetable entry
// @Tags timetable
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTimetableEntryRequest true "Timetable slot"
// @Success 201 {object} dto.APIResponse{data=models.TimetableEntry} "Entry created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timetable [post]
func (c *TimetableController) CreateEntry(ctx *gin.Context) {
	identity, ok := actingIdentity(ctx)
	if !ok {
		return
	}

	var req dto.CreateTimetableEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid timetable data", err)
		return
	}

	entry, err := c.timetableService.CreateEntry(ctx.Request.Context(), &req, identity.AdminID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      entry,
		Timestamp: time.Now(),
	})
}

// UpdateEntry applies a partial update to a timetable slot
// @Summary Update timetable entry
// @Tags timetable
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Param request body models.TimetableEntryPatch true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.TimetableEntry} "Entry updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Timetable entry not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timetable/{id} [put]
func (c *TimetableController) UpdateEntry(ctx *gin.Context) {
	identity, ok := actingIdentity(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var patch models.TimetableEntryPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		badRequest(ctx, "Invalid timetable data", err)
		return
	}

	entry, err := c.timetableService.UpdateEntry(ctx.Request.Context(), id, &patch, identity.AdminID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      entry,
		Timestamp: time.Now(),
	})
}

// DeleteEntry removes a timetable slot
// @Summary Delete timetable entry
// @Tags timetable
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Entry deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid entry ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Timetable entry not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timetable/{id} [delete]
func (c *TimetableController) DeleteEntry(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.timetableService.DeleteEntry(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Timetable entry deleted"},
		Timestamp: time.Now(),
	})
}
