package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edunova/backend/internal/app/models/dto"
	"github.com/edunova/backend/internal/app/services"
	"github.com/edunova/backend/internal/middleware"
	"github.com/edunova/backend/internal/pkg/helpers"
)

// FeedbackController handles feedback submission and moderation
type FeedbackController struct {
	feedbackService services.FeedbackService
}

// NewFeedbackController creates a new FeedbackController
func NewFeedbackController(feedbackService services.FeedbackService) *FeedbackController {
	return &FeedbackController{
		feedbackService: feedbackService,
	}
}

// SubmitFeedback records a public feedback submission
// @Summary Submit feedback
// @Description Records visitor feedback; no authentication required. New entries start pending.
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body dto.SubmitFeedbackRequest true "Feedback payload"
// @Success 201 {object} dto.APIResponse{data=models.Feedback} "Feedback submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /feedback [post]
func (c *FeedbackController) SubmitFeedback(ctx *gin.Context) {
	var req dto.SubmitFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid feedback data", err)
		return
	}

	feedback, err := c.feedbackService.SubmitFeedback(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      feedback,
		Message:   "Thank you for your feedback",
		Timestamp: time.Now(),
	})
}

// ListPublicFeedback retrieves reviewed feedback for the public site
// @Summary List reviewed feedback
// @Description Retrieves reviewed entries only; no authentication required
// @Tags feedback
// @Produce json
// @Param limit query int false "Maximum entries to return" default(20)
// @Success 200 {object} dto.APIResponse{data=[]models.Feedback} "Reviewed feedback retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /feedback/public [get]
func (c *FeedbackController) ListPublicFeedback(ctx *gin.Context) {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "0"))
	if err != nil {
		limit = 0
	}

	feedbacks, err := c.feedbackService.ListPublicFeedback(ctx.Request.Context(), limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      feedbacks,
		Timestamp: time.Now(),
	})
}

// ListFeedback retrieves feedback entries for moderation
// @Summary List feedback
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(pending, reviewed, resolved, archived)
// @Param type query string false "Filter by type"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.FeedbackListResponse} "Feedback retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /feedback [get]
func (c *FeedbackController) ListFeedback(ctx *gin.Context) {
	var query dto.FeedbackListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		badRequest(ctx, "Invalid query parameters", err)
		return
	}
	page, pageSize := helpers.ParsePaginationParams(ctx)

	resp, err := c.feedbackService.ListFeedback(ctx.Request.Context(), &query, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      resp,
		Timestamp: time.Now(),
	})
}

// UpdateFeedbackStatus moves a feedback entry through the workflow
// @Summary Update feedback status
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Feedback ID"
// @Param request body dto.UpdateFeedbackStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.Feedback} "Status updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or status"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Feedback not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /feedback/{id}/status [put]
func (c *FeedbackController) UpdateFeedbackStatus(ctx *gin.Context) {
	identity, ok := actingIdentity(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateFeedbackStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid status data", err)
		return
	}

	feedback, err := c.feedbackService.UpdateFeedbackStatus(ctx.Request.Context(), id, req.Status, identity.AdminID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      feedback,
		Timestamp: time.Now(),
	})
}

// DeleteFeedback removes a feedback entry
// @Summary Delete feedback
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Param id path int true "Feedback ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Feedback deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid feedback ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Feedback not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /feedback/{id} [delete]
func (c *FeedbackController) DeleteFeedback(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.feedbackService.DeleteFeedback(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Feedback deleted"},
		Timestamp: time.Now(),
	})
}

// GetFeedbackStats returns feedback aggregates
// @Summary Get feedback stats
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.FeedbackStats} "Stats retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /feedback/stats [get]
func (c *FeedbackController) GetFeedbackStats(ctx *gin.Context) {
	stats, err := c.feedbackService.GetStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      stats,
		Timestamp: time.Now(),
	})
}
