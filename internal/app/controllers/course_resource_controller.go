package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edunova/backend/internal/app/models/dto"
	"github.com/edunova/backend/internal/app/services"
	"github.com/edunova/backend/internal/middleware"
)

// CourseResourceController handles subject/grade study material
type CourseResourceController struct {
	resourceService services.CourseResourceService
}

// NewCourseResourceController creates a new CourseResourceController
func NewCourseResourceController(resourceService services.CourseResourceService) *CourseResourceController {
	return &CourseResourceController{
		resourceService: resourceService,
	}
}

// ResolveResource looks up the resource for a subject/grade pair
// @Summary Resolve course resource
// @Description Resolves study material by subject and grade; the pair is normalized before lookup. No authentication required.
// @Tags course-resources
// @Produce json
// @Param subject path string true "Subject name"
// @Param grade path string true "Grade, with or without the grade- prefix"
// @Success 200 {object} dto.APIResponse{data=models.CourseResource} "Resource retrieved"
// @Failure 404 {object} dto.ErrorResponse "Course resource not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /course-resources/{subject}/{grade} [get]
func (c *CourseResourceController) ResolveResource(ctx *gin.Context) {
	subject := ctx.Param("subject")
	grade := ctx.Param("grade")

	resource, err := c.resourceService.ResolveResource(ctx.Request.Context(), subject, grade)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      resource,
		Timestamp: time.Now(),
	})
}

// ListResources retrieves all course resources
// @Summary List course resources
// @Tags course-resources
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CourseResourceListResponse} "Resources retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /course-resources [get]
func (c *CourseResourceController) ListResources(ctx *gin.Context) {
	resp, err := c.resourceService.ListResources(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      resp,
		Timestamp: time.Now(),
	})
}

// UpsertResource creates or replaces the resource for a subject/grade pair
// @Summary Upsert course resource
// @Description Creates the resource for a subject/grade pair or overwrites it in place, keeping the id stable
// @Tags course-resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpsertCourseResourceRequest true "Course resource"
// @Success 200 {object} dto.APIResponse{data=models.CourseResource} "Resource upserted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /course-resources [put]
func (c *CourseResourceController) UpsertResource(ctx *gin.Context) {
	identity, ok := actingIdentity(ctx)
	if !ok {
		return
	}

	var req dto.UpsertCourseResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid course resource data", err)
		return
	}

	resource, err := c.resourceService.UpsertResource(ctx.Request.Context(), &req, identity.AdminID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      resource,
		Timestamp: time.Now(),
	})
}

// DeleteResource removes a course resource
// @Summary Delete course resource
// @Tags course-resources
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Resource deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid resource ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Course resource not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /course-resources/{id} [delete]
func (c *CourseResourceController) DeleteResource(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.resourceService.DeleteResource(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Course resource deleted"},
		Timestamp: time.Now(),
	})
}
