package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edunova/backend/internal/app/models/dto"
	"github.com/edunova/backend/internal/app/services"
	"github.com/edunova/backend/internal/middleware"
)

// RegistrationLinkController handles the external registration link
type RegistrationLinkController struct {
	linkService services.RegistrationLinkService
}

// NewRegistrationLinkController creates a new RegistrationLinkController
func NewRegistrationLinkController(linkService services.RegistrationLinkService) *RegistrationLinkController {
	return &RegistrationLinkController{
		linkService: linkService,
	}
}

// GetPublicLink returns the public view of the registration link
// @Summary Get registration link
// @Description Returns the active registration link if one is configured; no authentication required
// @Tags registration-link
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.PublicRegistrationLinkResponse} "Link state retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registration-link [get]
func (c *RegistrationLinkController) GetPublicLink(ctx *gin.Context) {
	resp, err := c.linkService.GetPublicLink(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      resp,
		Timestamp: time.Now(),
	})
}

// GetActiveLink returns the full active link record
// @Summary Get active registration link
// @Tags registration-link
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.RegistrationLink} "Link retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "No registration link configured"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/registration-link [get]
func (c *RegistrationLinkController) GetActiveLink(ctx *gin.Context) {
	link, err := c.linkService.GetActiveLink(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      link,
		Timestamp: time.Now(),
	})
}

// SetLink replaces the active registration link
// @Summary Set registration link
// @Description Replaces the active registration link; the previous one is deactivated
// @Tags registration-link
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SetRegistrationLinkRequest true "Registration link"
// @Success 200 {object} dto.APIResponse{data=models.RegistrationLink} "Link replaced"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/registration-link [put]
func (c *RegistrationLinkController) SetLink(ctx *gin.Context) {
	identity, ok := actingIdentity(ctx)
	if !ok {
		return
	}

	var req dto.SetRegistrationLinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid registration link data", err)
		return
	}

	link, err := c.linkService.SetLink(ctx.Request.Context(), &req, identity.AdminID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      link,
		Timestamp: time.Now(),
	})
}

// DisableLink deactivates the registration link
// @Summary Disable registration link
// @Tags registration-link
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Link disabled"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "No registration link configured"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/registration-link [delete]
func (c *RegistrationLinkController) DisableLink(ctx *gin.Context) {
	identity, ok := actingIdentity(ctx)
	if !ok {
		return
	}

	if err := c.linkService.DisableLink(ctx.Request.Context(), identity.AdminID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Registration link disabled"},
		Timestamp: time.Now(),
	})
}
