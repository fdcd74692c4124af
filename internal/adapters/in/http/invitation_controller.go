package http

import (
	"net/http"

	"github.com/byturco/ambulatory/internal/core/domain"
	"github.com/byturco/ambulatory/internal/core/ports/in"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvitationController struct {
	useCase in.InvitationUseCase
}

func NewInvitationController(useCase in.InvitationUseCase) *InvitationController {
	return &InvitationController{useCase: useCase}
}

func (c *InvitationController) RegisterRoutes(api *gin.RouterGroup) {
	invitations := api.Group("/invitations")
	{
		invitations.GET("", c.listInvitations)
		invitations.POST("", c.inviteUser)
		invitations.GET("/:id", c.getInvitation)
		invitations.PATCH("/:id", c.updateInvitation)
		invitations.DELETE("/:id", c.revokeInvitation)
	}
}

type InviteUserRequest struct {
	Email string      `json:"email" binding:"required,email"`
	Role  domain.Role `json:"role" binding:"required"`
}

type UpdateInvitationRequest struct {
	Role domain.Role `json:"role" binding:"required"`
}

func (c *InvitationController) listInvitations(ctx *gin.Context) {
	invitations, err := c.useCase.ListInvitations(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"invitations": invitations})
}

func (c *InvitationController) getInvitation(ctx *gin.Context) {
	invitationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, "Invalid invitation ID format")
		return
	}

	invitation, err := c.useCase.GetInvitation(ctx.Request.Context(), invitationID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, invitation)
}

func (c *InvitationController) inviteUser(ctx *gin.Context) {
	var req InviteUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err.Error())
		return
	}

	invitation, err := c.useCase.InviteUser(ctx.Request.Context(), req.Email, req.Role)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, invitation)
}

func (c *InvitationController) updateInvitation(ctx *gin.Context) {
	invitationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, "Invalid invitation ID format")
		return
	}

	var req UpdateInvitationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err.Error())
		return
	}

	invitation, err := c.useCase.UpdateInvitation(ctx.Request.Context(), invitationID, req.Role)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, invitation)
}

func (c *InvitationController) revokeInvitation(ctx *gin.Context) {
	invitationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, "Invalid invitation ID format")
		return
	}

	if err := c.useCase.RevokeInvitation(ctx.Request.Context(), invitationID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
