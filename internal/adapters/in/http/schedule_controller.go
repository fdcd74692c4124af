package http

import (
	"net/http"

	"github.com/byturco/ambulatory/internal/core/domain"
	"github.com/byturco/ambulatory/internal/core/json_types"
	"github.com/byturco/ambulatory/internal/core/ports/in"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ScheduleController struct {
	useCase in.ScheduleUseCase
}

func NewScheduleController(useCase in.ScheduleUseCase) *ScheduleController {
	return &ScheduleController{useCase: useCase}
}

func (c *ScheduleController) RegisterRoutes(api *gin.RouterGroup) {
	schedules := api.Group("/schedules")
	{
		schedules.GET("", c.listSchedules)
		schedules.POST("", c.createSchedule)
		schedules.GET("/:id", c.getSchedule)
		schedules.PATCH("/:id", c.updateSchedule)
		schedules.POST("/:id/availability", c.addAvailability)
	}
	api.PATCH("/availabilities/:id", c.updateAvailability)
}

type CreateScheduleRequest struct {
	DoctorID                      uuid.UUID       `json:"doctorId" binding:"required"`
	HealthFacilityID              uuid.UUID       `json:"healthFacilityId" binding:"required"`
	StartDate                     json_types.Date `json:"startDate" binding:"required"`
	EndDate                       json_types.Date `json:"endDate" binding:"required"`
	EstimatedServiceTimeInMinutes int             `json:"estimatedServiceTimeInMinutes"`
}

type UpdateScheduleRequest struct {
	StartDate                     *json_types.Date `json:"startDate"`
	EndDate                       *json_types.Date `json:"endDate"`
	EstimatedServiceTimeInMinutes *int             `json:"estimatedServiceTimeInMinutes"`
}

type AvailabilityRequest struct {
	Date      json_types.Date   `json:"date" binding:"required"`
	Intervals []domain.Interval `json:"intervals" binding:"required"`
}

type UpdateAvailabilityRequest struct {
	Intervals []domain.Interval `json:"intervals" binding:"required"`
}

func (c *ScheduleController) listSchedules(ctx *gin.Context) {
	schedules, err := c.useCase.ListSchedules(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"schedules": schedules})
}

func (c *ScheduleController) getSchedule(ctx *gin.Context) {
	scheduleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, "Invalid schedule ID format")
		return
	}

	schedule, err := c.useCase.GetSchedule(ctx.Request.Context(), scheduleID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, schedule)
}

func (c *ScheduleController) createSchedule(ctx *gin.Context) {
	var req CreateScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err.Error())
		return
	}

	schedule, err := c.useCase.CreateSchedule(ctx.Request.Context(), in.CreateScheduleInput{
		DoctorID:                      req.DoctorID,
		HealthFacilityID:              req.HealthFacilityID,
		StartDate:                     req.StartDate,
		EndDate:                       req.EndDate,
		EstimatedServiceTimeInMinutes: req.EstimatedServiceTimeInMinutes,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, schedule)
}

func (c *ScheduleController) updateSchedule(ctx *gin.Context) {
	scheduleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, "Invalid schedule ID format")
		return
	}

	var req UpdateScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err.Error())
		return
	}

	schedule, err := c.useCase.UpdateSchedule(ctx.Request.Context(), scheduleID, in.UpdateScheduleInput{
		StartDate:                     req.StartDate,
		EndDate:                       req.EndDate,
		EstimatedServiceTimeInMinutes: req.EstimatedServiceTimeInMinutes,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, schedule)
}

func (c *ScheduleController) addAvailability(ctx *gin.Context) {
	scheduleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, "Invalid schedule ID format")
		return
	}

	var req AvailabilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err.Error())
		return
	}

	override, err := c.useCase.AddAvailabilityOverride(ctx.Request.Context(), scheduleID, req.Date, req.Intervals)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, override)
}

func (c *ScheduleController) updateAvailability(ctx *gin.Context) {
	overrideID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, "Invalid availability ID format")
		return
	}

	var req UpdateAvailabilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err.Error())
		return
	}

	override, err := c.useCase.UpdateAvailabilityOverride(ctx.Request.Context(), overrideID, req.Intervals)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, override)
}
