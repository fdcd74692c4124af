package http

import (
	"net/http"
	"time"

	"github.com/byturco/ambulatory/internal/core/domain"
	"github.com/byturco/ambulatory/internal/core/json_types"
	"github.com/byturco/ambulatory/internal/core/ports/in"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegistryController serves the clinic directory: doctors with their
// weekly working hours, health facilities and specializations.
type RegistryController struct {
	useCase in.RegistryUseCase
}

func NewRegistryController(useCase in.RegistryUseCase) *RegistryController {
	return &RegistryController{useCase: useCase}
}

func (c *RegistryController) RegisterRoutes(api *gin.RouterGroup) {
	doctors := api.Group("/doctors")
	{
		doctors.GET("", c.listDoctors)
		doctors.GET("/:id", c.getDoctor)
		doctors.GET("/:id/working-hours", c.listWorkingHours)
		doctors.PUT("/:id/working-hours", c.replaceWorkingHours)
	}

	facilities := api.Group("/health-facilities")
	{
		facilities.GET("", c.listHealthFacilities)
		facilities.POST("", c.createHealthFacility)
		facilities.GET("/:id", c.getHealthFacility)
		facilities.PATCH("/:id", c.updateHealthFacility)
	}

	specializations := api.Group("/specializations")
	{
		specializations.GET("", c.listSpecializations)
		specializations.POST("", c.createSpecialization)
		specializations.GET("/:id", c.getSpecialization)
		specializations.PATCH("/:id", c.updateSpecialization)
		specializations.DELETE("/:id", c.deleteSpecialization)
	}
}

type WorkingHoursItem struct {
	Weekday   int                  `json:"weekday"`
	StartTime json_types.TimeOfDay `json:"startTime" binding:"required"`
	EndTime   json_types.TimeOfDay `json:"endTime" binding:"required"`
}

type ReplaceWorkingHoursRequest struct {
	WorkingHours []WorkingHoursItem `json:"workingHours" binding:"required"`
}

type HealthFacilityRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
}

type SpecializationRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (c *RegistryController) listDoctors(ctx *gin.Context) {
	doctors, err := c.useCase.ListDoctors(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

func (c *RegistryController) getDoctor(ctx *gin.Context) {
	doctorID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, "Invalid doctor ID format")
		return
	}

	doctor, err := c.useCase.GetDoctor(ctx.Request.Context(), doctorID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, doctor)
}

func (c *RegistryController) listWorkingHours(ctx *gin.Context) {
	doctorID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, "Invalid doctor ID format")
		return
	}

	hours, err := c.useCase.ListWorkingHours(ctx.Request.Context(), doctorID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"workingHours": hours})
}

func (c *RegistryController) replaceWorkingHours(ctx *gin.Context) {
	doctorID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, "Invalid doctor ID format")
		return
	}

	var req ReplaceWorkingHoursRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err.Error())
		return
	}

	hours := make([]domain.WorkingHours, 0, len(req.WorkingHours))
	for _, item := range req.WorkingHours {
		hours = append(hours, domain.WorkingHours{
			DoctorID: doctorID,
			Weekday:  time.Weekday(item.Weekday),
			Interval: domain.Interval{From: item.StartTime, To: item.EndTime},
		})
	}

	if err := c.useCase.ReplaceWorkingHours(ctx.Request.Context(), doctorID, hours); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"workingHours": hours})
}

func (c *RegistryController) listHealthFacilities(ctx *gin.Context) {
	facilities, err := c.useCase.ListHealthFacilities(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"healthFacilities": facilities})
}

func (c *RegistryController) getHealthFacility(ctx *gin.Context) {
	facilityID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, "Invalid health facility ID format")
		return
	}

	facility, err := c.useCase.GetHealthFacility(ctx.Request.Context(), facilityID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, facility)
}

func (c *RegistryController) createHealthFacility(ctx *gin.Context) {
	var req HealthFacilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err.Error())
		return
	}

	facility := &domain.HealthFacility{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Phone:   req.Phone,
	}
	if err := c.useCase.CreateHealthFacility(ctx.Request.Context(), facility); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, facility)
}

func (c *RegistryController) updateHealthFacility(ctx *gin.Context) {
	facilityID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, "Invalid health facility ID format")
		return
	}

	var req HealthFacilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err.Error())
		return
	}

	facility := &domain.HealthFacility{
		ID:      facilityID,
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Phone:   req.Phone,
	}
	if err := c.useCase.UpdateHealthFacility(ctx.Request.Context(), facility); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, facility)
}

func (c *RegistryController) listSpecializations(ctx *gin.Context) {
	specializations, err := c.useCase.ListSpecializations(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"specializations": specializations})
}

func (c *RegistryController) getSpecialization(ctx *gin.Context) {
	specializationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, "Invalid specialization ID format")
		return
	}

	specialization, err := c.useCase.GetSpecialization(ctx.Request.Context(), specializationID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, specialization)
}

func (c *RegistryController) createSpecialization(ctx *gin.Context) {
	var req SpecializationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err.Error())
		return
	}

	specialization := &domain.Specialization{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := c.useCase.CreateSpecialization(ctx.Request.Context(), specialization); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, specialization)
}

func (c *RegistryController) updateSpecialization(ctx *gin.Context) {
	specializationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, "Invalid specialization ID format")
		return
	}

	var req SpecializationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err.Error())
		return
	}

	specialization := &domain.Specialization{
		ID:          specializationID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := c.useCase.UpdateSpecialization(ctx.Request.Context(), specialization); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, specialization)
}

func (c *RegistryController) deleteSpecialization(ctx *gin.Context) {
	specializationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, "Invalid specialization ID format")
		return
	}

	if err := c.useCase.DeleteSpecialization(ctx.Request.Context(), specializationID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
