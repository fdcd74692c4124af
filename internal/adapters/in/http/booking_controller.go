package http

import (
	"net/http"

	"github.com/byturco/ambulatory/internal/core/json_types"
	"github.com/byturco/ambulatory/internal/core/ports/in"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BookingController exposes the patient-facing surface: the bookable
// slots of a schedule and appointment creation against them.
type BookingController struct {
	availability in.AvailabilityUseCase
	bookings     in.BookingUseCase
}

func NewBookingController(availability in.AvailabilityUseCase, bookings in.BookingUseCase) *BookingController {
	return &BookingController{
		availability: availability,
		bookings:     bookings,
	}
}

func (c *BookingController) RegisterRoutes(api *gin.RouterGroup) {
	booking := api.Group("/booking/:scheduleId")
	{
		booking.GET("/availability-slots", c.availabilitySlots)
		booking.POST("/availability-slots", c.bookAppointment)
		booking.GET("/appointments", c.listAppointments)
	}
}

type BookAppointmentRequest struct {
	PatientName       string              `json:"patientName" binding:"required"`
	PatientEmail      string              `json:"patientEmail" binding:"required,email"`
	PreferredDateTime json_types.DateTime `json:"preferredDateTime" binding:"required"`
	Description       string              `json:"description"`
}

func (c *BookingController) availabilitySlots(ctx *gin.Context) {
	scheduleID, err := uuid.Parse(ctx.Param("scheduleId"))
	if err != nil {
		badRequest(ctx, "Invalid schedule ID format")
		return
	}

	date, err := json_types.ParseDate(ctx.Query("date"))
	if err != nil {
		badRequest(ctx, "Invalid date format")
		return
	}

	slots, err := c.availability.AvailabilitySlots(ctx.Request.Context(), scheduleID, date.Date)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"scheduleId": scheduleID,
		"date":       date,
		"slots":      slots,
	})
}

func (c *BookingController) bookAppointment(ctx *gin.Context) {
	scheduleID, err := uuid.Parse(ctx.Param("scheduleId"))
	if err != nil {
		badRequest(ctx, "Invalid schedule ID format")
		return
	}

	var req BookAppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err.Error())
		return
	}

	booking, err := c.bookings.BookAppointment(ctx.Request.Context(), scheduleID, in.BookAppointmentInput{
		PatientName:       req.PatientName,
		PatientEmail:      req.PatientEmail,
		PreferredDateTime: req.PreferredDateTime.Date,
		Description:       req.Description,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, booking)
}

func (c *BookingController) listAppointments(ctx *gin.Context) {
	scheduleID, err := uuid.Parse(ctx.Param("scheduleId"))
	if err != nil {
		badRequest(ctx, "Invalid schedule ID format")
		return
	}

	bookings, err := c.bookings.ListScheduleBookings(ctx.Request.Context(), scheduleID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
