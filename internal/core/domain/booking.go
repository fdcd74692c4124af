package domain

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID                uuid.UUID `json:"id"`
	ScheduleID        uuid.UUID `json:"scheduleId"`
	PatientName       string    `json:"patientName"`
	PatientEmail      string    `json:"patientEmail"`
	PreferredDateTime time.Time `json:"preferredDateTime"`
	ActualEndDateTime time.Time `json:"actualEndDateTime"`
	Description       string    `json:"description"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
