package domain

import (
	"time"

	"github.com/google/uuid"
)

type Doctor struct {
	ID               uuid.UUID  `json:"id"`
	FullName         string     `json:"fullName"`
	Email            string     `json:"email"`
	SpecializationID *uuid.UUID `json:"specializationId,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// WorkingHours is a doctor's recurring availability on one weekday.
// A weekday with no record means the doctor does not work that day.
type WorkingHours struct {
	DoctorID uuid.UUID    `json:"doctorId"`
	Weekday  time.Weekday `json:"weekday"`
	Interval Interval     `json:"intervals"`
}
