package domain

import (
	"time"

	"github.com/byturco/ambulatory/internal/core/json_types"
	"github.com/google/uuid"
)

// DefaultEstimatedServiceTime is the slot duration in minutes used when a
// schedule does not specify one.
const DefaultEstimatedServiceTime = 15

// Schedule describes a doctor receiving patients at a health facility
// during an inclusive validity window. Every slot it generates lasts
// EstimatedServiceTimeInMinutes.
type Schedule struct {
	ID                            uuid.UUID       `json:"id"`
	DoctorID                      uuid.UUID       `json:"doctorId"`
	HealthFacilityID              uuid.UUID       `json:"healthFacilityId"`
	StartDate                     json_types.Date `json:"startDate"`
	EndDate                       json_types.Date `json:"endDate"`
	EstimatedServiceTimeInMinutes int             `json:"estimatedServiceTimeInMinutes"`
	CreatedAt                     time.Time       `json:"createdAt"`
	UpdatedAt                     time.Time       `json:"updatedAt"`
}

func (s *Schedule) ServiceDuration() time.Duration {
	return time.Duration(s.EstimatedServiceTimeInMinutes) * time.Minute
}

// ContainsDate reports whether date falls inside the validity window.
// Comparison is on calendar dates, boundaries included.
func (s *Schedule) ContainsDate(date time.Time) bool {
	day := date.Format("2006-01-02")
	return day >= s.StartDate.String() && day <= s.EndDate.String()
}

// Interval is a (from, to) pair of times of day. Well-formedness
// (from <= to) is the responsibility of whoever creates it.
type Interval struct {
	From json_types.TimeOfDay `json:"from"`
	To   json_types.TimeOfDay `json:"to"`
}

// AvailabilityOverride replaces a schedule's default working hours for a
// single calendar date. At most one exists per (schedule, date).
type AvailabilityOverride struct {
	ID         uuid.UUID       `json:"id"`
	ScheduleID uuid.UUID       `json:"scheduleId"`
	Date       json_types.Date `json:"date"`
	Intervals  []Interval      `json:"intervals"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// Slot is one bookable start time within a day, "HH:MM". Slots are
// computed on demand and never persisted.
type Slot string

func NewSlot(t time.Time) Slot {
	return Slot(t.Format("15:04"))
}
