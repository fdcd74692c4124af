package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/byturco/ambulatory/internal/config"
	"github.com/byturco/ambulatory/internal/core/domain"
	"github.com/byturco/ambulatory/internal/core/ports/in"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAvailability struct {
	slots map[uuid.UUID][]domain.Slot
}

func (s *stubAvailability) AvailabilitySlots(_ context.Context, scheduleID uuid.UUID, _ time.Time) ([]domain.Slot, error) {
	slots, ok := s.slots[scheduleID]
	if !ok {
		return nil, fmt.Errorf("schedule %s: %w", scheduleID, domain.ErrNotFound)
	}
	return slots, nil
}

func (s *stubAvailability) CheckAvailabilitySlot(ctx context.Context, scheduleID uuid.UUID, dateTime time.Time) (bool, error) {
	slots, err := s.AvailabilitySlots(ctx, scheduleID, dateTime)
	if err != nil {
		return false, err
	}
	for _, slot := range slots {
		if slot == domain.NewSlot(dateTime) {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubAvailability) InvalidateScheduleSlots(context.Context, uuid.UUID) {}
func (s *stubAvailability) InvalidateAllSlots(context.Context)                {}

type stubBookings struct {
	availability *stubAvailability
	created      []domain.Booking
}

func (s *stubBookings) BookAppointment(ctx context.Context, scheduleID uuid.UUID, input in.BookAppointmentInput) (*domain.Booking, error) {
	ok, err := s.availability.CheckAvailabilitySlot(ctx, scheduleID, input.PreferredDateTime)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrSlotUnavailable
	}

	booking := domain.Booking{
		ID:                uuid.New(),
		ScheduleID:        scheduleID,
		PatientName:       input.PatientName,
		PatientEmail:      input.PatientEmail,
		PreferredDateTime: input.PreferredDateTime,
		IsActive:          true,
	}
	s.created = append(s.created, booking)
	return &booking, nil
}

func (s *stubBookings) ListScheduleBookings(context.Context, uuid.UUID) ([]domain.Booking, error) {
	return s.created, nil
}

func newTestRouter(availability *stubAvailability) (*stubBookings, http.Handler) {
	cfg := &config.Config{}
	cfg.App.Env = config.EnvLocal
	cfg.Auth.BasicClients = []config.ConfigBasicClient{{Username: "clinic", Password: "secret"}}

	bookings := &stubBookings{availability: availability}
	router := NewRouter(cfg, NewBookingController(availability, bookings))
	return bookings, router
}

func doRequest(handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.SetBasicAuth("clinic", "secret")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestBookingController_AvailabilitySlots(t *testing.T) {
	scheduleID := uuid.New()
	availability := &stubAvailability{slots: map[uuid.UUID][]domain.Slot{
		scheduleID: {"09:00", "09:15", "09:30"},
	}}
	_, router := newTestRouter(availability)

	rec := doRequest(router, http.MethodGet,
		"/api/booking/"+scheduleID.String()+"/availability-slots?date=2020-01-06", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		ScheduleID uuid.UUID `json:"scheduleId"`
		Slots      []string  `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, scheduleID, resp.ScheduleID)
	assert.Equal(t, []string{"09:00", "09:15", "09:30"}, resp.Slots)
}

func TestBookingController_AvailabilitySlots_UnknownSchedule(t *testing.T) {
	_, router := newTestRouter(&stubAvailability{slots: map[uuid.UUID][]domain.Slot{}})

	rec := doRequest(router, http.MethodGet,
		"/api/booking/"+uuid.NewString()+"/availability-slots?date=2020-01-06", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBookingController_AvailabilitySlots_BadDate(t *testing.T) {
	_, router := newTestRouter(&stubAvailability{slots: map[uuid.UUID][]domain.Slot{}})

	rec := doRequest(router, http.MethodGet,
		"/api/booking/"+uuid.NewString()+"/availability-slots?date=tomorrow", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookingController_BookAppointment(t *testing.T) {
	scheduleID := uuid.New()
	availability := &stubAvailability{slots: map[uuid.UUID][]domain.Slot{
		scheduleID: {"09:00", "09:15"},
	}}
	bookings, router := newTestRouter(availability)

	body := `{
		"patientName": "Jane Roe",
		"patientEmail": "jane@example.com",
		"preferredDateTime": "2020-01-06T09:15:00",
		"description": "checkup"
	}`
	rec := doRequest(router, http.MethodPost,
		"/api/booking/"+scheduleID.String()+"/availability-slots", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, bookings.created, 1)
	assert.Equal(t, "Jane Roe", bookings.created[0].PatientName)
}

func TestBookingController_BookAppointment_SlotUnavailable(t *testing.T) {
	scheduleID := uuid.New()
	availability := &stubAvailability{slots: map[uuid.UUID][]domain.Slot{
		scheduleID: {"09:00", "09:15"},
	}}
	_, router := newTestRouter(availability)

	body := `{
		"patientName": "Jane Roe",
		"patientEmail": "jane@example.com",
		"preferredDateTime": "2020-01-06T09:20:00"
	}`
	rec := doRequest(router, http.MethodPost,
		"/api/booking/"+scheduleID.String()+"/availability-slots", body)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestRouter_RejectsMissingCredentials(t *testing.T) {
	_, router := newTestRouter(&stubAvailability{slots: map[uuid.UUID][]domain.Slot{}})

	req := httptest.NewRequest(http.MethodGet,
		"/api/booking/"+uuid.NewString()+"/availability-slots?date=2020-01-06", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_RejectsWrongCredentials(t *testing.T) {
	_, router := newTestRouter(&stubAvailability{slots: map[uuid.UUID][]domain.Slot{}})

	req := httptest.NewRequest(http.MethodGet,
		"/api/booking/"+uuid.NewString()+"/availability-slots?date=2020-01-06", nil)
	req.SetBasicAuth("clinic", "wrong")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
