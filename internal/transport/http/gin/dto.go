package httpgin

import (
	"time"

	"github.com/kirinyoku/flightdesk/internal/domain"
)

type CheckInRequest struct {
	BookingReference string `json:"booking_reference" binding:"required"`
	LastName         string `json:"last_name" binding:"required"`
	Seat             string `json:"seat"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type FlightResponse struct {
	Flight  domain.Flight        `json:"flight"`
	Display domain.StatusDisplay `json:"display"`
}

type CheckInResponse struct {
	CheckIn domain.CheckIn `json:"check_in"`
	Created bool           `json:"created"`
}

type SeatOptionsResponse struct {
	Seats   []string `json:"seats"`
	Default string   `json:"default"`
}

func newFlightResponse(f domain.Flight) FlightResponse {
	return FlightResponse{Flight: f, Display: domain.DisplayFor(f.Status)}
}

func newFlightResponses(flights []domain.Flight) []FlightResponse {
	out := make([]FlightResponse, 0, len(flights))
	for _, f := range flights {
		out = append(out, newFlightResponse(f))
	}
	return out
}

func parseRFC3339(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
