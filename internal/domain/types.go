package domain

import (
	"time"

	"github.com/google/uuid"
)

type FlightStatus string

const (
	StatusScheduled FlightStatus = "scheduled"
	StatusBoarding  FlightStatus = "boarding"
	StatusDeparted  FlightStatus = "departed"
	StatusArrived   FlightStatus = "arrived"
	StatusDelayed   FlightStatus = "delayed"
	StatusCancelled FlightStatus = "cancelled"
)

// Valid reports whether s is one of the known flight statuses.
func (s FlightStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusBoarding, StatusDeparted,
		StatusArrived, StatusDelayed, StatusCancelled:
		return true
	}
	return false
}

// Active reports whether the flight has not left yet and is still operating.
func (s FlightStatus) Active() bool {
	return s == StatusScheduled || s == StatusBoarding || s == StatusDelayed
}

// Flight is a single scheduled leg tied to one passenger booking.
type Flight struct {
	ID               string       `json:"id"`
	UserID           string       `json:"userId"`
	FlightNumber     string       `json:"flightNumber"`
	Airline          string       `json:"airline"`
	DepartureAirport string       `json:"departureAirport"`
	ArrivalAirport   string       `json:"arrivalAirport"`
	DepartureDate    Date         `json:"departureDate"`
	DepartureTime    string       `json:"departureTime"`
	ArrivalDate      Date         `json:"arrivalDate"`
	ArrivalTime      string       `json:"arrivalTime"`
	Gate             string       `json:"gate,omitempty"`
	Terminal         string       `json:"terminal,omitempty"`
	Seat             string       `json:"seat,omitempty"`
	Status           FlightStatus `json:"status"`
	BookingReference string       `json:"bookingReference"`
	PassengerName    string       `json:"passengerName"`
	CreatedAt        time.Time    `json:"createdAt"`
}

type Trips struct {
	Upcoming []Flight `json:"upcoming"`
	Past     []Flight `json:"past"`
}

type StatusDisplay struct {
	Status          FlightStatus `json:"status"`
	Label           string       `json:"label"`
	Color           string       `json:"color"`
	Icon            string       `json:"icon"`
	ProgressPercent int          `json:"progressPercent"`
	ProgressColor   string       `json:"progressColor"`
	Phase           string       `json:"phase"`
}

// CheckIn is transient; it never changes the flight's status.
type CheckIn struct {
	ID               uuid.UUID `json:"id"`
	FlightID         string    `json:"flightId"`
	BookingReference string    `json:"bookingReference"`
	Seat             string    `json:"seat"`
	CheckedInAt      time.Time `json:"checkedInAt"`
}
