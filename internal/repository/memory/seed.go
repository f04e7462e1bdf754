package memory

import (
	"time"

	"github.com/kirinyoku/flightdesk/internal/domain"
)

// SeedFlights returns the built-in reference data set.
func SeedFlights() []domain.Flight {
	created := time.Date(2024, time.January, 2, 9, 0, 0, 0, time.UTC)

	return []domain.Flight{
		{
			ID:               "1",
			UserID:           "user1",
			FlightNumber:     "AA1234",
			Airline:          "American Airlines",
			DepartureAirport: "JFK",
			ArrivalAirport:   "LAX",
			DepartureDate:    domain.MustDate("2026-11-20"),
			DepartureTime:    "08:30",
			ArrivalDate:      domain.MustDate("2026-11-20"),
			ArrivalTime:      "11:45",
			Gate:             "A12",
			Terminal:         "4",
			Seat:             "12A",
			Status:           domain.StatusScheduled,
			BookingReference: "ABC123",
			PassengerName:    "John Doe",
			CreatedAt:        created,
		},
		{
			ID:               "2",
			UserID:           "user1",
			FlightNumber:     "UA5678",
			Airline:          "United Airlines",
			DepartureAirport: "LAX",
			ArrivalAirport:   "SFO",
			DepartureDate:    domain.MustDate("2026-11-22"),
			DepartureTime:    "14:15",
			ArrivalDate:      domain.MustDate("2026-11-22"),
			ArrivalTime:      "15:30",
			Gate:             "B7",
			Terminal:         "7",
			Status:           domain.StatusBoarding,
			BookingReference: "DEF456",
			PassengerName:    "John Doe",
			CreatedAt:        created,
		},
		{
			ID:               "3",
			UserID:           "user2",
			FlightNumber:     "DL9012",
			Airline:          "Delta Air Lines",
			DepartureAirport: "ATL",
			ArrivalAirport:   "ORD",
			DepartureDate:    domain.MustDate("2026-11-25"),
			DepartureTime:    "19:45",
			ArrivalDate:      domain.MustDate("2026-11-25"),
			ArrivalTime:      "21:10",
			Gate:             "C3",
			Terminal:         "S",
			Seat:             "8C",
			Status:           domain.StatusDelayed,
			BookingReference: "GHI789",
			PassengerName:    "Jane Smith",
			CreatedAt:        created,
		},
		{
			ID:               "4",
			UserID:           "user2",
			FlightNumber:     "BA0178",
			Airline:          "British Airways",
			DepartureAirport: "LHR",
			ArrivalAirport:   "JFK",
			DepartureDate:    domain.MustDate("2024-06-10"),
			DepartureTime:    "10:20",
			ArrivalDate:      domain.MustDate("2024-06-10"),
			ArrivalTime:      "13:05",
			Gate:             "B44",
			Terminal:         "5",
			Seat:             "31F",
			Status:           domain.StatusArrived,
			BookingReference: "JKL012",
			PassengerName:    "Jane Smith",
			CreatedAt:        created,
		},
		{
			ID:               "5",
			UserID:           "user1",
			FlightNumber:     "AF0023",
			Airline:          "Air France",
			DepartureAirport: "CDG",
			ArrivalAirport:   "JFK",
			DepartureDate:    domain.MustDate("2024-09-02"),
			DepartureTime:    "13:40",
			ArrivalDate:      domain.MustDate("2024-09-02"),
			ArrivalTime:      "15:55",
			Terminal:         "2E",
			Status:           domain.StatusCancelled,
			BookingReference: "MNO345",
			PassengerName:    "John Doe",
			CreatedAt:        created,
		},
		{
			ID:               "6",
			UserID:           "user3",
			FlightNumber:     "LH0400",
			Airline:          "Lufthansa",
			DepartureAirport: "FRA",
			ArrivalAirport:   "JFK",
			DepartureDate:    domain.MustDate("2025-03-14"),
			DepartureTime:    "10:05",
			ArrivalDate:      domain.MustDate("2025-03-14"),
			ArrivalTime:      "12:50",
			Gate:             "Z25",
			Terminal:         "1",
			Seat:             "14B",
			Status:           domain.StatusDeparted,
			BookingReference: "PQR678",
			PassengerName:    "Maria Garcia-Lopez",
			CreatedAt:        created,
		},
	}
}
