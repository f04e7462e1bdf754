package checkin

import (
	"errors"
	"fmt"
)

var (
	ErrFlightNotFound = errors.New("flight not found")
	ErrCheckInClosed  = errors.New("check-in is closed for this flight")
)

type InvalidSeatError struct {
	Seat string
}

func (e InvalidSeatError) Error() string {
	return fmt.Sprintf("seat %q is not available", e.Seat)
}
