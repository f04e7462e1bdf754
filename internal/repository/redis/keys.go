package redis

import (
	"fmt"
	"strings"
)

const ns = "flightdesk:v1"

func KeyFlights() string {
	return ns + ":flights:all"
}

func KeyRateLimit(scope, id string) string {
	return fmt.Sprintf("%s:rl:%s:%s", ns, scope, id)
}

func KeyIdemCheckIn(bookingRef, idemKey string) string {
	return fmt.Sprintf("%s:idem:checkin:%s:%s", ns, strings.ToUpper(bookingRef), idemKey)
}

func ChannelCheckIns() string {
	return ns + ":checkins"
}
