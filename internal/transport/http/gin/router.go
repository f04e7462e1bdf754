package httpgin

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kirinyoku/flightdesk/internal/domain"
	"github.com/kirinyoku/flightdesk/internal/metrics"
	redisrepo "github.com/kirinyoku/flightdesk/internal/repository/redis"
	"github.com/kirinyoku/flightdesk/internal/service"
	"github.com/kirinyoku/flightdesk/internal/service/checkin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Limiter is satisfied by the Redis sliding window limiter and the local
// token bucket limiter.
type Limiter interface {
	Allow(ctx context.Context, id string) (bool, time.Duration, error)
}

type Deps struct {
	// Idempotency is optional; without it Idempotency-Key is ignored.
	Idempotency *redisrepo.IdempotencyStore
	// Limiter is optional; without it nothing is rate limited.
	Limiter Limiter
	Metrics *metrics.Metrics
	// Now defaults to time.Now.
	Now func() time.Time
}

func NewRouter(
	svcs *service.Services,
	deps Deps,
	logger *slog.Logger,
	middlewares ...gin.HandlerFunc,
) *gin.Engine {
	if deps.Metrics == nil {
		deps.Metrics = metrics.New()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	r := gin.New()

	r.Use(
		gin.Recovery(),
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		MetricsMiddleware(deps.Metrics),
		CORS(),
	)
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Directory
	r.GET("/lookup", handleLookup(svcs, deps))
	r.GET("/flights/:id", handleGetFlight(svcs))
	r.GET("/flight-status/:number", handleFlightStatus(svcs, deps))
	r.GET("/live-flights", handleLiveFlights(svcs))
	r.GET("/trips", handleTrips(svcs, deps))
	r.GET("/statuses/:status", handleStatusDisplay(svcs))

	// Check-in
	r.GET("/checkin/seats", handleSeatOptions())
	r.GET("/checkin", handleStartCheckIn(svcs, deps))
	r.POST("/checkin", handleCompleteCheckIn(svcs, deps))
	r.GET("/checkins/:flight_id", handleGetCheckIn(svcs))

	return r
}

// @Summary  Find a booking by reference and last name
// @Param    ref        query  string  true  "Booking reference"
// @Param    last_name  query  string  true  "Passenger last name"
// @Success  200  {object}  FlightResponse
// @Failure  400  {object}  ErrorResponse
// @Failure  404  {object}  ErrorResponse
// @Failure  429  {object}  ErrorResponse
// @Router   /lookup [get]
func handleLookup(svcs *service.Services, deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		ref := strings.TrimSpace(c.Query("ref"))
		lastName := strings.TrimSpace(c.Query("last_name"))
		if ref == "" || lastName == "" {
			badRequest(c, "ref and last_name are required")
			return
		}
		if !allow(c, deps, "lookup") {
			return
		}

		f, ok, err := svcs.Directory.FindByReferenceAndName(c.Request.Context(), ref, lastName)
		if err != nil {
			respondErr(c, err)
			return
		}
		deps.Metrics.ObserveLookup("reference", ok)
		if !ok {
			notFound(c, "flight not found")
			return
		}

		c.JSON(http.StatusOK, newFlightResponse(f))
	}
}

// @Summary  Get flight by ID
// @Param    id  path  string  true  "Flight ID"
// @Success  200  {object}  FlightResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /flights/{id} [get]
func handleGetFlight(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		f, ok, err := svcs.Directory.FindByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondErr(c, err)
			return
		}
		if !ok {
			notFound(c, "flight not found")
			return
		}

		writeJSONWithCache(c, http.StatusOK, newFlightResponse(f), "public, max-age=60", true)
	}
}

// @Summary  Get flight status by flight number
// @Param    number  path  string  true  "Flight number"
// @Success  200  {object}  FlightResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /flight-status/{number} [get]
func handleFlightStatus(svcs *service.Services, deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		f, ok, err := svcs.Directory.FindByFlightNumber(c.Request.Context(), c.Param("number"))
		if err != nil {
			respondErr(c, err)
			return
		}
		deps.Metrics.ObserveLookup("flight_number", ok)
		if !ok {
			notFound(c, "flight not found")
			return
		}

		writeJSONWithCache(c, http.StatusOK, newFlightResponse(f), "public, max-age=15", true)
	}
}

// @Summary  List flights that are still operating
// @Success  200  {array}  FlightResponse
// @Router   /live-flights [get]
func handleLiveFlights(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		flights, err := svcs.Directory.Live(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}

		writeJSONWithCache(c, http.StatusOK, newFlightResponses(flights), "public, max-age=15", true)
	}
}

// @Summary  Split trips into upcoming and past
// @Param    at  query  string  false  "Reference instant (RFC3339), default now"
// @Success  200  {object}  domain.Trips
// @Failure  400  {object}  ErrorResponse
// @Router   /trips [get]
func handleTrips(svcs *service.Services, deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		at := deps.Now()
		if raw := c.Query("at"); raw != "" {
			t, err := parseRFC3339(raw)
			if err != nil {
				badRequest(c, "invalid at (RFC3339)")
				return
			}
			at = t
		}

		trips, err := svcs.Directory.PartitionByTemporalBucket(c.Request.Context(), at)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, trips)
	}
}

// @Summary  Presentation attributes of a flight status
// @Param    status  path  string  true  "Flight status"
// @Success  200  {object}  domain.StatusDisplay
// @Router   /statuses/{status} [get]
func handleStatusDisplay(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := domain.FlightStatus(strings.ToLower(c.Param("status")))

		writeJSONWithCache(c, http.StatusOK, svcs.Directory.StatusDisplay(status), "public, max-age=3600", true)
	}
}

// @Summary  Seats offered at check-in
// @Success  200  {object}  SeatOptionsResponse
// @Router   /checkin/seats [get]
func handleSeatOptions() gin.HandlerFunc {
	return func(c *gin.Context) {
		writeJSONWithCache(c, http.StatusOK, SeatOptionsResponse{
			Seats:   checkin.SeatOptions(),
			Default: checkin.DefaultSeat,
		}, "public, max-age=3600", true)
	}
}

// @Summary  Start check-in for a booking
// @Param    ref        query  string  true  "Booking reference"
// @Param    last_name  query  string  true  "Passenger last name"
// @Success  200  {object}  checkin.Session
// @Failure  404  {object}  ErrorResponse
// @Failure  429  {object}  ErrorResponse
// @Router   /checkin [get]
func handleStartCheckIn(svcs *service.Services, deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		ref := strings.TrimSpace(c.Query("ref"))
		lastName := strings.TrimSpace(c.Query("last_name"))
		if ref == "" || lastName == "" {
			badRequest(c, "ref and last_name are required")
			return
		}
		if !allow(c, deps, "checkin") {
			return
		}

		sess, err := svcs.CheckIn.Start(c.Request.Context(), ref, lastName)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, sess)
	}
}

// @Summary  Complete check-in (idempotent)
// @Param    req  body  CheckInRequest  true  "payload"
// @Header   201  {string}  Idempotency-Key  "echo"
// @Success  201  {object}  CheckInResponse  "checked in"
// @Success  200  {object}  CheckInResponse  "already checked in"
// @Failure  400  {object}  ErrorResponse
// @Failure  404  {object}  ErrorResponse
// @Failure  409  {object}  ErrorResponse  "check-in closed / idem in progress"
// @Failure  429  {object}  ErrorResponse  "rate limited"
// @Router   /checkin [post]
func handleCompleteCheckIn(svcs *service.Services, deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckInRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		ctx := c.Request.Context()

		idemKey := strings.TrimSpace(c.GetHeader("Idempotency-Key"))
		var idemStorageKey string
		if deps.Idempotency != nil && idemKey != "" {
			idemStorageKey = redisrepo.KeyIdemCheckIn(req.BookingReference, idemKey)

			payload, done, acquired, err := deps.Idempotency.Begin(ctx, idemStorageKey, 60*time.Second)
			if err != nil {
				respondErr(c, err)
				return
			}
			if done {
				var prev CheckInResponse
				if err := json.Unmarshal([]byte(payload), &prev); err != nil {
					respondErr(c, err)
					return
				}
				c.Header("Idempotency-Key", idemKey)
				c.Data(checkInStatus(prev.Created), "application/json; charset=utf-8", []byte(payload))
				return
			}
			if !acquired {
				c.Header("Retry-After", "1")
				c.JSON(http.StatusConflict, ErrorResponse{Error: "idempotency key in progress"})
				return
			}
		}

		if !allow(c, deps, "checkin") {
			if idemStorageKey != "" {
				_ = deps.Idempotency.Release(ctx, idemStorageKey)
			}
			return
		}

		ci, created, err := svcs.CheckIn.Complete(ctx, req.BookingReference, req.LastName, req.Seat)
		if err != nil {
			if idemStorageKey != "" {
				_ = deps.Idempotency.Release(ctx, idemStorageKey)
			}
			respondErr(c, err)
			return
		}

		resp := CheckInResponse{CheckIn: ci, Created: created}
		if created {
			deps.Metrics.CheckIns.Inc()
		}

		if idemStorageKey != "" {
			b, _ := json.Marshal(resp)
			_ = deps.Idempotency.Save(ctx, idemStorageKey, string(b))
			c.Header("Idempotency-Key", idemKey)
		}

		c.JSON(checkInStatus(created), resp)
	}
}

// @Summary  Get the check-in of a flight
// @Param    flight_id  path  string  true  "Flight ID"
// @Success  200  {object}  domain.CheckIn
// @Failure  404  {object}  ErrorResponse
// @Router   /checkins/{flight_id} [get]
func handleGetCheckIn(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ci, ok := svcs.CheckIn.Get(c.Param("flight_id"))
		if !ok {
			notFound(c, "check-in not found")
			return
		}

		c.JSON(http.StatusOK, ci)
	}
}

// --- Helpers ---

// allow applies the rate limiter to the client IP. Limiter failures let the
// request through.
func allow(c *gin.Context, deps Deps, scope string) bool {
	if deps.Limiter == nil {
		return true
	}

	ok, retry, err := deps.Limiter.Allow(c.Request.Context(), scope+":"+c.ClientIP())
	if err != nil {
		_ = c.Error(err)
		return true
	}
	if ok {
		return true
	}

	deps.Metrics.RateLimited.WithLabelValues(scope).Inc()
	c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retry.Seconds()))))
	c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "rate limited"})

	return false
}

// checkInStatus is 201 for a new check-in and 200 for a repeat, including
// when the response is replayed from an Idempotency-Key.
func checkInStatus(created bool) int {
	if created {
		return http.StatusCreated
	}
	return http.StatusOK
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func notFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: msg})
}

func respondErr(c *gin.Context, err error) {
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	var seatErr checkin.InvalidSeatError

	switch {
	case errors.Is(err, checkin.ErrFlightNotFound):
		notFound(c, "flight not found")
	case errors.Is(err, checkin.ErrCheckInClosed):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "check-in closed"})
	case errors.As(err, &seatErr):
		badRequest(c, seatErr.Error())
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
