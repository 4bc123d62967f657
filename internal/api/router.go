package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/MNhat168/sport-zone-fe-sub005/internal/booking"
	bookingHttp "github.com/MNhat168/sport-zone-fe-sub005/internal/booking/http"
	"github.com/MNhat168/sport-zone-fe-sub005/internal/field"
	fieldHttp "github.com/MNhat168/sport-zone-fe-sub005/internal/field/http"
	"github.com/MNhat168/sport-zone-fe-sub005/internal/schedule"
	scheduleHttp "github.com/MNhat168/sport-zone-fe-sub005/internal/schedule/http"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string // Comma-separated list of allowed origins in production

	FieldService    field.Service
	PhotoService    field.PhotoService
	ScheduleService schedule.Service
	BookingService  booking.Service
}

// NewRouter assembles the gin engine: global middleware (Logger, Recovery,
// CORS) plus the routes of every module under /v1.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = splitOrigins(cfg.ProdOrigins)
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	fieldHandler := fieldHttp.NewHandler(cfg.FieldService, cfg.PhotoService)
	scheduleHandler := scheduleHttp.NewHandler(cfg.ScheduleService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)

	v1 := r.Group("/v1")
	{
		fieldHttp.RegisterRoutes(v1, fieldHandler)
		scheduleHttp.RegisterRoutes(v1, scheduleHandler)
		bookingHttp.RegisterRoutes(v1, bookingHandler)
	}

	return r
}

func splitOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
