package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MNhat168/sport-zone-fe-sub005/internal/api"
	"github.com/MNhat168/sport-zone-fe-sub005/internal/booking"
	"github.com/MNhat168/sport-zone-fe-sub005/internal/field"
	"github.com/MNhat168/sport-zone-fe-sub005/internal/pkg/clock"
	"github.com/MNhat168/sport-zone-fe-sub005/internal/pkg/storage"
	"github.com/MNhat168/sport-zone-fe-sub005/internal/schedule"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	StoragePath  string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		return nil, err
	}

	// Field Module
	fieldRepo := field.NewPgxRepository(cfg.DBPool)
	fieldService := field.NewService(fieldRepo)
	photoService := field.NewPhotoService(fieldRepo, store)

	// Schedule Module
	scheduleRepo := schedule.NewPgxRepository(cfg.DBPool)
	scheduleService := schedule.NewService(scheduleRepo, fieldService, clock.System())

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, fieldService, scheduleService, clock.System())

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:    cfg.IsProduction,
		ProdOrigins:     cfg.ProdOrigins,
		FieldService:    fieldService,
		PhotoService:    photoService,
		ScheduleService: scheduleService,
		BookingService:  bookingService,
	})

	return &Container{Router: router}, nil
}
