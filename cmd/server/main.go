package main // Entry point package

import (
	"context" // Context for startup database calls
	"log"     // Logging library

	"github.com/joho/godotenv"    // Loads .env files for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/event-seating/internal/config"     // Internal config loader
	"github.com/iliyamo/event-seating/internal/database"   // MySQL connection helper
	"github.com/iliyamo/event-seating/internal/handler"    // HTTP handlers
	"github.com/iliyamo/event-seating/internal/queue"      // RabbitMQ consumer
	"github.com/iliyamo/event-seating/internal/repository" // Blob stores and repositories
	"github.com/iliyamo/event-seating/internal/router"     // Route registration
	"github.com/iliyamo/event-seating/internal/seating"    // Seat allocator
	"github.com/iliyamo/event-seating/internal/service"    // Reservation coordinator
)

func main() {
	_ = godotenv.Load() // Load .env when present; real env vars win

	cfg := config.Load() // Load environment config
	cfg.Validate()       // Enforce driver-specific requirements

	rdb := config.NewRedisClient() // May be nil; rate limiting degrades gracefully

	// Select the blob store backend holding the two inventory records.
	var store repository.BlobStore
	switch cfg.StoreDriver {
	case "mysql":
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("mysql: %v", err)
		}
		mysqlStore := repository.NewMySQLBlobStore(db)
		if err := mysqlStore.EnsureSchema(context.Background()); err != nil {
			log.Fatalf("mysql schema: %v", err)
		}
		store = mysqlStore
	case "redis":
		if rdb == nil {
			log.Fatal("STORE_DRIVER=redis but redis is unreachable")
		}
		store = repository.NewRedisBlobStore(rdb, "seating")
	default: // "memory"
		log.Printf("using in-memory store; inventory is lost on restart")
		store = repository.NewMemoryBlobStore()
	}

	// Wire the engine: repositories, allocator, coordinator, handlers.
	seats := repository.NewSeatStatusRepo(store)
	resv := repository.NewReservationRepo(store)
	coord := service.New(seats, resv, seating.New(nil))

	resvHandler := handler.NewReservationHandler(coord)
	seatHandler := handler.NewSeatHandler(coord)

	// Journal reservation events in the background; the consumer keeps
	// reconnecting on broker outages.
	go func() {
		if err := queue.StartReservationConsumer(); err != nil {
			log.Printf("reservation consumer stopped: %v", err)
		}
	}()

	e := echo.New()          // Create Echo instance
	router.RegisterRoutes(e) // Health check
	router.RegisterPublic(e, resvHandler, seatHandler, config.LoadRateLimitConfig(), rdb)
	router.RegisterAdmin(e, resvHandler, seatHandler, cfg.JWTSecret)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
