package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/campus-facility-reservation/internal/config"
	"github.com/iliyamo/campus-facility-reservation/internal/database"
	"github.com/iliyamo/campus-facility-reservation/internal/handler"
	"github.com/iliyamo/campus-facility-reservation/internal/middleware"
	"github.com/iliyamo/campus-facility-reservation/internal/queue"
	"github.com/iliyamo/campus-facility-reservation/internal/repository"
	"github.com/iliyamo/campus-facility-reservation/internal/router"
)

func main() {
	// .env is a convenience for local development; in deployed
	// environments the variables come from the process environment.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	students := repository.NewStudentRepo(db)
	tokens := repository.NewTokenRepo(db)
	rooms := repository.NewRoomRepo(db)
	seats := repository.NewSeatRepo(db)
	reservations := repository.NewReservationRepo(db)

	authHandler := handler.NewAuthHandler(cfg, students, tokens)
	facilityHandler := handler.NewFacilityHandler(rooms, seats, reservations)
	reservationHandler := handler.NewReservationHandler(rooms, seats, reservations)

	// Redis backs both the rate limiter and the browse-endpoint cache.
	// A nil client (Redis down or unconfigured) turns both into
	// pass-throughs rather than blocking startup.
	rdb := config.NewRedisClient()

	e := echo.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	var cacheMW echo.MiddlewareFunc
	if rdb != nil {
		cacheMW = middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	}

	router.RegisterRoutes(e)
	router.RegisterPublic(e, facilityHandler, cacheMW)
	router.RegisterAuth(e, authHandler, reservationHandler, cfg.JWTSecret)

	// The confirmation consumer keeps its own connection and reconnect
	// loop; a broker outage never affects request serving.
	go func() {
		if err := queue.StartReservationConsumer(); err != nil {
			log.Printf("reservation consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
