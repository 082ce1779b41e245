package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"rental-server/auth"
	"rental-server/confs"
	"rental-server/db"
	"rental-server/handlers"
	httpHandler "rental-server/handlers/http"
	"rental-server/repositories"
	"rental-server/usecases"
	"rental-server/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Server struct {
	app *gin.Engine
	db  db.Database
	cfg confs.Config
}

func NewServer(database db.Database, cfg confs.Config) *Server {
	return &Server{
		app: gin.Default(),
		db:  database,
		cfg: cfg,
	}
}

func (s *Server) Start() {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{s.cfg.CORSOrigin}
	config.AllowCredentials = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	// Liveness route
	s.app.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "This server is running")
	})

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	houseRepo := repositories.NewHousePgRepository(s.db)
	bookingRepo := repositories.NewBookedHousePgRepository(s.db)

	// WebSocket manager and booking feed
	manager := ws.NewManager()
	wsHandler := handlers.NewWSHandler(manager, s.cfg.JWTSecret)

	// Initialize use cases
	userUseCase := usecases.NewUserUseCase(userRepo, s.cfg.JWTSecret)
	houseUseCase := usecases.NewHouseUseCase(houseRepo)
	bookingUseCase := usecases.NewBookingUseCase(bookingRepo, wsHandler)

	// Initialize handlers
	userHandler := httpHandler.NewUserHandler(userUseCase)
	houseHandler := httpHandler.NewHouseHandler(houseUseCase)
	bookingHandler := httpHandler.NewBookingHandler(bookingUseCase)

	secret := s.cfg.JWTSecret

	// Public routes
	s.app.POST("/register", userHandler.Register)
	s.app.POST("/login", userHandler.Login)
	s.app.GET("/allOwnerHouse", houseHandler.GetAllHouses)

	// House-owner routes
	s.app.GET("/allUser", auth.CheckAuth(secret, "house-owner"), userHandler.GetAllUsers)
	s.app.GET("/findIdByHOuse/:id", auth.CheckAuth(secret, "house-owner"), houseHandler.GetHousesByOwner)
	s.app.POST("/postHouse", auth.CheckAuth(secret, "house-owner"), houseHandler.CreateHouse)
	s.app.PUT("/editHouse/:id", auth.CheckAuth(secret, "house-owner"), houseHandler.UpdateHouse)
	s.app.DELETE("/deletHouse/:id", auth.CheckAuth(secret, "house-owner"), houseHandler.DeleteHouse)
	s.app.GET("/getBookedHousebyId/:id", auth.CheckAuth(secret, "house-owner"), bookingHandler.GetBookingsByOwner)

	// House-renter routes
	s.app.GET("/getSingleBooked-house/:email", auth.CheckAuth(secret, "house-renter"), bookingHandler.GetBookingsByRenter)
	s.app.POST("/bookedHouse", auth.CheckAuth(secret, "house-renter"), bookingHandler.CreateBooking)
	s.app.DELETE("/dletBookedHouse/:id", auth.CheckAuth(secret, "house-renter"), bookingHandler.DeleteBooking)

	// Booking event feed for owners (token in query, websocket upgrade)
	s.app.GET("/ws/bookings", wsHandler.HandleOwnerWS)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + s.cfg.Port,
		Handler: s.app,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("port", s.cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received, draining connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server stopped")
}
