package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/inkwell/blog-backend/auth"
	"github.com/inkwell/blog-backend/config"
	"github.com/inkwell/blog-backend/database"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(database database.Database) (Server, error) {
	c := config.New()

	port := c.GetString("PORT", "5001")
	address := fmt.Sprintf("0.0.0.0:%s", port)

	startupTime := time.Now()

	router := newRouter(database, withConfig(c), withStartupTime(startupTime))

	readTimeout := time.Duration(c.GetInt("READ_TIMEOUT_SECONDS", 180)) * time.Second
	writeTimeout := time.Duration(c.GetInt("WRITE_TIMEOUT_SECONDS", 180)) * time.Second
	idleTimeout := time.Duration(c.GetInt("IDLE_TIMEOUT_SECONDS", 180)) * time.Second

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      config.Config
	startupTime time.Time
}

func withConfig(c config.Config) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(database database.Database, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(requestIDMiddleware)
	chiRouter.Use(LogInternalServerErrors)

	acceptedOrigins := strings.Split(router.config.GetString("CORS_ORIGINS", "http://localhost:3000"), ",")
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   acceptedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", tokenHeader},
		AllowCredentials: true,
	}))

	secret := router.config.GetString("JWT_SECRET_KEY", "jwt_secret_key_fallback_change_me")
	ttl := time.Duration(router.config.GetInt("JWT_EXPIRATION_DELTA_HOURS", 24)) * time.Hour
	tokens := auth.NewTokenService(secret, ttl)

	handlers := initializeHandlers(database, tokens)
	authMiddleware := newAuthMiddleware(tokens, database.UserRepo())

	setupRoutes(chiRouter, handlers, authMiddleware)

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
