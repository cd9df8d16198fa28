// Package ui hosts the JSON API around the comparison service. It
// marshals the documented request/response shapes; all computation lives
// behind the app layer.
package ui

import (
	"github.com/gin-gonic/gin"

	"govalue/app"
	"govalue/internal"
	"govalue/internal/config"
)

// Server represents the public API server
type Server struct {
	router  *gin.Engine
	service *app.CompareService
	logger  *internal.Logger
}

// NewServer creates the API server and registers routes
func NewServer(service *app.CompareService, cfg config.ServerConfig, logger *internal.Logger) *Server {
	gin.SetMode(cfg.GinMode)

	s := &Server{
		router:  gin.New(),
		service: service,
		logger:  logger,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(requestLogger(s.logger))
}

func (s *Server) setupRoutes() {
	s.router.GET("/docs", s.handleDocs)

	api := s.router.Group("/api/v1")
	api.GET("/health", s.handleHealth)
	api.POST("/compare", s.handleCompare)
}

// Start runs the HTTP server on the given address
func (s *Server) Start(addr string) error {
	s.logger.Info("API server listening on %s", addr)
	return s.router.Run(addr)
}

// Router exposes the gin engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}
