package server

import (
	"context"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Server wraps the HTTP server serving the store API.
type Server struct {
	http *http.Server
}

// NewServer creates a new server instance
func NewServer(router *gin.Engine, host, port string) *Server {
	return &Server{
		http: &http.Server{
			Addr:    net.JoinHostPort(host, port),
			Handler: router,
		},
	}
}

// Start serves until the listener fails or Stop is called.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
