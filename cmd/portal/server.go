package main

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/phoopyae1/OSS/pkg/auth"
	"github.com/phoopyae1/OSS/pkg/portal"
	"github.com/phoopyae1/OSS/pkg/store"
)

// Server represents the HTTP server for the portal.
type Server struct {
	logger   *logrus.Logger
	handlers *Handlers
	tokens   *auth.Tokens
}

// NewServer creates a new Server instance with the provided store, token
// signer and logger.
func NewServer(st *store.Store, tokens *auth.Tokens, logger *logrus.Logger) *Server {
	handlers := NewHandlers(logger, st, portal.New(st, logger), tokens)

	return &Server{
		logger:   logger,
		handlers: handlers,
		tokens:   tokens,
	}
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/health", s.handlers.Health).Methods("GET")

	router.HandleFunc("/api/service-status", s.handlers.ServiceStatus).Methods("GET")
	router.HandleFunc("/api/notifications", s.handlers.Notifications).Methods("GET")

	router.HandleFunc("/api/login", s.handlers.Login).Methods("POST")
	router.Handle("/api/dashboard", s.requireAuth(http.HandlerFunc(s.handlers.Dashboard))).Methods("GET")

	admin := router.PathPrefix("/api/admin").Subrouter()
	admin.Use(s.requireAdmin)
	admin.HandleFunc("/services", s.handlers.ListServices).Methods("GET")
	admin.HandleFunc("/services", s.handlers.CreateService).Methods("POST")
	admin.HandleFunc("/services/{id}", s.handlers.GetService).Methods("GET")
	admin.HandleFunc("/services/{id}", s.handlers.UpdateService).Methods("PUT")
	admin.HandleFunc("/services/{id}", s.handlers.DeleteService).Methods("DELETE")
	admin.HandleFunc("/announcements", s.handlers.ListAnnouncements).Methods("GET")
	admin.HandleFunc("/announcements", s.handlers.CreateAnnouncement).Methods("POST")
	admin.HandleFunc("/announcements/{id}", s.handlers.GetAnnouncement).Methods("GET")
	admin.HandleFunc("/announcements/{id}", s.handlers.UpdateAnnouncement).Methods("PUT")
	admin.HandleFunc("/announcements/{id}", s.handlers.DeleteAnnouncement).Methods("DELETE")
	admin.HandleFunc("/openapi", s.handlers.OpenAPI).Methods("GET")

	router.Use(s.loggingMiddleware)

	return router
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		s.logger.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start),
		}).Info("Request processed")
	})
}

// Start begins listening for HTTP requests on the specified address.
func (s *Server) Start(addr string) error {
	handler := s.setupRoutes()
	s.logger.Infof("Starting portal server on %s", addr)
	return http.ListenAndServe(addr, handler)
}
