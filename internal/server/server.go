// Package server exposes the portfolio REST API and the gated admin mount.
package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/cors"

	"github.com/jdoe/portfolio-backend/internal/config"
	"github.com/jdoe/portfolio-backend/internal/notify"
	"github.com/jdoe/portfolio-backend/internal/store"
)

type Server struct {
	cfg       *config.Config
	store     store.Store
	cache     *cache.Cache
	notifier  notify.Notifier
	jwtSecret []byte
}

func New(cfg *config.Config, st store.Store, notifier notify.Notifier) *Server {
	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		cfg.AdminPassword = "admin123"
		log.Println("WARNING: Using default admin password. Set ADMIN_PASSWORD environment variable.")
	}
	secret := []byte(cfg.JWTSecret)
	if len(secret) == 0 {
		secret = newJWTSecret()
	}
	return &Server{
		cfg:       cfg,
		store:     st,
		cache:     cache.New(5*time.Minute, 10*time.Minute),
		notifier:  notifier,
		jwtSecret: secret,
	}
}

// Handler builds the full HTTP handler: API routes, the basic-auth-gated
// admin static mount, and CORS around everything.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/about", s.handleAbout)
	mux.HandleFunc("/api/resume", s.handleResume)
	mux.HandleFunc("/api/projects", s.handleProjects)
	mux.HandleFunc("/api/experience", s.handleExperience)
	mux.HandleFunc("/api/certificates", s.handleCertificates)
	mux.HandleFunc("/api/skills", s.handleSkills)
	mux.HandleFunc("/api/contact", s.handleContact)
	mux.HandleFunc("/api/auth/login", s.handleLogin)

	// The admin UI is static files; the gate runs before any of them are
	// served.
	admin := http.StripPrefix("/admin/", http.FileServer(http.Dir(s.cfg.AdminDir)))
	mux.Handle("/admin/", s.requireAdmin(admin))

	c := cors.New(cors.Options{
		AllowedOrigins: s.cfg.Origins(),
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(mux)
}

// ListenAndServe runs the server on the configured address.
func (s *Server) ListenAndServe() error {
	log.Printf("portfolio backend listening on %s", s.cfg.ListenAddr)
	return http.ListenAndServe(s.cfg.ListenAddr, s.Handler())
}

// getCached serves read traffic through the in-process cache; mutations
// drop the key so the next read refetches.
func (s *Server) getCached(key string, fetch func() (any, error)) (any, error) {
	if data, found := s.cache.Get(key); found {
		return data, nil
	}
	data, err := fetch()
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, data, cache.DefaultExpiration)
	return data, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

// writeError sends the structured error body. The message is for the
// client; internal detail stays in the log.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeStoreError maps store failures onto the API error taxonomy.
func writeStoreError(w http.ResponseWriter, err error, kind string) {
	switch {
	case errors.Is(err, store.ErrInvalidID):
		writeError(w, http.StatusBadRequest, "Valid ID is required")
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, kind+" not found")
	default:
		log.Printf("store error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to access "+kind)
	}
}

func methodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
}
