package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"neuralink-backend/internal/cache"
	"neuralink-backend/internal/catalog"
	"neuralink-backend/internal/config"
	"neuralink-backend/internal/middleware"
)

const (
	ServiceName = "NeuraLink AI Backend"
	APIVersion  = "1.0.0"
)

type Server struct {
	Cfg     *config.Config
	Catalog *catalog.Store
	Log     *slog.Logger
	Cache   cache.Cache
	Now     func() time.Time
}

func (s *Server) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return s.Log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return s.Log.With(slog.String("request_id", id))
	}
	return s.Log
}

func (s *Server) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
