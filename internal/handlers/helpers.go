package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"neuralink-backend/internal/transport"
)

const defaultCacheTTL = 5 * time.Minute

// writeCachedJSON serves key from the cache when present, otherwise encodes
// build() and stores the payload. Cache failures fall through to encoding.
func (s *Server) writeCachedJSON(w http.ResponseWriter, r *http.Request, key string, build func() interface{}) {
	log := s.logWithRequest(r)
	if s.Cache != nil {
		if cached, ok, err := s.Cache.Get(r.Context(), key); err == nil && ok {
			log.Debug("cache hit", slog.String("key", key))
			transport.WriteRaw(w, http.StatusOK, cached)
			return
		} else if err != nil {
			log.Warn("cache get failed", slog.String("key", key), slog.String("error", err.Error()))
		}
	}

	payload, err := transport.Encode(build())
	if err != nil {
		log.Error("encode failed", slog.String("key", key), slog.String("error", err.Error()))
		transport.WriteInternalError(w)
		return
	}

	if s.Cache != nil {
		if err := s.Cache.Set(r.Context(), key, payload, s.cacheTTL()); err != nil {
			log.Warn("cache set failed", slog.String("key", key), slog.String("error", err.Error()))
		}
	}
	transport.WriteRaw(w, http.StatusOK, payload)
}

func (s *Server) cacheTTL() time.Duration {
	if s.Cfg != nil && s.Cfg.CacheTTLSeconds > 0 {
		return s.Cfg.CacheTTL()
	}
	return defaultCacheTTL
}
