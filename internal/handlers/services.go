package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"neuralink-backend/internal/catalog"
	"neuralink-backend/internal/httpx"
	"neuralink-backend/internal/transport"
)

func (s *Server) ListServices(w http.ResponseWriter, r *http.Request) {
	s.writeCachedJSON(w, r, "services:all", func() interface{} {
		return s.Catalog.ListServices()
	})
}

func (s *Server) GetService(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	raw := httpx.PathParam(r, "id")

	var svc catalog.Service
	err := catalog.ErrServiceNotFound
	if id, ok := httpx.ParseID(raw); ok {
		svc, err = s.Catalog.GetService(id)
	}
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			log.Info("services get: not found", slog.String("service_id", raw))
			transport.WriteError(w, http.StatusNotFound, "Service not found", fmt.Sprintf("Service with ID %s does not exist", raw))
			return
		}
		log.Error("services get: unexpected error", slog.String("error", err.Error()))
		transport.WriteInternalError(w)
		return
	}

	transport.WriteJSON(w, http.StatusOK, svc)
}
