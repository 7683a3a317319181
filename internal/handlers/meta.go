package handlers

import (
	"net/http"

	"neuralink-backend/internal/consultations"
	"neuralink-backend/internal/transport"
)

type APIInfo struct {
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}

type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}

func (s *Server) GetAPIInfo(w http.ResponseWriter, r *http.Request) {
	transport.WriteJSON(w, http.StatusOK, APIInfo{
		Name:    ServiceName,
		Version: APIVersion,
		Endpoints: []string{
			"/api/health",
			"/api/services",
			"/api/team",
			"/api/contact",
		},
	})
}

func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	transport.WriteJSON(w, http.StatusOK, Health{
		Status:    "OK",
		Timestamp: s.now().UTC().Format(consultations.TimestampLayout),
		Service:   ServiceName,
	})
}

func (s *Server) NotFound(w http.ResponseWriter, r *http.Request) {
	s.logWithRequest(r).Debug("route not found")
	transport.WriteRouteNotFound(w)
}
