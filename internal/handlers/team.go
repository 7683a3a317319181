package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"neuralink-backend/internal/catalog"
	"neuralink-backend/internal/httpx"
	"neuralink-backend/internal/transport"
)

func (s *Server) ListTeam(w http.ResponseWriter, r *http.Request) {
	s.writeCachedJSON(w, r, "team:all", func() interface{} {
		return s.Catalog.ListTeam()
	})
}

func (s *Server) GetTeamMember(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	raw := httpx.PathParam(r, "id")

	var member catalog.TeamMember
	err := catalog.ErrTeamMemberNotFound
	if id, ok := httpx.ParseID(raw); ok {
		member, err = s.Catalog.GetTeamMember(id)
	}
	if err != nil {
		if errors.Is(err, catalog.ErrTeamMemberNotFound) {
			log.Info("team get: not found", slog.String("member_id", raw))
			transport.WriteError(w, http.StatusNotFound, "Team member not found", fmt.Sprintf("Team member with ID %s does not exist", raw))
			return
		}
		log.Error("team get: unexpected error", slog.String("error", err.Error()))
		transport.WriteInternalError(w)
		return
	}

	transport.WriteJSON(w, http.StatusOK, member)
}

// FindTeamByExpertise answers 404 rather than an empty list when nobody matches.
func (s *Server) FindTeamByExpertise(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	skill := strings.ToLower(httpx.PathParam(r, "skill"))

	members, err := s.Catalog.FindTeamByExpertise(skill)
	if err != nil {
		if errors.Is(err, catalog.ErrNoTeamMembersFound) {
			log.Info("team expertise: no match", slog.String("skill", skill))
			transport.WriteError(w, http.StatusNotFound, "No team members found", fmt.Sprintf(`No team members found with expertise in "%s"`, skill))
			return
		}
		log.Error("team expertise: unexpected error", slog.String("error", err.Error()))
		transport.WriteInternalError(w)
		return
	}

	log.Info("team expertise: ok", slog.String("skill", skill), slog.Int("count", len(members)))
	transport.WriteJSON(w, http.StatusOK, members)
}
