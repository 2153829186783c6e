package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Proged2021/SkillMiner/internal/server/middleware"
)

// authorizeUserPath checks that the authenticated user matches the {id} path
// segment. Dashboard data is private to its owner.
func authorizeUserPath(r *http.Request) (uuid.UUID, error) {
	pathID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, &ErrValidation{Field: "id", Message: "must be a valid UUID"}
	}

	authID, err := middleware.GetUserID(r)
	if err != nil {
		return uuid.Nil, err
	}
	if authID != pathID {
		return uuid.Nil, &ErrForbidden{}
	}
	return pathID, nil
}

// handleListSkills returns the authenticated user's stored skills.
func (s *Server) handleListSkills(w http.ResponseWriter, r *http.Request) {
	userID, err := authorizeUserPath(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	skills, err := s.db.ListSkills(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list skills")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"skills": skills})
}

// handleGetAnalysis returns the authenticated user's most recent report.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	userID, err := authorizeUserPath(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	report, err := s.db.LatestAnalysis(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get analysis")
		return
	}
	if report == nil {
		s.errorResponse(w, http.StatusNotFound, "No analysis found")
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}
