package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Proged2021/SkillMiner/internal/analysis"
	"github.com/Proged2021/SkillMiner/internal/sns"
	"github.com/Proged2021/SkillMiner/internal/types"
)

// outcomeHeader carries the report provenance so operators can watch
// fallback rates without parsing response bodies.
const outcomeHeader = "X-Analysis-Outcome"

// analyzeTimeout bounds a single delegation round trip. A slow upstream
// degrades to local synthesis instead of stalling the request.
const analyzeTimeout = 60 * time.Second

// handleAnalyze runs the full analysis flow: profile synthesis, report
// generation, and best-effort persistence. The endpoint always answers 200
// with a well-formed report unless the request itself is invalid.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), analyzeTimeout)
	defer cancel()

	profiles := s.synthesizer.Profiles(ctx, []sns.Request{
		{Platform: sns.PlatformTwitter, Handle: req.TwitterUsername},
		{Platform: sns.PlatformLinkedIn, Handle: req.LinkedinUsername},
	})

	report, outcome := s.generator.Generate(ctx, req.Attributes(), profiles)

	if userID, err := uuid.Parse(req.UserID); err == nil && req.UserID != "" {
		s.persistAnalysis(r.Context(), userID, report, profiles)
	}

	w.Header().Set(outcomeHeader, string(outcome))
	s.jsonResponse(w, http.StatusOK, report)
}

// persistAnalysis stores the report, its hidden skills and the profile
// records for a known user. Persistence is best effort: a storage fault is
// logged and never surfaces to the caller, who already has their report.
func (s *Server) persistAnalysis(ctx context.Context, userID uuid.UUID, report *types.Report, profiles []types.SNSProfile) {
	for _, profile := range profiles {
		if err := s.db.SaveSNSProfile(ctx, userID, profile); err != nil {
			log.Printf("analyze: failed to save %s profile for user %s: %v", profile.Platform, userID, err)
		}
	}

	if _, err := s.db.SaveAnalysis(ctx, userID, report); err != nil {
		log.Printf("analyze: failed to save analysis for user %s: %v", userID, err)
		return
	}

	for _, skill := range report.HiddenSkills {
		level := analysis.SkillLevel(skill.Confidence)
		if err := s.db.CreateSkill(ctx, userID, skill.Name, skill.Category, level, true); err != nil {
			log.Printf("analyze: failed to save skill %q for user %s: %v", skill.Name, userID, err)
		}
	}
}
