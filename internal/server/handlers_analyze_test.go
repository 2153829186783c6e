package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Proged2021/SkillMiner/internal/analysis"
	"github.com/Proged2021/SkillMiner/internal/types"
)

func analyzeBody(t *testing.T, req types.AnalyzeRequest) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(req)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func TestHandleAnalyze_Success(t *testing.T) {
	database := newFakeDB()
	gen := &stubGenerator{report: testReport(), outcome: analysis.OutcomeDelegated}
	s := newTestServer(database, gen)

	body := analyzeBody(t, types.AnalyzeRequest{
		Skills:     []string{"Excel", "プレゼン資料作成"},
		Hobbies:    []string{"読書", "ブログ"},
		Occupation: "営業職",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	w := httptest.NewRecorder()

	s.handleAnalyze(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "delegated", w.Header().Get("X-Analysis-Outcome"))

	var report types.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, "テクニカルライティング", report.HiddenSkills[0].Name)

	assert.Equal(t, "営業職", gen.attrs.Occupation)
	assert.Empty(t, gen.profiles, "no handles given, no profiles expected")
}

func TestHandleAnalyze_OutcomeHeader(t *testing.T) {
	tests := []struct {
		name    string
		outcome analysis.Outcome
	}{
		{name: "delegated", outcome: analysis.OutcomeDelegated},
		{name: "fallback", outcome: analysis.OutcomeFallback},
		{name: "skipped", outcome: analysis.OutcomeSkipped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &stubGenerator{report: testReport(), outcome: tt.outcome}
			s := newTestServer(newFakeDB(), gen)

			body := analyzeBody(t, types.AnalyzeRequest{
				Skills:     []string{"Excel"},
				Hobbies:    []string{"読書"},
				Occupation: "会社員",
			})
			w := httptest.NewRecorder()
			s.handleAnalyze(w, httptest.NewRequest(http.MethodPost, "/api/analyze", body))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, string(tt.outcome), w.Header().Get("X-Analysis-Outcome"))
		})
	}
}

func TestHandleAnalyze_InvalidJSON(t *testing.T) {
	s := newTestServer(newFakeDB(), &stubGenerator{report: testReport(), outcome: analysis.OutcomeSkipped})

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()

	s.handleAnalyze(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleAnalyze_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		req  types.AnalyzeRequest
	}{
		{
			name: "missing skills",
			req:  types.AnalyzeRequest{Hobbies: []string{"読書"}, Occupation: "会社員"},
		},
		{
			name: "empty skills",
			req:  types.AnalyzeRequest{Skills: []string{}, Hobbies: []string{"読書"}, Occupation: "会社員"},
		},
		{
			name: "missing hobbies",
			req:  types.AnalyzeRequest{Skills: []string{"Excel"}, Occupation: "会社員"},
		},
		{
			name: "missing occupation",
			req:  types.AnalyzeRequest{Skills: []string{"Excel"}, Hobbies: []string{"読書"}},
		},
		{
			name: "malformed user id",
			req:  types.AnalyzeRequest{Skills: []string{"Excel"}, Hobbies: []string{"読書"}, Occupation: "会社員", UserID: "not-a-uuid"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(newFakeDB(), &stubGenerator{report: testReport(), outcome: analysis.OutcomeSkipped})

			w := httptest.NewRecorder()
			s.handleAnalyze(w, httptest.NewRequest(http.MethodPost, "/api/analyze", analyzeBody(t, tt.req)))

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandleAnalyze_ProfilesForwarded(t *testing.T) {
	gen := &stubGenerator{report: testReport(), outcome: analysis.OutcomeDelegated}
	s := newTestServer(newFakeDB(), gen)

	body := analyzeBody(t, types.AnalyzeRequest{
		Skills:          []string{"Excel"},
		Hobbies:         []string{"読書"},
		Occupation:      "会社員",
		TwitterUsername: "yamada_taro",
	})
	w := httptest.NewRecorder()
	s.handleAnalyze(w, httptest.NewRequest(http.MethodPost, "/api/analyze", body))

	require.Len(t, gen.profiles, 1)
	assert.Equal(t, "twitter", gen.profiles[0].Platform)
	assert.Equal(t, "yamada_taro", gen.profiles[0].Username)
}

func TestHandleAnalyze_PersistsForKnownUser(t *testing.T) {
	database := newFakeDB()
	gen := &stubGenerator{report: testReport(), outcome: analysis.OutcomeDelegated}
	s := newTestServer(database, gen)

	userID := uuid.New()
	body := analyzeBody(t, types.AnalyzeRequest{
		Skills:           []string{"Excel"},
		Hobbies:          []string{"読書"},
		Occupation:       "会社員",
		TwitterUsername:  "yamada_taro",
		LinkedinUsername: "taro-yamada",
		UserID:           userID.String(),
	})
	w := httptest.NewRecorder()
	s.handleAnalyze(w, httptest.NewRequest(http.MethodPost, "/api/analyze", body))

	assert.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, database.analyses[userID])
	assert.Len(t, database.profiles[userID], 2)

	skills := database.skills[userID]
	require.Len(t, skills, 1)
	assert.Equal(t, "テクニカルライティング", skills[0].Name)
	assert.True(t, skills[0].Hidden)
	// confidence 0.85 rounds to level 4 of 5
	assert.Equal(t, 4, skills[0].Level)
}

func TestHandleAnalyze_NoPersistenceWithoutUserID(t *testing.T) {
	database := newFakeDB()
	s := newTestServer(database, &stubGenerator{report: testReport(), outcome: analysis.OutcomeDelegated})

	body := analyzeBody(t, types.AnalyzeRequest{
		Skills:     []string{"Excel"},
		Hobbies:    []string{"読書"},
		Occupation: "会社員",
	})
	w := httptest.NewRecorder()
	s.handleAnalyze(w, httptest.NewRequest(http.MethodPost, "/api/analyze", body))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, database.analyses)
	assert.Empty(t, database.skills)
}

func TestHandleAnalyze_StorageFaultStillServesReport(t *testing.T) {
	database := newFakeDB()
	database.failWrites = true
	s := newTestServer(database, &stubGenerator{report: testReport(), outcome: analysis.OutcomeDelegated})

	body := analyzeBody(t, types.AnalyzeRequest{
		Skills:     []string{"Excel"},
		Hobbies:    []string{"読書"},
		Occupation: "会社員",
		UserID:     uuid.NewString(),
	})
	w := httptest.NewRecorder()
	s.handleAnalyze(w, httptest.NewRequest(http.MethodPost, "/api/analyze", body))

	assert.Equal(t, http.StatusOK, w.Code)

	var report types.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.NotEmpty(t, report.HiddenSkills)
}
