package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Proged2021/SkillMiner/internal/analysis"
	"github.com/Proged2021/SkillMiner/internal/config"
	"github.com/Proged2021/SkillMiner/internal/db"
	"github.com/Proged2021/SkillMiner/internal/sns"
	"github.com/Proged2021/SkillMiner/internal/types"
)

// fakeDB is an in-memory DBClient for handler tests.
type fakeDB struct {
	mu         sync.Mutex
	users      map[uuid.UUID]*db.User
	analyses   map[uuid.UUID]*types.Report
	skills     map[uuid.UUID][]db.Skill
	profiles   map[uuid.UUID][]types.SNSProfile
	failWrites bool
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		users:    make(map[uuid.UUID]*db.User),
		analyses: make(map[uuid.UUID]*types.Report),
		skills:   make(map[uuid.UUID][]db.Skill),
		profiles: make(map[uuid.UUID][]types.SNSProfile),
	}
}

func (f *fakeDB) EmailExists(_ context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeDB) CreateUser(_ context.Context, name, email, passwordHash string) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := uuid.New()
	f.users[id] = &db.User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	return id, nil
}

func (f *fakeDB) GetUser(_ context.Context, id uuid.UUID) (*db.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[id], nil
}

func (f *fakeDB) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeDB) SaveAnalysis(_ context.Context, userID uuid.UUID, report *types.Report) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrites {
		return uuid.Nil, fmt.Errorf("storage unavailable")
	}
	f.analyses[userID] = report
	return uuid.New(), nil
}

func (f *fakeDB) LatestAnalysis(_ context.Context, userID uuid.UUID) (*types.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.analyses[userID], nil
}

func (f *fakeDB) CreateSkill(_ context.Context, userID uuid.UUID, name, category string, level int, hidden bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrites {
		return fmt.Errorf("storage unavailable")
	}
	f.skills[userID] = append(f.skills[userID], db.Skill{
		ID:       uuid.New(),
		UserID:   userID,
		Name:     name,
		Category: category,
		Level:    level,
		Hidden:   hidden,
	})
	return nil
}

func (f *fakeDB) ListSkills(_ context.Context, userID uuid.UUID) ([]db.Skill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.skills[userID], nil
}

func (f *fakeDB) SaveSNSProfile(_ context.Context, userID uuid.UUID, profile types.SNSProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrites {
		return fmt.Errorf("storage unavailable")
	}
	f.profiles[userID] = append(f.profiles[userID], profile)
	return nil
}

// stubGenerator returns a canned report and records its inputs.
type stubGenerator struct {
	report   *types.Report
	outcome  analysis.Outcome
	attrs    types.UserAttributes
	profiles []types.SNSProfile
}

func (g *stubGenerator) Generate(_ context.Context, attrs types.UserAttributes, profiles []types.SNSProfile) (*types.Report, analysis.Outcome) {
	g.attrs = attrs
	g.profiles = profiles
	return g.report, g.outcome
}

// stubSynthesizer returns one mock record per non-empty handle.
type stubSynthesizer struct{}

func (stubSynthesizer) Profiles(_ context.Context, requests []sns.Request) []types.SNSProfile {
	var profiles []types.SNSProfile
	for _, req := range requests {
		if req.Handle != "" {
			profiles = append(profiles, types.SNSProfile{Platform: req.Platform, Username: req.Handle})
		}
	}
	return profiles
}

func testReport() *types.Report {
	return &types.Report{
		HiddenSkills: []types.HiddenSkill{
			{
				Name:            "テクニカルライティング",
				Category:        types.CategoryCommunication,
				Confidence:      0.85,
				Description:     "複雑な内容を分かりやすく説明する力",
				RevenueEstimate: "月3〜8万円",
				DemandLevel:     types.DemandHigh,
			},
		},
		MatchedJobs: []types.MatchedJob{
			{
				Title:          "技術ブログ記事執筆",
				Company:        "クラウドワークス",
				MatchRate:      92,
				Salary:         "1記事 5,000〜15,000円",
				Difficulty:     types.DifficultyBeginner,
				Description:    "技術トピックの解説記事を作成",
				RequiredSkills: []string{"ライティング"},
				URL:            "https://crowdworks.jp/",
			},
		},
		Roadmap: []types.RoadmapStep{
			{Week: 1, Title: "スキル棚卸しと目標設定", Description: "現状把握", Milestone: "目標設定"},
		},
	}
}

// newTestServer wires a Server with fakes; no network or database involved.
func newTestServer(database DBClient, gen ReportGenerator) *Server {
	s := &Server{
		db:          database,
		generator:   gen,
		synthesizer: stubSynthesizer{},
		validator:   validator.New(),
	}
	s.jwtService = NewJWTService(&config.JWTConfig{
		Secret:          "test-secret-key-for-jwt-signing-minimum-32-bytes",
		ExpirationHours: 24,
	})
	s.userService = NewUserService(database, &config.PasswordConfig{BcryptCost: 10})
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)
	return s
}
