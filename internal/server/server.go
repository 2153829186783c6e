package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Proged2021/SkillMiner/internal/analysis"
	"github.com/Proged2021/SkillMiner/internal/config"
	"github.com/Proged2021/SkillMiner/internal/db"
	"github.com/Proged2021/SkillMiner/internal/llm"
	"github.com/Proged2021/SkillMiner/internal/server/middleware"
	"github.com/Proged2021/SkillMiner/internal/server/ratelimit"
	"github.com/Proged2021/SkillMiner/internal/sns"
	"github.com/Proged2021/SkillMiner/internal/types"
)

// DBClient is the persistence surface the server depends on. *db.DB satisfies
// it; tests substitute fakes.
type DBClient interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, name, email, passwordHash string) (uuid.UUID, error)
	GetUser(ctx context.Context, id uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	SaveAnalysis(ctx context.Context, userID uuid.UUID, report *types.Report) (uuid.UUID, error)
	LatestAnalysis(ctx context.Context, userID uuid.UUID) (*types.Report, error)
	CreateSkill(ctx context.Context, userID uuid.UUID, name, category string, level int, hidden bool) error
	ListSkills(ctx context.Context, userID uuid.UUID) ([]db.Skill, error)
	SaveSNSProfile(ctx context.Context, userID uuid.UUID, profile types.SNSProfile) error
}

// ReportGenerator produces an analysis report plus its provenance.
type ReportGenerator interface {
	Generate(ctx context.Context, attrs types.UserAttributes, profiles []types.SNSProfile) (*types.Report, analysis.Outcome)
}

// ProfileSynthesizer produces one profile record per requested platform.
type ProfileSynthesizer interface {
	Profiles(ctx context.Context, requests []sns.Request) []types.SNSProfile
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          DBClient
	dbConn      *db.DB
	llmClient   llm.Client
	generator   ReportGenerator
	synthesizer ProfileSynthesizer
	validator   *validator.Validate
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
}

// New creates a new server instance
func New(cfg *config.Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Server{
		db:        database,
		dbConn:    database,
		validator: validator.New(),
	}

	// Generation client is optional: without a credential every analysis
	// uses local synthesis.
	if cfg.GeminiAPIKey != "" {
		llmConfig := llm.DefaultConfig()
		if cfg.Model != "" {
			llmConfig.Model = cfg.Model
		}
		client, err := llm.NewGeminiClient(context.Background(), llmConfig, cfg.GeminiAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create generation client: %w", err)
		}
		s.llmClient = client
	} else {
		log.Println("GEMINI_API_KEY not set; analysis will use local synthesis")
	}

	s.generator = analysis.NewGenerator(s.llmClient, PolicyFromConfig(cfg))
	s.synthesizer = sns.NewSynthesizer(sns.Credentials{
		sns.PlatformTwitter:  cfg.TwitterAPIKey,
		sns.PlatformLinkedIn: cfg.LinkedInClientID,
	}, sns.NewScrapeFetcher())

	// Initialize rate limiter
	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	// Initialize authentication services
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	// Setup router
	mux := http.NewServeMux()
	authRequired := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())

	mux.HandleFunc("POST /api/analyze", s.handleAnalyze)
	mux.HandleFunc("POST /api/register", s.handleRegister)
	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.Handle("GET /api/users/{id}/skills", authRequired(http.HandlerFunc(s.handleListSkills)))
	mux.Handle("GET /api/users/{id}/analysis", authRequired(http.HandlerFunc(s.handleGetAnalysis)))
	mux.HandleFunc("GET /health", s.handleHealth)

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Long timeout for delegated analysis
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// PolicyFromConfig builds the analysis policy, applying configured overrides
// over the canonical defaults.
func PolicyFromConfig(cfg *config.Config) analysis.Policy {
	policy := analysis.DefaultPolicy()
	if cfg.HiddenSkillsMin > 0 {
		policy.MinHiddenSkills = cfg.HiddenSkillsMin
	}
	if cfg.HiddenSkillsMax > 0 {
		policy.MaxHiddenSkills = cfg.HiddenSkillsMax
	}
	if cfg.MatchedJobsMin > 0 {
		policy.MinMatchedJobs = cfg.MatchedJobsMin
	}
	if cfg.MatchedJobsMax > 0 {
		policy.MaxMatchedJobs = cfg.MatchedJobsMax
	}
	if cfg.Locale != "" {
		policy.Locale = cfg.Locale
	}
	if len(cfg.Companies) > 0 {
		policy.Companies = cfg.Companies
	}
	return policy
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	if s.llmClient != nil {
		if err := s.llmClient.Close(); err != nil {
			log.Printf("Error closing generation client: %v", err)
		}
	}

	if s.dbConn != nil {
		s.dbConn.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		if !allowed {
			s.setRateLimitHeaders(w, info)
			s.rateLimitResponse(w, info)
			return
		}

		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleRegister handles user registration requests.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	s.authHandler.Register(w, r)
}

// handleLogin handles user login requests.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	s.authHandler.Login(w, r)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// For MVP, this uses the IP address from RemoteAddr.
// In the future, this could use X-Forwarded-For header (only from trusted proxies).
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// If parsing fails, use the whole RemoteAddr
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
