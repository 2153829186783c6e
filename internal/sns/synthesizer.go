// Package sns synthesizes social-media profile records for analysis input.
// External platforms are best-effort enrichment only: a missing credential or
// a failed fetch always degrades to a deterministic mock record, never to an
// error. Report generation must not block on social integration.
package sns

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/Proged2021/SkillMiner/internal/types"
)

// Platform names accepted by the synthesizer.
const (
	PlatformTwitter  = "twitter"
	PlatformLinkedIn = "linkedin"
)

// Request names one platform profile to synthesize.
type Request struct {
	Platform string
	Handle   string
}

// Fetcher retrieves a real profile for a platform handle. Implementations
// are free to fail; the synthesizer masks every failure with a mock record.
type Fetcher interface {
	Fetch(ctx context.Context, platform, handle string) (*types.SNSProfile, error)
}

// Credentials maps platform name to its API key or token. An absent or empty
// entry routes that platform to the mock path.
type Credentials map[string]string

// Synthesizer produces one profile record per requested platform.
type Synthesizer struct {
	creds   Credentials
	fetcher Fetcher
	logger  *log.Logger
}

// NewSynthesizer creates a Synthesizer. fetcher may be nil, in which case
// every platform uses the mock path regardless of credentials.
func NewSynthesizer(creds Credentials, fetcher Fetcher) *Synthesizer {
	return &Synthesizer{
		creds:   creds,
		fetcher: fetcher,
		logger:  log.Default(),
	}
}

// SetLogger overrides the diagnostic logger. Useful for tests.
func (s *Synthesizer) SetLogger(logger *log.Logger) {
	s.logger = logger
}

// Profiles returns exactly one record per request with a non-empty handle,
// in request order. Fetches run concurrently and are failure-isolated: one
// platform's failure never blocks or fails another's.
func (s *Synthesizer) Profiles(ctx context.Context, requests []Request) []types.SNSProfile {
	active := make([]Request, 0, len(requests))
	for _, req := range requests {
		if req.Handle != "" {
			active = append(active, req)
		}
	}
	if len(active) == 0 {
		return nil
	}

	profiles := make([]types.SNSProfile, len(active))
	g, ctx := errgroup.WithContext(ctx)
	for i, req := range active {
		g.Go(func() error {
			profiles[i] = s.profile(ctx, req)
			return nil
		})
	}
	_ = g.Wait()

	return profiles
}

// profile resolves a single request, degrading to the mock record whenever
// the real fetch is unavailable or fails.
func (s *Synthesizer) profile(ctx context.Context, req Request) types.SNSProfile {
	if s.fetcher == nil || s.creds[req.Platform] == "" {
		return MockProfile(req.Platform, req.Handle)
	}

	fetched, err := s.fetcher.Fetch(ctx, req.Platform, req.Handle)
	if err != nil || fetched == nil {
		s.logger.Printf("sns: %s fetch for %q failed, using mock profile: %v", req.Platform, req.Handle, err)
		return MockProfile(req.Platform, req.Handle)
	}

	return *fetched
}
