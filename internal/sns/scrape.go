package sns

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/Proged2021/SkillMiner/internal/types"
)

const scrapeUserAgent = "Mozilla/5.0 (compatible; SkillMiner/1.0)"

// ScrapeFetcher is the real-fetch implementation reserved by the Fetcher
// signature. It scrapes the public profile page's meta tags to enrich the
// bio. Platforms increasingly block anonymous scraping, so callers must
// treat every error as a routine degrade-to-mock, which the Synthesizer does.
type ScrapeFetcher struct {
	httpClient *http.Client
}

// NewScrapeFetcher creates a ScrapeFetcher with a bounded request timeout.
func NewScrapeFetcher() *ScrapeFetcher {
	return &ScrapeFetcher{
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Fetch retrieves and parses the public profile page for a handle.
func (f *ScrapeFetcher) Fetch(ctx context.Context, platform, handle string) (*types.SNSProfile, error) {
	url, err := profileURL(platform, handle)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", scrapeUserAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse profile page: %w", err)
	}

	return profileFromDocument(platform, handle, doc), nil
}

// profileURL maps a platform and handle to its public profile page.
func profileURL(platform, handle string) (string, error) {
	handle = strings.TrimPrefix(handle, "@")
	switch platform {
	case PlatformTwitter:
		return "https://twitter.com/" + handle, nil
	case PlatformLinkedIn:
		return "https://www.linkedin.com/in/" + handle, nil
	default:
		return "", fmt.Errorf("unsupported platform: %s", platform)
	}
}

// profileFromDocument builds a profile record from page metadata, starting
// from the mock baseline and overriding only what the page exposes.
func profileFromDocument(platform, handle string, doc *goquery.Document) *types.SNSProfile {
	profile := MockProfile(platform, handle)

	bio, _ := doc.Find(`meta[property="og:description"]`).Attr("content")
	if bio == "" {
		bio, _ = doc.Find(`meta[name="description"]`).Attr("content")
	}
	if bio = strings.TrimSpace(bio); bio != "" {
		profile.Bio = bio
	}

	return &profile
}
