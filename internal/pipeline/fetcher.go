package pipeline

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"golang.org/x/time/rate"

	"github.com/jray-8/us-presidents-dataset/internal/cache"
	"github.com/jray-8/us-presidents-dataset/internal/model"
	"github.com/jray-8/us-presidents-dataset/internal/util"
)

// Fetcher retrieves raw source documents over HTTP. It is a polite
// client: robots.txt is honored, requests are rate limited, and
// responses are cached so rebuilding the dataset does not re-hit the
// source.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	limiter    *rate.Limiter
	robots     *util.RobotsChecker
	pages      cache.Cache // nil disables caching
	cacheTTL   time.Duration
	verbose    bool
}

// NewFetcher creates a Fetcher from the HTTP and cache configuration.
// Pass a nil cache to always fetch fresh.
func NewFetcher(cfg *model.Config, pages cache.Cache) *Fetcher {
	rps := cfg.HTTP.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: cfg.HTTP.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: cfg.HTTP.UserAgent,
		maxBytes:  cfg.HTTP.MaxBodyBytes,
		limiter:   rate.NewLimiter(rate.Limit(rps), 1),
		robots:    util.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout),
		pages:     pages,
		cacheTTL:  cfg.Cache.DiskTTL,
		verbose:   cfg.Output.Verbose,
	}
}

// Fetch retrieves the body at rawURL, serving from cache when possible.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if f.pages != nil {
		if body, found := f.pages.Get(cache.Key(rawURL)); found {
			if f.verbose {
				fmt.Fprintf(os.Stderr, "cache hit: %s\n", rawURL)
			}
			return body, nil
		}
	}

	allowed, delay, err := f.robots.CanFetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("robots check: %w", err)
	}
	if !allowed {
		return nil, fmt.Errorf("robots.txt disallows fetching %s", rawURL)
	}

	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	body, err := f.get(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	if f.pages != nil {
		if err := f.pages.Set(cache.Key(rawURL), body, f.cacheTTL); err != nil && f.verbose {
			fmt.Fprintf(os.Stderr, "warning: cache write failed: %v\n", err)
		}
	}
	return body, nil
}

func (f *Fetcher) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,text/csv,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}
