package flights

import (
	"time"

	"github.com/FranciscoRecio/flights/internal/ranking"
	"github.com/FranciscoRecio/flights/pkg/fetcher"
)

// Config holds Client configuration.
type Config struct {
	UserAgent string
	Timeout   time.Duration

	// SolverURL is the remote solver service endpoint for the fallback
	// transport.
	SolverURL string

	// Limit is how many flights each ranking truncation keeps.
	Limit int

	// KeepSummaryRow keeps the trailing summary row of non-best result
	// sections during extraction.
	KeepSummaryRow bool

	// Transport overrides, mainly for tests. Unset transports are built
	// from the settings above.
	Direct fetcher.Fetcher
	Remote fetcher.Fetcher
	Local  fetcher.Fetcher
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	transport := fetcher.DefaultConfig()
	return Config{
		UserAgent: transport.UserAgent,
		Timeout:   transport.Timeout,
		SolverURL: fetcher.DefaultSolverURL,
		Limit:     ranking.DefaultLimit,
	}
}

// Option configures a Client.
type Option func(*Config)

// WithUserAgent sets the user agent for the direct and local transports.
func WithUserAgent(ua string) Option {
	return func(c *Config) {
		c.UserAgent = ua
	}
}

// WithTimeout sets the per-request transport timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Timeout = d
	}
}

// WithSolverURL sets the remote solver service endpoint.
func WithSolverURL(url string) Option {
	return func(c *Config) {
		c.SolverURL = url
	}
}

// WithLimit sets how many flights each ranking truncation keeps.
func WithLimit(n int) Option {
	return func(c *Config) {
		c.Limit = n
	}
}

// WithKeepSummaryRow keeps the trailing row of non-best result sections,
// which is dropped by default as a non-offer summary.
func WithKeepSummaryRow(enabled bool) Option {
	return func(c *Config) {
		c.KeepSummaryRow = enabled
	}
}

// WithDirectFetcher injects the direct transport.
func WithDirectFetcher(f fetcher.Fetcher) Option {
	return func(c *Config) {
		c.Direct = f
	}
}

// WithRemoteFetcher injects the remote fallback transport.
func WithRemoteFetcher(f fetcher.Fetcher) Option {
	return func(c *Config) {
		c.Remote = f
	}
}

// WithLocalFetcher injects the local browser transport.
func WithLocalFetcher(f fetcher.Fetcher) Option {
	return func(c *Config) {
		c.Local = f
	}
}
