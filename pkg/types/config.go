package types

import (
	"errors"
	"time"
)

// Config holds backend selection and engine parameters for Store.Attach.
type Config struct {
	Backend    string        `json:"backend" yaml:"backend"`
	DataDir    string        `json:"data_dir" yaml:"data_dir"`
	CacheSize  int           `json:"cache_size" yaml:"cache_size"`
	CacheTTL   time.Duration `json:"cache_ttl" yaml:"cache_ttl"`
	MaxResults int           `json:"max_results" yaml:"max_results"`
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
)

// Engine parameter defaults applied by Normalize.
const (
	DefaultCacheSize  = 256
	DefaultMaxResults = 50
)

// Config validation errors.
var (
	ErrBackendEmpty      = errors.New("backend must not be empty")
	ErrBackendUnknown    = errors.New("unknown backend")
	ErrCacheSizeInvalid  = errors.New("cache size must not be negative")
	ErrCacheTTLInvalid   = errors.New("cache TTL must not be negative")
	ErrMaxResultsInvalid = errors.New("max results must not be negative")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.CacheSize < 0 {
		return ErrCacheSizeInvalid
	}
	if c.CacheTTL < 0 {
		return ErrCacheTTLInvalid
	}
	if c.MaxResults < 0 {
		return ErrMaxResultsInvalid
	}
	return nil
}

// Normalize returns a copy of the Config with zero-valued engine
// parameters replaced by their defaults. A zero CacheTTL stays zero:
// it means entries do not expire.
func (c Config) Normalize() Config {
	out := c
	if out.CacheSize == 0 {
		out.CacheSize = DefaultCacheSize
	}
	if out.MaxResults == 0 {
		out.MaxResults = DefaultMaxResults
	}
	return out
}
