package reconcile

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// Source defines the capabilities a manifest check depends on.
// Implementations decide where the manifest lives and how files are enumerated
// (local directory walk, object storage listing, in-memory fakes in tests).
type Source interface {
	// Name returns a short identifier for the source (e.g., "fs", "bucket").
	// It is used to key cached listings.
	Name() string

	// ReadManifest reads and parses the manifest, defaults applied.
	// Malformed documents fail with a parse error, unreadable ones with an I/O error.
	ReadManifest(ctx context.Context) (*Manifest, error)

	// ListFiles returns every file under root as a "/"-separated path relative to root.
	// Order is not significant.
	ListFiles(ctx context.Context, root string) ([]string, error)
}

// RootResolver is implemented by sources that know where a manifest's assets live.
// Sources without it get the manifest path resolved against the working directory.
type RootResolver interface {
	ResolveRoot(m Manifest) (string, error)
}

// Checker runs manifest checks against a Source.
type Checker struct {
	source Source
	cache  *ListingCache
	now    func() time.Time
}

// NewChecker creates a checker reading from the given source.
func NewChecker(source Source) *Checker {
	return &Checker{
		source: source,
		now:    time.Now,
	}
}

// WithCache makes the checker reuse listings from cache while they are fresh.
func (c *Checker) WithCache(cache *ListingCache) *Checker {
	c.cache = cache
	return c
}

// Check reads the manifest, lists the assets directory and reconciles both.
// Errors from the source are returned unchanged; no partial report is produced.
func (c *Checker) Check(ctx context.Context) (*CheckResult, error) {
	manifest, err := c.source.ReadManifest(ctx)
	if err != nil {
		return nil, err
	}

	root, err := c.resolveRoot(*manifest)
	if err != nil {
		return nil, err
	}

	var files []string
	if c.cache != nil {
		files, err = c.cache.Get(ctx, c.source, root)
	} else {
		files, err = c.source.ListFiles(ctx, root)
	}
	if err != nil {
		return nil, err
	}

	return &CheckResult{
		Manifest:  *manifest,
		AssetsDir: root,
		Report:    Reconcile(*manifest, files),
		CheckedAt: c.now(),
	}, nil
}

func (c *Checker) resolveRoot(m Manifest) (string, error) {
	if resolver, ok := c.source.(RootResolver); ok {
		return resolver.ResolveRoot(m)
	}
	if filepath.IsAbs(m.Path) {
		return m.Path, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", NewIOError(err)
	}
	return filepath.Join(wd, m.Path), nil
}
