package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/authdex/core"
	"github.com/poiesic/authdex/dataset"
)

// Engine is the query facade: it resolves domains, builds and caches
// per-domain indices, ranks, filters, and truncates.
//
// Indices are built lazily on the first query touching a domain and
// cached for the life of the Engine. A built index is never mutated, so
// concurrent searches share it without locking; construction itself is
// guarded so at most one build per domain runs at a time.
type Engine struct {
	registry *dataset.Registry
	loader   *dataset.Loader
	logger   *slog.Logger
	pool     *ants.Pool

	mu      sync.Mutex
	indices map[string]*DomainIndex
	builds  map[string]*sync.Mutex
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithPoolSize sets the worker pool size used by Warm.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(e *Engine) error {
		if size < 1 {
			size = 1
		}
		if e.pool != nil {
			e.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		e.pool = pool
		return nil
	}
}

// NewEngine creates a query engine over the given registry and loader.
func NewEngine(registry *dataset.Registry, loader *dataset.Loader, opts ...Option) (*Engine, error) {
	if registry == nil {
		return nil, ErrRegistryRequired
	}
	if loader == nil {
		return nil, ErrLoaderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		registry: registry,
		loader:   loader,
		logger:   slog.Default(),
		pool:     pool,
		indices:  make(map[string]*DomainIndex),
		builds:   make(map[string]*sync.Mutex),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(e); err != nil {
			e.pool.Release()
			return nil, err
		}
	}

	return e, nil
}

// Registry returns the engine's domain registry.
func (e *Engine) Registry() *dataset.Registry {
	return e.registry
}

// Search runs one query and returns the ranked results together with
// the resolved domain name.
func (e *Engine) Search(ctx context.Context, query *core.Query) ([]*core.SearchResult, string, error) {
	return e.SearchWithMonitor(ctx, query, nil)
}

// SearchWithMonitor runs one query with monitoring. The monitor
// receives callbacks at each stage of the search process.
func (e *Engine) SearchWithMonitor(ctx context.Context, query *core.Query, monitor SearchMonitor) ([]*core.SearchResult, string, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	if err := core.ValidateQuery(query); err != nil {
		return nil, "", err
	}
	monitor.Start(query.Text)

	queryTokens := Tokenize(query.Text)

	// Resolve the domain: explicit names must exist, otherwise detect.
	domain := query.Domain
	detected := false
	if domain == "" {
		name, err := DetectDomain(e.registry, queryTokens)
		if err != nil {
			return nil, "", err
		}
		domain = name
		detected = true
	} else if _, ok := e.registry.Lookup(domain); !ok {
		return nil, "", fmt.Errorf("%w: %q", core.ErrDomainNotFound, domain)
	}
	monitor.DomainResolved(domain, detected)
	e.logger.Debug("domain resolved", "domain", domain, "detected", detected)

	index, err := e.index(domain)
	if err != nil {
		return nil, "", err
	}
	monitor.IndexReady(domain, index.Len())

	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	results := index.Rank(queryTokens)
	monitor.AfterRanking(results)

	if query.Stack != "" {
		config, _ := e.registry.Lookup(domain)
		results = filterStack(results, config.StackColumn, query.Stack)
		monitor.StackFiltered(query.Stack, len(results))
	}

	if limit := query.EffectiveLimit(); len(results) > limit {
		results = results[:limit]
	}
	for i, result := range results {
		result.Rank = i + 1
	}

	monitor.Finish(results)
	e.logger.Debug("search finished", "domain", domain, "hits", len(results))
	return results, domain, nil
}

// Warm builds every registered domain's index ahead of queries, using
// the worker pool to build domains concurrently. Warming is optional;
// an unwarmed engine builds indices lazily instead.
func (e *Engine) Warm(ctx context.Context) error {
	domains := e.registry.Domains()
	errs := make([]error, len(domains))

	var wg sync.WaitGroup
	for i, domain := range domains {
		if err := ctx.Err(); err != nil {
			errs[i] = err
			continue
		}

		wg.Add(1)
		name := domain.Name
		slot := i
		if err := e.pool.Submit(func() {
			defer wg.Done()
			if _, err := e.index(name); err != nil {
				e.logger.Error("error warming domain index", "domain", name, "err", err)
				errs[slot] = err
			}
		}); err != nil {
			wg.Done()
			errs[slot] = err
		}
	}
	wg.Wait()

	return errors.Join(errs...)
}

// Release releases resources including the worker pool.
// The engine should not be used after calling Release.
func (e *Engine) Release() {
	if e.pool != nil {
		e.pool.Release()
	}
}

// index returns the cached index for the domain, building it on first
// use. Build failures are not cached: a later call retries the load.
func (e *Engine) index(domain string) (*DomainIndex, error) {
	e.mu.Lock()
	if index, ok := e.indices[domain]; ok {
		e.mu.Unlock()
		return index, nil
	}
	guard, ok := e.builds[domain]
	if !ok {
		guard = &sync.Mutex{}
		e.builds[domain] = guard
	}
	e.mu.Unlock()

	guard.Lock()
	defer guard.Unlock()

	// Another caller may have finished the build while we waited.
	e.mu.Lock()
	if index, ok := e.indices[domain]; ok {
		e.mu.Unlock()
		return index, nil
	}
	e.mu.Unlock()

	config, ok := e.registry.Lookup(domain)
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrDomainNotFound, domain)
	}

	records, err := e.loader.Load(config)
	if err != nil {
		return nil, err
	}
	index := BuildIndex(domain, records)
	e.logger.Debug("built domain index", "domain", domain, "records", index.Len())

	e.mu.Lock()
	e.indices[domain] = index
	e.mu.Unlock()
	return index, nil
}

// filterStack keeps results whose stack field matches the filter value,
// case-insensitively. A domain with no stack column matches nothing.
func filterStack(results []*core.SearchResult, stackColumn, stack string) []*core.SearchResult {
	if stackColumn == "" {
		return nil
	}

	filtered := make([]*core.SearchResult, 0, len(results))
	for _, result := range results {
		if strings.EqualFold(result.Record.Field(stackColumn), stack) {
			filtered = append(filtered, result)
		}
	}
	return filtered
}
