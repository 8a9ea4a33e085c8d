// Package factory is the one place backend names become backend instances.
// Runtime string dispatch stops here: everything past the composition root
// holds a provider.DataProvider.
package factory

import (
	"context"
	"fmt"
	"sync"

	"study-service/internal/config"
	"study-service/internal/provider"
	"study-service/internal/provider/memory"
	"study-service/internal/provider/mongo"
	"study-service/internal/provider/supabase"
)

// New constructs the backend named by the configuration.
func New(ctx context.Context, cfg *config.Config) (provider.DataProvider, error) {
	switch cfg.ProviderBackend {
	case config.BackendMemory:
		return memory.New(), nil
	case config.BackendMongo:
		return mongo.New(ctx, cfg.MongoURI, cfg.MongoDatabase)
	case config.BackendSupabase:
		return supabase.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q", provider.ErrUnknownBackend, cfg.ProviderBackend)
	}
}

var (
	defaultMu       sync.Mutex
	defaultInstance provider.DataProvider
)

// Default memoizes one instance per process for callers without an injected
// provider. New code should receive the provider explicitly; this accessor
// exists for parity with how the application has historically been wired.
func Default(ctx context.Context, cfg *config.Config) (provider.DataProvider, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultInstance != nil {
		return defaultInstance, nil
	}
	p, err := New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defaultInstance = p
	return p, nil
}

// ResetDefaultForTests discards the memoized instance so the next Default
// call reconstructs it fresh. Test support only.
func ResetDefaultForTests() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultInstance = nil
}
