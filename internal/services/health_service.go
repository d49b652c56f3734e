package services

import (
	"context"
	"fmt"
	"time"

	"github.com/storecraft/storefront/internal/ports"
)

// HealthService aggregates dependency health for readiness and health
// endpoints.
type HealthService struct {
	db    ports.DatabaseHealthChecker
	cache ports.ProductsCache
}

func NewHealthService(db ports.DatabaseHealthChecker, cache ports.ProductsCache) *HealthService {
	return &HealthService{
		db:    db,
		cache: cache,
	}
}

// IsHealthy reports whether all hard dependencies respond.
func (s *HealthService) IsHealthy(ctx context.Context) bool {
	if err := s.db.Ping(ctx); err != nil {
		return false
	}

	return true
}

// CheckDependencies probes every dependency and reports per-dependency status.
func (s *HealthService) CheckDependencies(ctx context.Context) map[string]ports.DependencyStatus {
	dependencies := make(map[string]ports.DependencyStatus)

	start := time.Now()
	dbErr := s.db.Ping(ctx)
	dbStatus := ports.DependencyStatus{
		Healthy: dbErr == nil,
		Latency: fmt.Sprintf("%dms", time.Since(start).Milliseconds()),
	}
	if dbErr != nil {
		dbStatus.Message = dbErr.Error()
	}
	dependencies["postgres"] = dbStatus

	if s.cache != nil {
		start = time.Now()
		healthy := s.cache.IsHealthy(ctx)
		cacheStatus := ports.DependencyStatus{
			Healthy: healthy,
			Latency: fmt.Sprintf("%dms", time.Since(start).Milliseconds()),
		}
		if !healthy {
			cacheStatus.Message = "cache unreachable"
		}
		dependencies["keydb"] = cacheStatus
	}

	return dependencies
}
