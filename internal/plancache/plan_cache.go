// Package plancache memoizes generated workout plans for a short TTL.
// Identical requests within the window reuse the prior model output
// instead of paying for another completion.
package plancache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/fitpro-warsaw/fitpro-api/config"
	"github.com/fitpro-warsaw/fitpro-api/internal/models"
	"github.com/fitpro-warsaw/fitpro-api/pkg/metrics"
	gocache "github.com/patrickmn/go-cache"
)

// Cache holds recently generated plans keyed by a hash of the request.
type Cache struct {
	cache    *gocache.Cache
	disabled bool
}

// New creates the plan cache. A disabled cache misses on every lookup.
func New(cfg config.PlanCacheConfig) *Cache {
	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	return &Cache{
		cache:    gocache.New(ttl, 10*time.Minute),
		disabled: cfg.Disabled,
	}
}

// Get returns the cached result for an identical earlier request.
func (c *Cache) Get(req *models.PlanRequest) (models.PlanResult, bool) {
	if c.disabled {
		return models.PlanResult{}, false
	}

	if data, found := c.cache.Get(requestKey(req)); found {
		if result, ok := data.(models.PlanResult); ok {
			metrics.PlanCacheLookups.WithLabelValues("hit").Inc()
			return result, true
		}
	}

	metrics.PlanCacheLookups.WithLabelValues("miss").Inc()
	return models.PlanResult{}, false
}

// Put stores a freshly generated result.
func (c *Cache) Put(req *models.PlanRequest, result models.PlanResult) {
	if c.disabled {
		return
	}
	c.cache.Set(requestKey(req), result, gocache.DefaultExpiration)
}

// requestKey hashes every prompt-affecting field. Lang is included:
// the same selections in the other language produce a different plan.
func requestKey(req *models.PlanRequest) string {
	h := sha256.New()
	h.Write([]byte(strings.Join([]string{
		req.Goal,
		req.CustomGoal,
		req.Level,
		req.Days,
		req.Location,
		req.Equipment,
		req.Limitations,
		req.Lang,
	}, "\x1f")))
	return hex.EncodeToString(h.Sum(nil))
}
