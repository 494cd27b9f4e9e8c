package plancache

import (
	"testing"

	"github.com/fitpro-warsaw/fitpro-api/config"
	"github.com/fitpro-warsaw/fitpro-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(disabled bool) *Cache {
	return New(config.PlanCacheConfig{Disabled: disabled, TTLSeconds: 60})
}

func sampleRequest() *models.PlanRequest {
	return &models.PlanRequest{
		Goal:      "lose_weight",
		Level:     "beginner",
		Days:      "3",
		Location:  "home",
		Equipment: "dumbbells",
		Lang:      "ru",
	}
}

func TestCache_PutGet(t *testing.T) {
	c := newTestCache(false)
	req := sampleRequest()

	_, found := c.Get(req)
	assert.False(t, found)

	result := models.PlanResult{Raw: "plan text"}
	c.Put(req, result)

	got, found := c.Get(req)
	require.True(t, found)
	assert.Equal(t, result, got)
}

func TestCache_KeyCoversEveryPromptField(t *testing.T) {
	c := newTestCache(false)
	base := sampleRequest()
	c.Put(base, models.PlanResult{Raw: "cached"})

	mutations := []func(*models.PlanRequest){
		func(r *models.PlanRequest) { r.Goal = "strength" },
		func(r *models.PlanRequest) { r.CustomGoal = "marathon" },
		func(r *models.PlanRequest) { r.Level = "advanced" },
		func(r *models.PlanRequest) { r.Days = "5" },
		func(r *models.PlanRequest) { r.Location = "gym" },
		func(r *models.PlanRequest) { r.Equipment = "full_gym" },
		func(r *models.PlanRequest) { r.Limitations = "knee pain" },
		func(r *models.PlanRequest) { r.Lang = "pl" },
	}

	for i, mutate := range mutations {
		req := sampleRequest()
		mutate(req)
		_, found := c.Get(req)
		assert.False(t, found, "mutation %d should produce a different key", i)
	}
}

func TestCache_Disabled(t *testing.T) {
	c := newTestCache(true)
	req := sampleRequest()

	c.Put(req, models.PlanResult{Raw: "never stored"})

	_, found := c.Get(req)
	assert.False(t, found)
}
