package plan

import (
	"encoding/json"
	"strings"

	"github.com/fitpro-warsaw/fitpro-api/internal/models"
	"github.com/kaptinlin/jsonrepair"
)

// Interpret parses the model's raw output into the plan union. Models
// periodically wrap the JSON in markdown code fences or emit slightly
// broken JSON despite the prompt; the pipeline is fence strip, strict
// decode, repair-then-decode, and finally the opaque-text branch with
// the output unmodified. The opaque branch is a graceful degradation,
// never an error.
func Interpret(raw string) models.PlanResult {
	clean := stripCodeFences(raw)

	if plan, ok := decodePlan(clean); ok {
		return models.PlanResult{Structured: plan}
	}

	if repaired, err := jsonrepair.JSONRepair(clean); err == nil {
		if plan, ok := decodePlan(repaired); ok {
			return models.PlanResult{Structured: plan}
		}
	}

	return models.PlanResult{Raw: raw}
}

// decodePlan accepts only output that matches the plan schema with at
// least one day; anything weaker falls through to the opaque branch.
func decodePlan(text string) (*models.WorkoutPlan, bool) {
	var plan models.WorkoutPlan
	if err := json.Unmarshal([]byte(text), &plan); err != nil {
		return nil, false
	}
	if len(plan.Days) == 0 {
		return nil, false
	}
	return &plan, true
}

func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
