package analyses

import (
	"encoding/json"
	"math"
)

const (
	defaultScore   = 50
	maxActionItems = 5
)

// NormalizeResult coerces an untrusted model payload into a fully-populated
// AnalysisResult. It is total: any input, including malformed JSON, nulls,
// wrong types and out-of-range values, yields a valid result via defaults.
func NormalizeResult(raw json.RawMessage) AnalysisResult {
	var top map[string]any
	if len(raw) > 0 {
		// On unmarshal failure top stays nil and every field defaults.
		_ = json.Unmarshal(raw, &top)
	}

	out := AnalysisResult{
		ATSScore:     normalizeScore(top["atsScore"]),
		WritingScore: normalizeScore(top["writingScore"]),
		OverallGrade: normalizeGrade(top["overallGrade"]),
		ActionItems:  normalizeActionItems(top["actionItems"]),
	}

	rawCategories, _ := top["categories"].(map[string]any)
	for _, spec := range Taxonomy {
		out.Categories.set(spec.Key, normalizeCategory(rawCategories[spec.Key], spec))
	}

	return out
}

// normalizeScore reads a numeric field, defaulting to 50, and clamps the
// result into [0,100].
func normalizeScore(v any) int {
	score := float64(defaultScore)
	if n, ok := v.(float64); ok && !math.IsNaN(n) {
		score = n
	}
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return int(score)
}

// normalizeGrade keeps a grade on the scale and coerces everything else,
// including invalid-but-present strings, to the default.
func normalizeGrade(v any) string {
	if g, ok := v.(string); ok && IsValidGrade(g) {
		return g
	}
	return DefaultGrade
}

func normalizeCategory(v any, spec CategorySpec) CategoryResult {
	sub, _ := v.(map[string]any)
	rawChecks, _ := sub["checks"].([]any)
	if len(rawChecks) > len(spec.CheckNames) {
		rawChecks = rawChecks[:len(spec.CheckNames)]
	}

	checks := make([]Check, 0, len(rawChecks))
	passed := 0
	for _, rawCheck := range rawChecks {
		check := normalizeCheck(rawCheck)
		if check.Status == CheckStatusPass {
			passed++
		}
		checks = append(checks, check)
	}

	return CategoryResult{
		Name:        spec.DisplayName,
		Checks:      checks,
		PassedCount: passed,
		TotalCount:  len(checks),
	}
}

func normalizeCheck(v any) Check {
	sub, _ := v.(map[string]any)
	return Check{
		Name:        stringField(sub["name"], ""),
		Status:      normalizeStatus(sub["status"]),
		Explanation: stringField(sub["explanation"], ""),
		Improvement: stringField(sub["improvement"], ""),
	}
}

func normalizeStatus(v any) CheckStatus {
	switch CheckStatus(stringField(v, "")) {
	case CheckStatusPass:
		return CheckStatusPass
	case CheckStatusFail:
		return CheckStatusFail
	case CheckStatusWarning:
		return CheckStatusWarning
	default:
		return CheckStatusWarning
	}
}

// normalizeActionItems truncates to the first five entries, preserving the
// source order. Priority order is whatever the model gave; re-sorting is a
// display concern.
func normalizeActionItems(v any) []ActionItem {
	rawItems, _ := v.([]any)
	if len(rawItems) > maxActionItems {
		rawItems = rawItems[:maxActionItems]
	}

	items := make([]ActionItem, 0, len(rawItems))
	for _, rawItem := range rawItems {
		sub, _ := rawItem.(map[string]any)
		items = append(items, ActionItem{
			Priority: normalizePriority(sub["priority"]),
			Task:     stringField(sub["task"], ""),
			Detail:   stringField(sub["detail"], ""),
		})
	}
	return items
}

func normalizePriority(v any) ActionItemPriority {
	switch ActionItemPriority(stringField(v, "")) {
	case PriorityHigh:
		return PriorityHigh
	case PriorityMedium:
		return PriorityMedium
	case PriorityLow:
		return PriorityLow
	default:
		return PriorityMedium
	}
}

func stringField(v any, def string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return def
}
