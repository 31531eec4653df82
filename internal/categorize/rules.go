// Package categorize assigns spending categories to transactions, first by
// keyword rules, then (optionally) by a batched model classifier that
// overwrites the rule-based pass.
package categorize

import (
	"strings"

	"github.com/dvloznov/statement-analyzer/internal/registry"
)

// Rules is the deterministic keyword categorizer. It is pure and total:
// the same description always yields the same label, and every input gets
// one, with "Other Expenses" as the catch-all.
type Rules struct{}

// NewRules returns the rule-based categorizer over the static registry.
func NewRules() *Rules {
	return &Rules{}
}

// Categorize returns the category for a transaction description.
//
// The priority pass scans categories in a fixed order; the first category
// with a keyword match (and, where defined, a satisfied guard) wins. Broad
// word checks and an exact merchant table run afterwards, before the
// catch-all.
func (r *Rules) Categorize(description string) string {
	desc := strings.ToLower(strings.TrimSpace(description))

	for _, category := range registry.CategoryPriority {
		if !containsAny(desc, registry.Keywords(category)) {
			continue
		}
		if guard := registry.GuardTerms(category); guard != nil && !containsAny(desc, guard) {
			continue
		}
		return category
	}

	for _, fb := range registry.BroadFallbacks {
		if containsAny(desc, fb.Terms) {
			return fb.Category
		}
	}

	for _, m := range registry.Merchants {
		if strings.Contains(desc, strings.ToLower(m.Name)) {
			return m.Category
		}
	}

	return registry.CategoryOther
}

// Subcategory derives the short grouping label: the first word of the
// category, or "Miscellaneous" for the catch-all.
func Subcategory(category string) string {
	if category == registry.CategoryOther {
		return "Miscellaneous"
	}
	first, _, _ := strings.Cut(category, " ")
	return first
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
