package view

import (
	"strings"

	"github.com/user/riskdash/pkg/model"
)

// FilterAll is the default, non-restricting value for either filter field.
const FilterAll = "all"

// FilterState holds the user-selected risk/sensitivity filters.
type FilterState struct {
	RiskLevel   string
	Sensitivity string
}

// NewFilterState returns the default all/all filter.
func NewFilterState() FilterState {
	return FilterState{RiskLevel: FilterAll, Sensitivity: FilterAll}
}

// Active reports whether at least one filter field is non-default.
func (s FilterState) Active() bool {
	return !s.riskIsAll() || !s.sensitivityIsAll()
}

// Reset returns the filter to its defaults.
func (s *FilterState) Reset() {
	*s = NewFilterState()
}

// Match applies the filter predicate to a single finding: each non-default
// field must match the finding's value case-insensitively. A finding with an
// absent field never matches a restricting filter.
func (s FilterState) Match(f model.Finding) bool {
	if !s.riskIsAll() {
		if f.RiskLevel == "" || !strings.EqualFold(f.RiskLevel, s.RiskLevel) {
			return false
		}
	}
	if !s.sensitivityIsAll() {
		if f.Sensitivity == "" || !strings.EqualFold(f.Sensitivity, s.Sensitivity) {
			return false
		}
	}
	return true
}

// Apply filters a findings slice without mutating the input.
func (s FilterState) Apply(findings []model.Finding) []model.Finding {
	if !s.Active() {
		out := make([]model.Finding, len(findings))
		copy(out, findings)
		return out
	}
	out := make([]model.Finding, 0, len(findings))
	for _, f := range findings {
		if s.Match(f) {
			out = append(out, f)
		}
	}
	return out
}

func (s FilterState) riskIsAll() bool {
	return s.RiskLevel == "" || strings.EqualFold(s.RiskLevel, FilterAll)
}

func (s FilterState) sensitivityIsAll() bool {
	return s.Sensitivity == "" || strings.EqualFold(s.Sensitivity, FilterAll)
}
