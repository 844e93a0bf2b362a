package view

import (
	"fmt"
	"sort"
	"strings"

	"github.com/user/riskdash/pkg/model"
)

// Direction is the sort direction for the active key.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// SortState tracks the single active sort key and its direction.
type SortState struct {
	Key       string
	Direction Direction
}

// Select activates a sort key. Reselecting the active key flips the direction;
// switching to a new key resets the direction to ascending.
func (s *SortState) Select(key string) {
	if s.Key == key {
		if s.Direction == Asc {
			s.Direction = Desc
		} else {
			s.Direction = Asc
		}
		return
	}
	s.Key = key
	s.Direction = Asc
}

// Apply sorts a copy of the findings by the active key. With no key selected
// the input order is preserved. Ties keep whatever relative order the
// underlying sort produces.
func (s SortState) Apply(findings []model.Finding) []model.Finding {
	out := make([]model.Finding, len(findings))
	copy(out, findings)
	if s.Key == "" {
		return out
	}
	sort.Slice(out, func(i, j int) bool {
		c := compareValues(fieldValue(out[i], s.Key), fieldValue(out[j], s.Key))
		if s.Direction == Desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

// fieldValue extracts the sortable value for a column key. Unknown keys sort
// as empty strings so a stray key degrades instead of failing.
func fieldValue(f model.Finding, key string) interface{} {
	switch key {
	case "finding_id":
		return f.FindingID
	case "data_value":
		return f.DataValue
	case "sensitivity":
		return f.Sensitivity
	case "finding_type":
		return f.FindingType
	case "sde_category":
		return f.SDECategory
	case "risk_level":
		return f.RiskLevel
	case "confidence_score":
		return f.ConfidenceScore
	case "scan_timestamp":
		return f.ScanTimestamp
	default:
		return ""
	}
}

// compareValues orders two column values: strings case-insensitively, numbers
// arithmetically, anything else by its printed form.
func compareValues(a, b interface{}) int {
	switch av := a.(type) {
	case string:
		bv, _ := b.(string)
		return strings.Compare(strings.ToLower(av), strings.ToLower(bv))
	case float64:
		bv, _ := b.(float64)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	case int:
		bv, _ := b.(int)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	default:
		return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}
