package view

import (
	"fmt"
	"testing"

	"github.com/user/riskdash/pkg/model"
)

func makeFindings(n int) []model.Finding {
	out := make([]model.Finding, n)
	for i := range out {
		out[i] = model.Finding{FindingID: fmt.Sprintf("f-%d", i+1)}
	}
	return out
}

func TestWindowTruncatesToTen(t *testing.T) {
	findings := makeFindings(15)

	windowed := Window(findings, false)
	if len(windowed) != 10 {
		t.Errorf("expected 10 findings, got %d", len(windowed))
	}
	// First 10 post-sort entries, in order.
	for i := 0; i < 10; i++ {
		if windowed[i].FindingID != findings[i].FindingID {
			t.Errorf("position %d: got %s, want %s", i, windowed[i].FindingID, findings[i].FindingID)
		}
	}

	all := Window(findings, true)
	if len(all) != 15 {
		t.Errorf("expected 15 findings with showAll, got %d", len(all))
	}
}

func TestWindowShortListUnchanged(t *testing.T) {
	findings := makeFindings(7)
	if got := Window(findings, false); len(got) != 7 {
		t.Errorf("expected 7 findings, got %d", len(got))
	}
}
