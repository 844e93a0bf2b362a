package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/user/riskdash/pkg/view"
)

func TestDecodeFindingsShapes(t *testing.T) {
	bodies := map[string]string{
		"findings field":      `{"findings": [{"finding_id": "f-1"}, {"finding_id": "f-2"}]}`,
		"risk_findings field": `{"risk_findings": [{"finding_id": "f-1"}, {"finding_id": "f-2"}]}`,
		"bare array":          `[{"finding_id": "f-1"}, {"finding_id": "f-2"}]`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			findings, err := decodeFindings([]byte(body), true)
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if len(findings) != 2 {
				t.Fatalf("got %d findings, want 2", len(findings))
			}
			if findings[0].FindingID != "f-1" || findings[1].FindingID != "f-2" {
				t.Errorf("unexpected findings: %+v", findings)
			}
		})
	}
}

func TestDecodeFindingsPrecedence(t *testing.T) {
	body := `{"findings": [{"finding_id": "named"}], "risk_findings": [{"finding_id": "other"}]}`
	findings, err := decodeFindings([]byte(body), true)
	if err != nil {
		t.Fatal(err)
	}
	if len(findings) != 1 || findings[0].FindingID != "named" {
		t.Errorf("findings field should take precedence, got %+v", findings)
	}
}

func TestDecodeFindingsUnknownObject(t *testing.T) {
	findings, err := decodeFindings([]byte(`{"something": 1}`), true)
	if err != nil {
		t.Fatal(err)
	}
	if len(findings) != 0 {
		t.Errorf("object without findings fields should decode to empty, got %+v", findings)
	}
}

func TestDecodeFindingsBareArrayDisallowed(t *testing.T) {
	if _, err := decodeFindings([]byte(`[]`), false); err == nil {
		t.Error("bare array should be rejected when not allowed")
	}
}

func TestRiskFindingsRequest(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(map[string]interface{}{"findings": []map[string]string{{"finding_id": "f-1"}}})
	}))
	defer srv.Close()

	c := New(srv.URL, "client-42", zap.NewNop())
	filter := view.FilterState{RiskLevel: "High", Sensitivity: "all"}
	findings, err := c.RiskFindings(context.Background(), filter)
	if err != nil {
		t.Fatal(err)
	}
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1", len(findings))
	}

	if gotPath != "/risk/risk-findings/client-42" {
		t.Errorf("path = %q", gotPath)
	}
	if got := gotQuery["risk_level"]; len(got) != 1 || got[0] != "high" {
		t.Errorf("risk_level query = %v, want lowercase high", got)
	}
	if _, present := gotQuery["sensitivity"]; present {
		t.Error("default sensitivity filter should not be sent")
	}
	if got := gotQuery["limit"]; len(got) != 1 || got[0] != "100" {
		t.Errorf("limit query = %v, want 100", got)
	}
}

func TestRiskFindingsNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, "client-42", zap.NewNop())
	if _, err := c.RiskFindings(context.Background(), view.NewFilterState()); err == nil {
		t.Error("expected an error for a 500 response")
	}
}

func TestChat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["query"] != "how risky am I?" {
			t.Errorf("query = %q", body["query"])
		}
		json.NewEncoder(w).Encode(ChatResponse{Response: "quite", LLMUsed: "test-model"})
	}))
	defer srv.Close()

	c := New(srv.URL, "client-42", zap.NewNop())
	resp, err := c.Chat(context.Background(), "how risky am I?")
	if err != nil {
		t.Fatal(err)
	}
	if resp.Response != "quite" || resp.LLMUsed != "test-model" {
		t.Errorf("unexpected response: %+v", resp)
	}
}
