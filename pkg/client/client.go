// Package client implements the HTTP client for the risk-scanning backend and
// the resolution cascade that turns filter state into a display list.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/user/riskdash/pkg/model"
	"github.com/user/riskdash/pkg/view"
)

// ResultCap is the fixed result-cap parameter sent on the primary endpoint.
const ResultCap = 100

// Client talks to the risk-scanning backend REST API.
type Client struct {
	BaseURL  string
	ClientID string
	HTTP     *http.Client
	Log      *zap.Logger
}

// New builds a Client. The client id identifies the caller to the backend and
// is injected explicitly rather than read from ambient session state.
func New(baseURL, clientID string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		ClientID: clientID,
		HTTP:     &http.Client{Timeout: 15 * time.Second},
		Log:      log,
	}
}

// RiskFindings calls the primary findings endpoint. Non-default filters are
// projected to lowercase query values; the result cap is always sent.
func (c *Client) RiskFindings(ctx context.Context, filter view.FilterState) ([]model.Finding, error) {
	q := url.Values{}
	addFilterParams(q, filter)
	q.Set("limit", fmt.Sprint(ResultCap))
	endpoint := fmt.Sprintf("%s/risk/risk-findings/%s?%s", c.BaseURL, url.PathEscape(c.ClientID), q.Encode())

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	return decodeFindings(body, true)
}

// FilteredFindings calls the alternate filtered endpoint with equivalent
// filter semantics.
func (c *Client) FilteredFindings(ctx context.Context, filter view.FilterState) ([]model.Finding, error) {
	q := url.Values{}
	q.Set("client_id", c.ClientID)
	addFilterParams(q, filter)
	endpoint := fmt.Sprintf("%s/risk/filtered-findings/?%s", c.BaseURL, q.Encode())

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	return decodeFindings(body, false)
}

// ChatResponse is the inference endpoint's answer to a user question.
type ChatResponse struct {
	Response string `json:"response"`
	LLMUsed  string `json:"llm_used,omitempty"`
}

// Chat proxies a user question to the backend inference endpoint.
func (c *Client) Chat(ctx context.Context, query string) (ChatResponse, error) {
	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return ChatResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/chat", bytes.NewReader(payload))
	if err != nil {
		return ChatResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return ChatResponse{}, fmt.Errorf("chat request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ChatResponse{}, fmt.Errorf("chat endpoint returned status: %s", resp.Status)
	}

	var out ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return ChatResponse{}, fmt.Errorf("decode chat response: %w", err)
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("backend returned status %s for %s", resp.Status, endpoint)
	}
	return io.ReadAll(resp.Body)
}

func addFilterParams(q url.Values, filter view.FilterState) {
	if filter.RiskLevel != "" && !strings.EqualFold(filter.RiskLevel, view.FilterAll) {
		q.Set("risk_level", strings.ToLower(filter.RiskLevel))
	}
	if filter.Sensitivity != "" && !strings.EqualFold(filter.Sensitivity, view.FilterAll) {
		q.Set("sensitivity", strings.ToLower(filter.Sensitivity))
	}
}

// decodeFindings extracts the findings array from a response body, tolerating
// a named "findings" field, a named "risk_findings" field, or (when allowBare
// is set) a bare array, in that precedence order. An object with neither field
// decodes to an empty list.
func decodeFindings(data []byte, allowBare bool) ([]model.Finding, error) {
	var envelope struct {
		Findings     []model.Finding `json:"findings"`
		RiskFindings []model.Finding `json:"risk_findings"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil {
		if envelope.Findings != nil {
			return envelope.Findings, nil
		}
		if envelope.RiskFindings != nil {
			return envelope.RiskFindings, nil
		}
		return []model.Finding{}, nil
	}

	if allowBare {
		var bare []model.Finding
		if err := json.Unmarshal(data, &bare); err == nil {
			return bare, nil
		}
	}
	return nil, fmt.Errorf("unrecognized findings response shape")
}
