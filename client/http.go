package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPSource issues real network calls against the configured base URL,
// attaching the persisted bearer token when one is available. Every call is
// a fresh, independent attempt: no retries, no caching.
type HTTPSource struct {
	BaseURL string
	Client  HTTPClient
	Tokens  TokenStore
}

func (s *HTTPSource) Do(ctx context.Context, method, endpoint string, body interface{}) (*Envelope, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.BaseURL+endpoint, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.Tokens != nil {
		if token, err := s.Tokens.Token(); err == nil && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	httpClient := s.Client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		var payload struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
			return nil, errors.New(payload.Message)
		}
		return nil, fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	return normalize(raw), nil
}

// normalize tolerates the two response shapes the API produces: an explicit
// envelope and a bare JSON document (arrays, mostly).
func normalize(raw []byte) *Envelope {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return &Envelope{Success: true}
	}
	if trimmed[0] == '[' {
		return &Envelope{Success: true, Data: trimmed}
	}
	var env Envelope
	if err := json.Unmarshal(trimmed, &env); err == nil && (env.Success || env.Message != "" || env.Data != nil) {
		return &env
	}
	return &Envelope{Success: true, Data: trimmed}
}
