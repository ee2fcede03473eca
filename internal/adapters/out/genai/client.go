// Package genai provides the outbound adapter for the generative design
// enhancement service. The service receives a design as a base64 data URI and
// returns an enhanced version plus human-readable improvement suggestions.
//
// The adapter treats the service as unreliable: every failure is wrapped in
// an UpstreamServiceError so callers can degrade to the original design
// instead of failing the request.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"printstream/internal/core/ports"
	"printstream/internal/pkg/errs"
)

const serviceName = "design enhancer"

// Client calls the design enhancement service over HTTP.
// Implements ports.DesignEnhancer.
type Client struct {
	enhanceURL string
	http       *http.Client
}

// NewClient creates a design enhancement client for the given base URL.
// A nil httpClient falls back to a client with a 30 second timeout; design
// payloads are large and model inference is slow, so the default is generous.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		enhanceURL: baseURL + "/v1/designs/enhance",
		http:       httpClient,
	}
}

type enhanceReq struct {
	DesignDataURI string `json:"designDataUri"`
	Prompt        string `json:"prompt,omitempty"`
}

type enhanceResp struct {
	EnhancedDesignDataURI string   `json:"enhancedDesignDataUri"`
	Suggestions           []string `json:"suggestions"`
}

// Enhance submits a design to the enhancement service and returns the result.
// Network failures, non-2xx responses, and malformed bodies are all reported
// as UpstreamServiceError.
func (c *Client) Enhance(ctx context.Context, req ports.EnhanceDesignRequest) (ports.EnhanceDesignResponse, error) {
	body, err := json.Marshal(enhanceReq{
		DesignDataURI: req.DesignDataURI,
		Prompt:        req.Prompt,
	})
	if err != nil {
		return ports.EnhanceDesignResponse{}, errs.NewUpstreamServiceError(serviceName, fmt.Errorf("marshal: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.enhanceURL, bytes.NewReader(body))
	if err != nil {
		return ports.EnhanceDesignResponse{}, errs.NewUpstreamServiceError(serviceName, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return ports.EnhanceDesignResponse{}, errs.NewUpstreamServiceError(serviceName, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return ports.EnhanceDesignResponse{}, errs.NewUpstreamServiceError(serviceName, err)
	}

	if resp.StatusCode/100 != 2 {
		return ports.EnhanceDesignResponse{},
			errs.NewUpstreamServiceError(serviceName, fmt.Errorf("unexpected status %s", resp.Status))
	}

	var out enhanceResp
	if err := json.Unmarshal(raw, &out); err != nil {
		return ports.EnhanceDesignResponse{}, errs.NewUpstreamServiceError(serviceName, fmt.Errorf("decode: %w", err))
	}

	return ports.EnhanceDesignResponse{
		EnhancedDesignDataURI: out.EnhancedDesignDataURI,
		Suggestions:           out.Suggestions,
	}, nil
}
