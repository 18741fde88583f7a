package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Remote calls an external inference service over HTTP. It is the
// production replacement for the Mock generator and speaks the same
// single-prompt request shape an Ollama-compatible server accepts.
type Remote struct {
	client *http.Client
	url    string
}

func NewRemote(url string) *Remote {
	return &Remote{
		client: &http.Client{},
		url:    url,
	}
}

type remoteRequest struct {
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type remoteResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

func (r *Remote) Generate(ctx context.Context, userText string) (string, error) {
	body, err := json.Marshal(remoteRequest{Prompt: userText, Stream: false})
	if err != nil {
		return "", fmt.Errorf("could not marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url+"/api/generate", bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("could not create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("api returned non-200 status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var out remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("could not decode response: %w", err)
	}
	return out.Response, nil
}
