package jina

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"intern-matching-be/internal/pkg/matcherr"
	"intern-matching-be/pkg/embedding"
)

type JinaProvider struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

type embeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type embeddingResponse struct {
	Data []struct {
		Object    string    `json:"object"`
		Index     int       `json:"index"`
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func NewJinaProvider(apiKey string) *JinaProvider {
	return &JinaProvider{
		apiKey:  apiKey,
		baseURL: "https://api.jina.ai/v1/embeddings",
		model:   "jina-embeddings-v2-base-en",
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *JinaProvider) Generate(ctx context.Context, text string, taskType string) ([]float32, error) {
	// Jina takes an array of inputs; we wrap the single document.
	reqBody := embeddingRequest{
		Model: p.model,
		Input: []string{text},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, matcherr.NewEmbeddingError(fmt.Sprintf("marshal jina request: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, matcherr.NewEmbeddingError(fmt.Sprintf("build jina request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, matcherr.NewEmbeddingError(fmt.Sprintf("jina request failed: %v", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, matcherr.NewEmbeddingError(fmt.Sprintf("read jina response: %v", err))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, matcherr.NewEmbeddingError(fmt.Sprintf("jina response code %d, body %s", resp.StatusCode, string(body)))
	}

	var res embeddingResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, matcherr.NewEmbeddingError(fmt.Sprintf("decode jina response: %v", err))
	}
	if res.Error != nil {
		return nil, matcherr.NewEmbeddingError("jina: " + res.Error.Message)
	}
	if len(res.Data) == 0 {
		return nil, matcherr.NewEmbeddingError("jina: empty embedding data")
	}

	return embedding.NormalizeVector(res.Data[0].Embedding), nil
}
