package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"intern-matching-be/internal/pkg/matcherr"
)

// GeminiProvider calls the Gemini text-embedding-004 REST endpoint (768 dims).
type GeminiProvider struct {
	apiKey string
	client *http.Client
}

type geminiRequestPart struct {
	Text string `json:"text"`
}

type geminiRequestContent struct {
	Parts []geminiRequestPart `json:"parts"`
}

type geminiRequest struct {
	Model    string               `json:"model"`
	Content  geminiRequestContent `json:"content"`
	TaskType string               `json:"task_type,omitempty"`
}

type geminiResponse struct {
	Embedding struct {
		Values []float32 `json:"values"`
	} `json:"embedding"`
}

func NewGeminiProvider(apiKey string) Provider {
	return &GeminiProvider{
		apiKey: apiKey,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *GeminiProvider) Generate(ctx context.Context, text string, taskType string) ([]float32, error) {
	modelName := "text-embedding-004"

	geminiReq := geminiRequest{
		Model: modelName,
		Content: geminiRequestContent{
			Parts: []geminiRequestPart{
				{Text: text},
			},
		},
		TaskType: taskType,
	}
	geminiReqJson, err := json.Marshal(geminiReq)
	if err != nil {
		return nil, matcherr.NewEmbeddingError(fmt.Sprintf("marshal gemini request: %v", err))
	}

	endpoint := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1/models/%s:embedContent",
		modelName,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(geminiReqJson))
	if err != nil {
		return nil, matcherr.NewEmbeddingError(fmt.Sprintf("build gemini request: %v", err))
	}

	req.Header.Set("x-goog-api-key", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return nil, matcherr.NewEmbeddingError(fmt.Sprintf("gemini request failed: %v", err))
	}
	defer res.Body.Close()

	resByte, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, matcherr.NewEmbeddingError(fmt.Sprintf("read gemini response: %v", err))
	}

	if res.StatusCode != http.StatusOK {
		return nil, matcherr.NewEmbeddingError(fmt.Sprintf("gemini response code %d, body %s", res.StatusCode, string(resByte)))
	}

	var resEmbedding geminiResponse
	if err := json.Unmarshal(resByte, &resEmbedding); err != nil {
		return nil, matcherr.NewEmbeddingError(fmt.Sprintf("decode gemini response: %v", err))
	}

	return NormalizeVector(resEmbedding.Embedding.Values), nil
}
