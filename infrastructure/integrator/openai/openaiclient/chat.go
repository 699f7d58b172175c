package openaiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	openaidomain "github.com/vfg2006/elt-dashboard-api/infrastructure/integrator/openai/domain"
	"github.com/vfg2006/elt-dashboard-api/internal/domain"
)

// CreateChatCompletion posts one request to /chat/completions. There are no retries.
func (c *OpenAIClient) CreateChatCompletion(ctx context.Context, request openaidomain.ChatCompletionRequest) (*openaidomain.ChatCompletionResponse, error) {
	if c.config.APIKey == "" {
		return nil, &domain.ExternalServiceError{Service: serviceName, Message: "API key is not configured"}
	}

	payload, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to encode chat completion request: %w", err)
	}

	endpoint := strings.TrimRight(c.config.URL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build chat completion request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.ExternalServiceError{Service: serviceName, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.ExternalServiceError{Service: serviceName, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := resp.Status

		var apiErr openaidomain.ErrorResponse
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
			message = apiErr.Error.Message
		}

		return nil, &domain.ExternalServiceError{
			Service:    serviceName,
			StatusCode: resp.StatusCode,
			Message:    message,
		}
	}

	var response openaidomain.ChatCompletionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, &domain.ExternalServiceError{
			Service:    serviceName,
			StatusCode: resp.StatusCode,
			Message:    "invalid response body",
			Err:        err,
		}
	}

	return &response, nil
}
