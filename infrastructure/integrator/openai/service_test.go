package openai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	openaidomain "github.com/vfg2006/elt-dashboard-api/infrastructure/integrator/openai/domain"
	"github.com/vfg2006/elt-dashboard-api/internal/config"
	"github.com/vfg2006/elt-dashboard-api/internal/domain"
)

type fakeClient struct {
	request  openaidomain.ChatCompletionRequest
	response *openaidomain.ChatCompletionResponse
	err      error
}

func (f *fakeClient) CreateChatCompletion(_ context.Context, request openaidomain.ChatCompletionRequest) (*openaidomain.ChatCompletionResponse, error) {
	f.request = request
	return f.response, f.err
}

func TestOpenAIService_Generate(t *testing.T) {
	client := &fakeClient{response: &openaidomain.ChatCompletionResponse{
		Choices: []openaidomain.Choice{{Message: openaidomain.Message{Role: "assistant", Content: "EXECUTIVE SUMMARY ..."}}},
		Usage:   openaidomain.Usage{PromptTokens: 120, CompletionTokens: 80, TotalTokens: 200},
	}}
	service := New(client, config.OpenAI{Model: "gpt-4", MaxTokens: 2000, Temperature: 0.7})

	narrative, err := service.Generate(context.Background(), domain.NarrativeInput{})
	require.NoError(t, err)

	assert.Equal(t, "EXECUTIVE SUMMARY ...", narrative.Text)
	assert.Equal(t, domain.TokenUsage{PromptTokens: 120, CompletionTokens: 80, TotalTokens: 200}, narrative.Usage)

	assert.Equal(t, "gpt-4", client.request.Model)
	assert.Equal(t, 2000, client.request.MaxTokens)
	require.Len(t, client.request.Messages, 2)
	assert.Equal(t, SystemPrompt, client.request.Messages[0].Content)
	assert.Equal(t, openaidomain.RoleUser, client.request.Messages[1].Role)
}

func TestOpenAIService_GenerateEmptyCompletion(t *testing.T) {
	service := New(&fakeClient{response: &openaidomain.ChatCompletionResponse{}}, config.OpenAI{})

	_, err := service.Generate(context.Background(), domain.NarrativeInput{})
	assert.ErrorIs(t, err, domain.ErrExternalService)
}

func TestOpenAIService_GeneratePropagatesClientError(t *testing.T) {
	clientErr := &domain.ExternalServiceError{Service: "openai", StatusCode: 401, Message: "Incorrect API key provided"}
	service := New(&fakeClient{err: clientErr}, config.OpenAI{})

	_, err := service.Generate(context.Background(), domain.NarrativeInput{})
	assert.Equal(t, clientErr, err)
}
