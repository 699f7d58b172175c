package openai

import (
	"context"

	openaidomain "github.com/vfg2006/elt-dashboard-api/infrastructure/integrator/openai/domain"
	"github.com/vfg2006/elt-dashboard-api/infrastructure/integrator/openai/openaiclient"
	"github.com/vfg2006/elt-dashboard-api/internal/config"
	"github.com/vfg2006/elt-dashboard-api/internal/domain"
	"github.com/vfg2006/elt-dashboard-api/pkg/log"
)

type Narrator interface {
	Generate(ctx context.Context, input domain.NarrativeInput) (*domain.Narrative, error)
}

type OpenAIService struct {
	Client openaiclient.Client
	config config.OpenAI
}

func New(client openaiclient.Client, cfg config.OpenAI) Narrator {
	return &OpenAIService{
		Client: client,
		config: cfg,
	}
}

func (s *OpenAIService) Generate(ctx context.Context, input domain.NarrativeInput) (*domain.Narrative, error) {
	response, err := s.Client.CreateChatCompletion(ctx, openaidomain.ChatCompletionRequest{
		Model: s.config.Model,
		Messages: []openaidomain.Message{
			{Role: openaidomain.RoleSystem, Content: SystemPrompt},
			{Role: openaidomain.RoleUser, Content: BuildPrompt(input)},
		},
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	})
	if err != nil {
		return nil, err
	}

	if len(response.Choices) == 0 || response.Choices[0].Message.Content == "" {
		return nil, &domain.ExternalServiceError{Service: "openai", Message: "completion returned no content"}
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"openai_model":         response.Model,
		"openai_total_tokens":  response.Usage.TotalTokens,
		"openai_finish_reason": response.Choices[0].FinishReason,
	}).Info("openai: narrative generated")

	return &domain.Narrative{
		Text: response.Choices[0].Message.Content,
		Usage: domain.TokenUsage{
			PromptTokens:     response.Usage.PromptTokens,
			CompletionTokens: response.Usage.CompletionTokens,
			TotalTokens:      response.Usage.TotalTokens,
		},
	}, nil
}
