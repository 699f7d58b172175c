package openaiclient

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	openaidomain "github.com/vfg2006/elt-dashboard-api/infrastructure/integrator/openai/domain"
	"github.com/vfg2006/elt-dashboard-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const serviceName = "openai"

type Client interface {
	CreateChatCompletion(ctx context.Context, request openaidomain.ChatCompletionRequest) (*openaidomain.ChatCompletionResponse, error)
}

type OpenAIClient struct {
	httpClient *http.Client
	config     config.OpenAI
}

func NewClient(cfg config.OpenAI) Client {
	return &OpenAIClient{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		config: cfg,
	}
}
