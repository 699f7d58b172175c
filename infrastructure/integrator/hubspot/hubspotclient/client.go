package hubspotclient

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	hubspotdomain "github.com/vfg2006/elt-dashboard-api/infrastructure/integrator/hubspot/domain"
	"github.com/vfg2006/elt-dashboard-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const serviceName = "hubspot"

type Client interface {
	ListObjects(ctx context.Context, objectType hubspotdomain.ObjectType, properties []string) ([]hubspotdomain.Object, error)
}

type HubSpotClient struct {
	httpClient *http.Client
	config     config.HubSpot
}

func NewClient(cfg config.HubSpot) Client {
	return &HubSpotClient{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		config: cfg,
	}
}
