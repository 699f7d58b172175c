package hubspotclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"

	hubspotdomain "github.com/vfg2006/elt-dashboard-api/infrastructure/integrator/hubspot/domain"
	"github.com/vfg2006/elt-dashboard-api/internal/domain"
	"github.com/vfg2006/elt-dashboard-api/pkg/log"
)

const defaultPageLimit = 100

// ListObjects fetches every page of objectType, following paging.next.after until the
// last page or the configured page cap.
func (c *HubSpotClient) ListObjects(ctx context.Context, objectType hubspotdomain.ObjectType, properties []string) ([]hubspotdomain.Object, error) {
	if c.config.AccessToken == "" {
		return nil, &domain.ExternalServiceError{Service: serviceName, Message: "access token is not configured"}
	}

	maxPages := c.config.MaxPages
	if maxPages <= 0 {
		maxPages = 1
	}

	objects := make([]hubspotdomain.Object, 0)
	after := ""
	for page := 0; page < maxPages; page++ {
		response, err := c.listPage(ctx, objectType, properties, after)
		if err != nil {
			return nil, err
		}

		objects = append(objects, response.Results...)

		after = response.NextAfter()
		if after == "" {
			return objects, nil
		}
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"hubspot_object": objectType,
		"hubspot_pages":  maxPages,
	}).Warn("hubspot: page cap reached, results truncated")

	return objects, nil
}

func (c *HubSpotClient) listPage(ctx context.Context, objectType hubspotdomain.ObjectType, properties []string, after string) (*hubspotdomain.ListResponse, error) {
	endpoint, err := url.Parse(c.config.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HubSpot base URL: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/crm/v3/objects", string(objectType))

	limit := c.config.PageLimit
	if limit <= 0 {
		limit = defaultPageLimit
	}

	query := endpoint.Query()
	query.Set("properties", strings.Join(properties, ","))
	query.Set("limit", strconv.Itoa(limit))
	if after != "" {
		query.Set("after", after)
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build HubSpot request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.AccessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

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
		return nil, responseError(resp, body)
	}

	var response hubspotdomain.ListResponse
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

func responseError(resp *http.Response, body []byte) error {
	message := resp.Status

	var apiErr hubspotdomain.ErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		message = apiErr.Message
	}

	return &domain.ExternalServiceError{
		Service:    serviceName,
		StatusCode: resp.StatusCode,
		Message:    message,
	}
}
