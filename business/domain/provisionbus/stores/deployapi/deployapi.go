// Package deployapi triggers the external hosting provider over HTTP. It
// implements the provisionbus Deployer interface.
package deployapi

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/studygate/studygate/business/domain/clientbus"
	"github.com/studygate/studygate/foundation/logger"
)

// Config holds the settings for the deployment provider.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client calls the deployment provider. Calls carry a hard timeout so a
// slow provider cannot hold a provisioning request hostage.
type Client struct {
	log  *logger.Logger
	rest *resty.Client
}

// New constructs a deployment provider client.
func New(log *logger.Logger, cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	rest := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetHeader("Authorization", "Bearer "+cfg.APIKey)

	return &Client{
		log:  log,
		rest: rest,
	}
}

type deployRequest struct {
	Name    string `json:"name"`
	Domain  string `json:"domain"`
	Primary string `json:"primary_color"`
}

type deployResponse struct {
	ProjectID    string `json:"project_id"`
	URL          string `json:"url"`
	CustomDomain string `json:"custom_domain"`
}

// Deploy asks the provider to stand up a site for the client and returns
// the resulting deployment metadata.
func (c *Client) Deploy(ctx context.Context, client clientbus.Client) (clientbus.Deployment, error) {
	req := deployRequest{
		Name:    client.Name.String(),
		Domain:  client.Domain,
		Primary: client.Theme.Primary.String(),
	}

	var resp deployResponse

	res, err := c.rest.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&resp).
		Post("/v1/projects")

	if err != nil {
		return clientbus.Deployment{}, fmt.Errorf("deploy request: %w", err)
	}

	if res.IsError() {
		return clientbus.Deployment{}, fmt.Errorf("deploy request: status[%d] body[%s]", res.StatusCode(), res.String())
	}

	c.log.Info(ctx, "deployapi: project created", "clientID", client.ID, "projectID", resp.ProjectID)

	deployment := clientbus.Deployment{
		ProjectID:    resp.ProjectID,
		URL:          resp.URL,
		CustomDomain: resp.CustomDomain,
	}

	return deployment, nil
}
