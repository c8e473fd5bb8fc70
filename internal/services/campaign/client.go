package campaign

import (
	"context"
	"fmt"
	"net/http"

	"github.com/khoi-stripe/danddy/internal/entities/dnd5e"
	"github.com/khoi-stripe/danddy/internal/errors"
	"github.com/khoi-stripe/danddy/internal/transport"
)

// Config holds the dependencies for the campaign service
type Config struct {
	Transport *transport.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Transport == nil {
		vb.RequiredField("Transport")
	}
	return vb.Build()
}

// Client implements Service over the HTTP transport
type Client struct {
	transport *transport.Client
}

// New creates a new campaign service client
func New(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Client{transport: cfg.Transport}, nil
}

var _ Service = (*Client)(nil)

// List fetches the campaigns visible to the authenticated user
func (c *Client) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	campaigns, err := transport.Do[[]dnd5e.Campaign](ctx, c.transport, transport.Request{
		Method: http.MethodGet,
		Path:   "/campaigns/",
	})
	if err != nil {
		return nil, err
	}

	return &ListOutput{Campaigns: campaigns}, nil
}

// Get fetches one campaign with its characters embedded
func (c *Client) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CampaignID <= 0 {
		return nil, errors.InvalidArgument("campaignID must be positive")
	}

	campaign, err := transport.Do[dnd5e.CampaignWithCharacters](ctx, c.transport, transport.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/campaigns/%d", input.CampaignID),
	})
	if err != nil {
		return nil, err
	}

	return &GetOutput{Campaign: &campaign}, nil
}

// Create creates a campaign owned by the authenticated dm
func (c *Client) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	campaign, err := transport.Do[dnd5e.Campaign](ctx, c.transport, transport.Request{
		Method: http.MethodPost,
		Path:   "/campaigns/",
		Body:   dnd5e.CampaignCreate{Name: input.Name, Description: input.Description},
	})
	if err != nil {
		return nil, err
	}

	return &CreateOutput{Campaign: &campaign}, nil
}

// Update sends a sparse patch and returns the updated campaign
func (c *Client) Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error) {
	if input == nil || input.Patch == nil {
		return nil, errors.InvalidArgument("patch is required")
	}
	if input.CampaignID <= 0 {
		return nil, errors.InvalidArgument("campaignID must be positive")
	}

	campaign, err := transport.Do[dnd5e.Campaign](ctx, c.transport, transport.Request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/campaigns/%d", input.CampaignID),
		Body:   input.Patch,
	})
	if err != nil {
		return nil, err
	}

	return &UpdateOutput{Campaign: &campaign}, nil
}

// Delete removes a campaign; its characters are detached, not deleted
func (c *Client) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CampaignID <= 0 {
		return nil, errors.InvalidArgument("campaignID must be positive")
	}

	err := c.transport.Execute(ctx, transport.Request{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("/campaigns/%d", input.CampaignID),
	})
	if err != nil {
		return nil, err
	}

	return &DeleteOutput{}, nil
}
