package user

import (
	"context"
	"fmt"
	"net/http"

	"github.com/khoi-stripe/danddy/internal/entities/dnd5e"
	"github.com/khoi-stripe/danddy/internal/errors"
	"github.com/khoi-stripe/danddy/internal/transport"
)

// Config holds the dependencies for the user service
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

// New creates a new user service client
func New(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Client{transport: cfg.Transport}, nil
}

var _ Service = (*Client)(nil)

// List fetches all users. Player accounts receive a client error.
func (c *Client) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	users, err := transport.Do[[]dnd5e.User](ctx, c.transport, transport.Request{
		Method: http.MethodGet,
		Path:   "/users/",
	})
	if err != nil {
		return nil, err
	}

	return &ListOutput{Users: users}, nil
}

// Get fetches one user by ID
func (c *Client) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.UserID <= 0 {
		return nil, errors.InvalidArgument("userID must be positive")
	}

	fetched, err := transport.Do[dnd5e.User](ctx, c.transport, transport.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/users/%d", input.UserID),
	})
	if err != nil {
		return nil, err
	}

	return &GetOutput{User: &fetched}, nil
}
