package auth

import (
	"context"
	"net/http"

	"github.com/khoi-stripe/danddy/internal/entities/dnd5e"
	"github.com/khoi-stripe/danddy/internal/errors"
	"github.com/khoi-stripe/danddy/internal/transport"
)

// Config holds the dependencies for the auth service
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

// New creates a new auth service client
func New(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Client{transport: cfg.Transport}, nil
}

var _ Service = (*Client)(nil)

// Register creates a new account. Registration alone does not establish
// a session; callers follow up with Login.
func (c *Client) Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("email", input.Email, vb)
	errors.ValidateRequired("username", input.Username, vb)
	errors.ValidateRequired("password", input.Password, vb)
	errors.ValidateEnum("role", string(input.Role), dnd5e.UserRoles, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	user, err := transport.Do[dnd5e.User](ctx, c.transport, transport.Request{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Body: dnd5e.UserCreate{
			Email:    input.Email,
			Username: input.Username,
			Password: input.Password,
			Role:     input.Role,
		},
		NoAuth: true,
	})
	if err != nil {
		return nil, err
	}

	return &RegisterOutput{User: &user}, nil
}

// Login exchanges credentials for a bearer token
func (c *Client) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("email", input.Email, vb)
	errors.ValidateRequired("password", input.Password, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	token, err := transport.Do[dnd5e.TokenResponse](ctx, c.transport, transport.Request{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   dnd5e.UserLogin{Email: input.Email, Password: input.Password},
		NoAuth: true,
	})
	if err != nil {
		return nil, err
	}

	return &LoginOutput{AccessToken: token.AccessToken, TokenType: token.TokenType}, nil
}

// Me fetches the profile of the authenticated user
func (c *Client) Me(ctx context.Context, _ *MeInput) (*MeOutput, error) {
	user, err := transport.Do[dnd5e.User](ctx, c.transport, transport.Request{
		Method: http.MethodGet,
		Path:   "/auth/me",
	})
	if err != nil {
		return nil, err
	}

	return &MeOutput{User: &user}, nil
}

// ForgotPassword asks the backend to start a password reset
func (c *Client) ForgotPassword(ctx context.Context, input *ForgotPasswordInput) (*ForgotPasswordOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("email", input.Email, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	err := c.transport.Execute(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   "/auth/password/forgot",
		Body:   dnd5e.PasswordResetRequest{Email: input.Email},
		NoAuth: true,
	})
	if err != nil {
		return nil, err
	}

	return &ForgotPasswordOutput{}, nil
}

// ResetPassword completes a password reset with the mailed token
func (c *Client) ResetPassword(ctx context.Context, input *ResetPasswordInput) (*ResetPasswordOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("token", input.Token, vb)
	errors.ValidateRequired("newPassword", input.NewPassword, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	token, err := transport.Do[dnd5e.TokenResponse](ctx, c.transport, transport.Request{
		Method: http.MethodPost,
		Path:   "/auth/password/reset",
		Body:   dnd5e.PasswordResetConfirm{Token: input.Token, NewPassword: input.NewPassword},
		NoAuth: true,
	})
	if err != nil {
		return nil, err
	}

	return &ResetPasswordOutput{AccessToken: token.AccessToken, TokenType: token.TokenType}, nil
}
