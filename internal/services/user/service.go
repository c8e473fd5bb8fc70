// Package user defines the interface for user directory operations
package user

//go:generate mockgen -destination=mock/mock_service.go -package=usermock github.com/khoi-stripe/danddy/internal/services/user Service

import (
	"context"

	"github.com/khoi-stripe/danddy/internal/entities/dnd5e"
)

// Service defines the interface for the user directory. Listing is
// restricted to dm accounts; the backend answers 403 for players.
type Service interface {
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)
}

// ListInput defines the request for listing users
type ListInput struct{}

// ListOutput defines the response for listing users
type ListOutput struct {
	Users []dnd5e.User
}

// GetInput defines the request for fetching one user
type GetInput struct {
	UserID int
}

// GetOutput defines the response for fetching one user
type GetOutput struct {
	User *dnd5e.User
}
