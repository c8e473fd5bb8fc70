// Package character defines the interface for character operations
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/khoi-stripe/danddy/internal/services/character Service

import (
	"context"

	"github.com/khoi-stripe/danddy/internal/entities/dnd5e"
)

// Service defines the interface for character operations, one per
// backend endpoint
type Service interface {
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)
	Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error)
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// ListInput defines the request for listing the user's characters
type ListInput struct{}

// ListOutput defines the response for listing characters
type ListOutput struct {
	Characters []dnd5e.Character
}

// GetInput defines the request for fetching one character
type GetInput struct {
	CharacterID int
}

// GetOutput defines the response for fetching one character
type GetOutput struct {
	Character *dnd5e.Character
}

// CreateInput defines the request for creating a character
type CreateInput struct {
	Character *dnd5e.CharacterCreate
}

// CreateOutput defines the response for creating a character; the
// backend assigns the ID
type CreateOutput struct {
	Character *dnd5e.Character
}

// UpdateInput defines the request for a sparse update. The server
// merges the patch and returns the full post-update record.
type UpdateInput struct {
	CharacterID int
	Patch       *dnd5e.CharacterPatch
}

// UpdateOutput defines the response for a sparse update
type UpdateOutput struct {
	Character *dnd5e.Character
}

// DeleteInput defines the request for deleting a character
type DeleteInput struct {
	CharacterID int
}

// DeleteOutput defines the response for deleting a character
type DeleteOutput struct{}
