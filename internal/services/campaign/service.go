// Package campaign defines the interface for campaign operations
package campaign

//go:generate mockgen -destination=mock/mock_service.go -package=campaignmock github.com/khoi-stripe/danddy/internal/services/campaign Service

import (
	"context"

	"github.com/khoi-stripe/danddy/internal/entities/dnd5e"
)

// Service defines the interface for campaign operations, one per
// backend endpoint. Campaign creation is dm-only; the backend enforces
// the role check.
type Service interface {
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)
	Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error)
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// ListInput defines the request for listing campaigns
type ListInput struct{}

// ListOutput defines the response for listing campaigns
type ListOutput struct {
	Campaigns []dnd5e.Campaign
}

// GetInput defines the request for fetching one campaign
type GetInput struct {
	CampaignID int
}

// GetOutput defines the response for fetching one campaign, including
// its characters
type GetOutput struct {
	Campaign *dnd5e.CampaignWithCharacters
}

// CreateInput defines the request for creating a campaign
type CreateInput struct {
	Name        string
	Description string
}

// CreateOutput defines the response for creating a campaign
type CreateOutput struct {
	Campaign *dnd5e.Campaign
}

// UpdateInput defines the request for a sparse campaign update
type UpdateInput struct {
	CampaignID int
	Patch      *dnd5e.CampaignUpdate
}

// UpdateOutput defines the response for a sparse campaign update
type UpdateOutput struct {
	Campaign *dnd5e.Campaign
}

// DeleteInput defines the request for deleting a campaign
type DeleteInput struct {
	CampaignID int
}

// DeleteOutput defines the response for deleting a campaign
type DeleteOutput struct{}
