package stores

import (
	"context"
	"log/slog"

	"github.com/khoi-stripe/danddy/internal/entities/dnd5e"
	"github.com/khoi-stripe/danddy/internal/errors"
	"github.com/khoi-stripe/danddy/internal/services/campaign"
)

// CampaignStore caches campaigns. The list holds bare campaigns; the
// selected slot holds the detail view with its member characters, which
// is what the per-campaign endpoint returns.
type CampaignStore struct {
	state[dnd5e.Campaign, dnd5e.CampaignWithCharacters]

	service        campaign.Service
	onUnauthorized func()
	logger         *slog.Logger
}

// CampaignConfig holds the dependencies for creating a CampaignStore
type CampaignConfig struct {
	Service campaign.Service

	// OnUnauthorized runs after any operation fails with an
	// Unauthorized error, so the session manager can downgrade.
	// Optional.
	OnUnauthorized func()

	Logger *slog.Logger
}

// Validate ensures all required configuration is present
func (c *CampaignConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.Service == nil {
		return errors.InvalidArgument("service is required")
	}
	return nil
}

// NewCampaignStore creates a campaign store from the given config
func NewCampaignStore(cfg *CampaignConfig) (*CampaignStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &CampaignStore{
		state:          newState[dnd5e.Campaign, dnd5e.CampaignWithCharacters](),
		service:        cfg.Service,
		onUnauthorized: cfg.OnUnauthorized,
		logger:         logger,
	}, nil
}

// FetchAll replaces the cached list with the server's. On failure the
// previous list stays available.
func (s *CampaignStore) FetchAll(ctx context.Context) error {
	s.beginLoad()

	out, err := s.service.List(ctx, &campaign.ListInput{})
	if err != nil {
		return s.fail(ctx, err)
	}

	s.apply(func() {
		s.isLoading = false
		s.items = out.Campaigns
	})
	return nil
}

// FetchOne loads one campaign, with its characters, into the selected
// slot.
func (s *CampaignStore) FetchOne(ctx context.Context, id int) error {
	s.beginLoad()

	out, err := s.service.Get(ctx, &campaign.GetInput{CampaignID: id})
	if err != nil {
		return s.fail(ctx, err)
	}

	s.apply(func() {
		s.isLoading = false
		s.selected = out.Campaign
	})
	return nil
}

// Create sends the draft and appends the server-confirmed campaign.
func (s *CampaignStore) Create(ctx context.Context, name, description string) (*dnd5e.Campaign, error) {
	s.beginLoad()

	out, err := s.service.Create(ctx, &campaign.CreateInput{Name: name, Description: description})
	if err != nil {
		return nil, s.fail(ctx, err)
	}

	s.apply(func() {
		s.isLoading = false
		s.items = append(s.items, *out.Campaign)
	})
	return out.Campaign, nil
}

// Update sends a sparse patch and replaces the cached campaign with the
// server's returned record.
func (s *CampaignStore) Update(ctx context.Context, id int, patch *dnd5e.CampaignUpdate) (*dnd5e.Campaign, error) {
	s.beginLoad()

	out, err := s.service.Update(ctx, &campaign.UpdateInput{CampaignID: id, Patch: patch})
	if err != nil {
		return nil, s.fail(ctx, err)
	}

	s.apply(func() {
		s.isLoading = false
		for i := range s.items {
			if s.items[i].ID == id {
				s.items[i] = *out.Campaign
				break
			}
		}
		if s.selected != nil && s.selected.ID == id {
			s.selected.Campaign = *out.Campaign
		}
	})
	return out.Campaign, nil
}

// Delete removes the campaign only after the server confirms.
func (s *CampaignStore) Delete(ctx context.Context, id int) error {
	s.beginLoad()

	if _, err := s.service.Delete(ctx, &campaign.DeleteInput{CampaignID: id}); err != nil {
		return s.fail(ctx, err)
	}

	s.apply(func() {
		s.isLoading = false
		for i := range s.items {
			if s.items[i].ID == id {
				s.items = append(s.items[:i], s.items[i+1:]...)
				break
			}
		}
		if s.selected != nil && s.selected.ID == id {
			s.selected = nil
		}
	})
	return nil
}

func (s *CampaignStore) beginLoad() {
	s.apply(func() {
		s.isLoading = true
		s.lastError = ""
	})
}

func (s *CampaignStore) fail(ctx context.Context, err error) error {
	s.logger.DebugContext(ctx, "campaign store operation failed", "error", err)

	s.apply(func() {
		s.isLoading = false
		s.lastError = errors.GetMessage(err)
	})

	if errors.IsUnauthorized(err) && s.onUnauthorized != nil {
		s.onUnauthorized()
	}
	return err
}
