package stores

import (
	"context"
	"log/slog"

	"github.com/khoi-stripe/danddy/internal/entities/dnd5e"
	"github.com/khoi-stripe/danddy/internal/errors"
	"github.com/khoi-stripe/danddy/internal/services/character"
)

// CharacterStore caches the user's characters. All mutations go
// through the character service; the local collection only ever holds
// server-confirmed records.
type CharacterStore struct {
	state[dnd5e.Character, dnd5e.Character]

	service        character.Service
	onUnauthorized func()
	logger         *slog.Logger
}

// CharacterConfig holds the dependencies for creating a CharacterStore
type CharacterConfig struct {
	Service character.Service

	// OnUnauthorized runs after any operation fails with an
	// Unauthorized error, so the session manager can downgrade.
	// Optional.
	OnUnauthorized func()

	Logger *slog.Logger
}

// Validate ensures all required configuration is present
func (c *CharacterConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.Service == nil {
		return errors.InvalidArgument("service is required")
	}
	return nil
}

// NewCharacterStore creates a character store from the given config
func NewCharacterStore(cfg *CharacterConfig) (*CharacterStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &CharacterStore{
		state:          newState[dnd5e.Character, dnd5e.Character](),
		service:        cfg.Service,
		onUnauthorized: cfg.OnUnauthorized,
		logger:         logger,
	}, nil
}

// FetchAll replaces the entire cached collection with the server's
// list. On failure the previous collection stays available.
func (s *CharacterStore) FetchAll(ctx context.Context) error {
	s.beginLoad()

	out, err := s.service.List(ctx, &character.ListInput{})
	if err != nil {
		return s.fail(ctx, err)
	}

	s.apply(func() {
		s.isLoading = false
		s.items = out.Characters
	})
	return nil
}

// FetchOne loads a single character into the selected slot.
func (s *CharacterStore) FetchOne(ctx context.Context, id int) error {
	s.beginLoad()

	out, err := s.service.Get(ctx, &character.GetInput{CharacterID: id})
	if err != nil {
		return s.fail(ctx, err)
	}

	s.apply(func() {
		s.isLoading = false
		s.selected = out.Character
	})
	return nil
}

// Create sends the draft and appends the server-confirmed record. No
// local placeholder is inserted while the request is in flight.
func (s *CharacterStore) Create(ctx context.Context, draft *dnd5e.CharacterCreate) (*dnd5e.Character, error) {
	s.beginLoad()

	out, err := s.service.Create(ctx, &character.CreateInput{Character: draft})
	if err != nil {
		return nil, s.fail(ctx, err)
	}

	s.apply(func() {
		s.isLoading = false
		s.items = append(s.items, *out.Character)
	})
	return out.Character, nil
}

// Update sends a sparse patch and replaces the cached record with the
// server's full post-update representation. The cache is never merged
// locally; the server decides the resulting state.
func (s *CharacterStore) Update(ctx context.Context, id int, patch *dnd5e.CharacterPatch) (*dnd5e.Character, error) {
	s.beginLoad()

	out, err := s.service.Update(ctx, &character.UpdateInput{CharacterID: id, Patch: patch})
	if err != nil {
		return nil, s.fail(ctx, err)
	}

	s.apply(func() {
		s.isLoading = false
		for i := range s.items {
			if s.items[i].ID == id {
				s.items[i] = *out.Character
				break
			}
		}
		if s.selected != nil && s.selected.ID == id {
			s.selected = out.Character
		}
	})
	return out.Character, nil
}

// Delete removes the record only after the server confirms. A failed
// delete leaves the character present.
func (s *CharacterStore) Delete(ctx context.Context, id int) error {
	s.beginLoad()

	if _, err := s.service.Delete(ctx, &character.DeleteInput{CharacterID: id}); err != nil {
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

func (s *CharacterStore) beginLoad() {
	s.apply(func() {
		s.isLoading = true
		s.lastError = ""
	})
}

func (s *CharacterStore) fail(ctx context.Context, err error) error {
	s.logger.DebugContext(ctx, "character store operation failed", "error", err)

	s.apply(func() {
		s.isLoading = false
		s.lastError = errors.GetMessage(err)
	})

	if errors.IsUnauthorized(err) && s.onUnauthorized != nil {
		s.onUnauthorized()
	}
	return err
}
