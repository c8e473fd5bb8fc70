package character

import (
	"context"
	"fmt"
	"net/http"

	"github.com/khoi-stripe/danddy/internal/entities/dnd5e"
	"github.com/khoi-stripe/danddy/internal/errors"
	"github.com/khoi-stripe/danddy/internal/transport"
)

// Config holds the dependencies for the character service
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

// New creates a new character service client
func New(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Client{transport: cfg.Transport}, nil
}

var _ Service = (*Client)(nil)

// List fetches every character visible to the authenticated user
func (c *Client) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	characters, err := transport.Do[[]dnd5e.Character](ctx, c.transport, transport.Request{
		Method: http.MethodGet,
		Path:   "/characters/",
	})
	if err != nil {
		return nil, err
	}

	return &ListOutput{Characters: characters}, nil
}

// Get fetches one character by ID
func (c *Client) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID <= 0 {
		return nil, errors.InvalidArgument("characterID must be positive")
	}

	character, err := transport.Do[dnd5e.Character](ctx, c.transport, transport.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/characters/%d", input.CharacterID),
	})
	if err != nil {
		return nil, err
	}

	return &GetOutput{Character: &character}, nil
}

// Create submits a new character and returns the server-assigned record
func (c *Client) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	if err := validateCreate(input.Character); err != nil {
		return nil, err
	}

	character, err := transport.Do[dnd5e.Character](ctx, c.transport, transport.Request{
		Method: http.MethodPost,
		Path:   "/characters/",
		Body:   input.Character,
	})
	if err != nil {
		return nil, err
	}

	return &CreateOutput{Character: &character}, nil
}

// Update sends a sparse patch and returns the full updated record
func (c *Client) Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error) {
	if input == nil || input.Patch == nil {
		return nil, errors.InvalidArgument("patch is required")
	}
	if input.CharacterID <= 0 {
		return nil, errors.InvalidArgument("characterID must be positive")
	}

	if err := validatePatch(input.Patch); err != nil {
		return nil, err
	}

	character, err := transport.Do[dnd5e.Character](ctx, c.transport, transport.Request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/characters/%d", input.CharacterID),
		Body:   input.Patch,
	})
	if err != nil {
		return nil, err
	}

	return &UpdateOutput{Character: &character}, nil
}

// Delete removes a character permanently; there is no undo
func (c *Client) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID <= 0 {
		return nil, errors.InvalidArgument("characterID must be positive")
	}

	err := c.transport.Execute(ctx, transport.Request{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("/characters/%d", input.CharacterID),
	})
	if err != nil {
		return nil, err
	}

	return &DeleteOutput{}, nil
}

// validateCreate enforces the structural limits before transmission.
// Ability scores are deliberately not clamped; score policy is the
// caller's decision.
func validateCreate(create *dnd5e.CharacterCreate) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", create.Name, vb)
	errors.ValidateRequired("race", create.Race, vb)
	errors.ValidateRequired("characterClass", create.CharacterClass, vb)
	errors.ValidateMin("level", create.Level, 1, vb)
	errors.ValidateMin("experiencePoints", create.ExperiencePoints, 0, vb)
	errors.ValidateMin("hitPointsMax", create.HitPointsMax, 0, vb)
	errors.ValidateMin("hitPointsCurrent", create.HitPointsCurrent, 0, vb)
	errors.ValidateMin("hitPointsTemp", create.HitPointsTemp, 0, vb)
	errors.ValidateRange("deathSaveSuccesses", create.DeathSaveSuccesses, 0, 3, vb)
	errors.ValidateRange("deathSaveFailures", create.DeathSaveFailures, 0, 3, vb)
	return vb.Build()
}

// validatePatch checks the fields the patch actually carries
func validatePatch(patch *dnd5e.CharacterPatch) error {
	vb := errors.NewValidationBuilder()

	if patch.Level != nil {
		errors.ValidateMin("level", *patch.Level, 1, vb)
	}
	if patch.ExperiencePoints != nil {
		errors.ValidateMin("experiencePoints", *patch.ExperiencePoints, 0, vb)
	}
	if patch.HitPointsCurrent != nil {
		errors.ValidateMin("hitPointsCurrent", *patch.HitPointsCurrent, 0, vb)
	}
	if patch.HitPointsTemp != nil {
		errors.ValidateMin("hitPointsTemp", *patch.HitPointsTemp, 0, vb)
	}
	if patch.DeathSaveSuccesses != nil {
		errors.ValidateRange("deathSaveSuccesses", *patch.DeathSaveSuccesses, 0, 3, vb)
	}
	if patch.DeathSaveFailures != nil {
		errors.ValidateRange("deathSaveFailures", *patch.DeathSaveFailures, 0, 3, vb)
	}
	if patch.SpellSlotsUsed != nil {
		for level, used := range *patch.SpellSlotsUsed {
			if used < 0 {
				vb.Fieldf("spellSlotsUsed", "level %s must not be negative", level)
			}
		}
	}
	for field, value := range map[string]*int{
		"copperPieces":   patch.CopperPieces,
		"silverPieces":   patch.SilverPieces,
		"electrumPieces": patch.ElectrumPieces,
		"goldPieces":     patch.GoldPieces,
		"platinumPieces": patch.PlatinumPieces,
	} {
		if value != nil {
			errors.ValidateMin(field, *value, 0, vb)
		}
	}

	return vb.Build()
}
