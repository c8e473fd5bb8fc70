package dnd5e

import "encoding/json"

// CharacterPatch is a strongly-typed sparse update: only non-nil fields
// are transmitted. The field set mirrors what the backend's update
// endpoint accepts.
type CharacterPatch struct {
	Name             *string `json:"name,omitempty"`
	Level            *int    `json:"level,omitempty"`
	ExperiencePoints *int    `json:"experience_points,omitempty"`

	HitPointsCurrent *int `json:"hit_points_current,omitempty"`
	HitPointsTemp    *int `json:"hit_points_temp,omitempty"`

	DeathSaveSuccesses *int `json:"death_save_successes,omitempty"`
	DeathSaveFailures  *int `json:"death_save_failures,omitempty"`

	Conditions *[]string `json:"conditions,omitempty"`
	Inventory  *[]Record `json:"inventory,omitempty"`

	SpellSlotsUsed *map[string]int `json:"spell_slots_used,omitempty"`
	SpellsPrepared *[]string       `json:"spells_prepared,omitempty"`

	CopperPieces   *int `json:"copper_pieces,omitempty"`
	SilverPieces   *int `json:"silver_pieces,omitempty"`
	ElectrumPieces *int `json:"electrum_pieces,omitempty"`
	GoldPieces     *int `json:"gold_pieces,omitempty"`
	PlatinumPieces *int `json:"platinum_pieces,omitempty"`

	CampaignID *int `json:"campaign_id,omitempty"`

	// ClearCampaign detaches the character from its campaign by sending
	// an explicit null, which omitempty cannot express.
	ClearCampaign bool `json:"-"`
}

// IsEmpty reports whether the patch carries no changes
func (p *CharacterPatch) IsEmpty() bool {
	data, err := json.Marshal(p)
	if err != nil {
		return false
	}
	return string(data) == "{}"
}

// MarshalJSON emits only the set fields, plus an explicit
// "campaign_id": null when ClearCampaign is set
func (p CharacterPatch) MarshalJSON() ([]byte, error) {
	type plain CharacterPatch
	data, err := json.Marshal(plain(p))
	if err != nil {
		return nil, err
	}

	if !p.ClearCampaign {
		return data, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	obj["campaign_id"] = json.RawMessage("null")
	return json.Marshal(obj)
}

// Helpers for building patches without taking addresses by hand

// String returns a pointer to s
func String(s string) *string { return &s }

// Int returns a pointer to i
func Int(i int) *int { return &i }

// Strings returns a pointer to a copy of the given slice
func Strings(s ...string) *[]string { return &s }
