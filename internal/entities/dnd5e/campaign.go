package dnd5e

// Campaign groups characters under a dungeon master
type Campaign struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	DMID        int    `json:"dm_id"`
}

// CampaignWithCharacters is the detail projection embedding the
// campaign's characters in display order
type CampaignWithCharacters struct {
	Campaign
	Characters []Character `json:"characters"`
}

// CampaignCreate is the creation payload
type CampaignCreate struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CampaignUpdate is a sparse patch for campaign fields
type CampaignUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}
