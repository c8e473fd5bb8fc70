package dnd5e

import (
	"encoding/json"
	"sort"
)

// Record is a named free-form entry: a trait, feature, feat, inventory
// item, known spell, or attack. The backend stores these as flat
// string-to-string objects, so Record flattens itself on the wire:
// "name" and "description" are lifted into the typed fields and every
// other key lands in Metadata.
type Record struct {
	Name        string
	Description string
	Metadata    map[string]string
}

// MarshalJSON emits the flat wire object
func (r Record) MarshalJSON() ([]byte, error) {
	obj := make(map[string]string, len(r.Metadata)+2)
	for k, v := range r.Metadata {
		obj[k] = v
	}
	if r.Name != "" {
		obj["name"] = r.Name
	}
	if r.Description != "" {
		obj["description"] = r.Description
	}
	return json.Marshal(obj)
}

// UnmarshalJSON reads the flat wire object
func (r *Record) UnmarshalJSON(data []byte) error {
	var obj map[string]string
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	r.Name = obj["name"]
	r.Description = obj["description"]
	delete(obj, "name")
	delete(obj, "description")

	r.Metadata = nil
	if len(obj) > 0 {
		r.Metadata = obj
	}
	return nil
}

// MetadataKeys returns the extra keys in sorted order, for stable display
func (r Record) MetadataKeys() []string {
	keys := make([]string, 0, len(r.Metadata))
	for k := range r.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
