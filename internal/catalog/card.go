package catalog

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Card is the subset of a catalog record the analysis reads. The raw JSON
// kept in the cache carries every other field untouched.
type Card struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"` // frame category: "Effect Monster", "Spell Card", ...
	Race      string `json:"race"` // monster type: "Dragon", "Spellcaster", ...
	Attribute string `json:"attribute"`
	Atk       *int   `json:"atk"`
	Def       *int   `json:"def"`
	Level     *int   `json:"level"`
}

// Decode parses a raw catalog record. The name and type keys are required;
// everything else is optional.
func Decode(raw json.RawMessage) (*Card, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("parsing card record: %w", err)
	}
	for _, key := range []string{"name", "type"} {
		if _, ok := fields[key]; !ok {
			return nil, fmt.Errorf("card record missing '%s' field", key)
		}
	}

	var c Card
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parsing card record: %w", err)
	}
	return &c, nil
}

// IsMonster reports whether the record's category names a monster
func (c *Card) IsMonster() bool {
	return strings.Contains(c.Type, "Monster")
}
