package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ============================================================================
// ALIAS FILES — Per-dataset candidate spellings as data
// ============================================================================
// Datasets exported from other systems spell columns their own way.
// Rather than editing the default candidate table, consumers ship a small
// YAML file keyed by role name:
//
//	city:
//	  - Zone
//	  - delivery_zone
//	time_taken:
//	  - duration_minutes
//
// Alias spellings take priority over the built-in candidates.
// ============================================================================

// ParseAliases parses a YAML alias document into a role → spellings map.
// Unknown role keys are rejected so typos surface early.
func ParseAliases(data []byte) (map[Role][]string, error) {
	raw := make(map[string][]string)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse alias file: %w", err)
	}

	known := make(map[Role]bool, len(AllRoles))
	for _, r := range AllRoles {
		known[r] = true
	}

	aliases := make(map[Role][]string, len(raw))
	for key, spellings := range raw {
		role := Role(key)
		if !known[role] {
			return nil, fmt.Errorf("unknown role %q in alias file", key)
		}
		if len(spellings) == 0 {
			continue
		}
		aliases[role] = spellings
	}
	return aliases, nil
}
