package directory

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// ParseMemberships decodes the stored team-membership column. The legacy
// system serialized memberships as free text and evaluated it at runtime;
// here the only accepted shape is a JSON array of team names, decoded once
// at load time, and anything else is an explicit error.
func ParseMemberships(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		return nil, fmt.Errorf("memberships must be a JSON array of team names: %w", err)
	}

	seen := make(map[string]struct{}, len(names))
	teams := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		teams = append(teams, name)
	}
	sort.Strings(teams)
	return teams, nil
}

// EncodeMemberships is the inverse, used on writes.
func EncodeMemberships(teams []string) ([]byte, error) {
	if teams == nil {
		teams = []string{}
	}
	return json.Marshal(teams)
}
