package utils

import "strings"

// SplitSkills turns "go, mongo ,go" into ["go","mongo"].
func SplitSkills(raw string) []string {
	out := []string{}
	seen := map[string]struct{}{}
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
