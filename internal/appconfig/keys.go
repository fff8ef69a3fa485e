package appconfig

import "strings"

// NormalizeKeys trims every entry and drops blanks and duplicates, keeping order.
func NormalizeKeys(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// SplitLegacyKeys parses the old comma or newline separated key string.
func SplitLegacyKeys(s string) []string {
	return NormalizeKeys(strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '\n'
	}))
}

// MaskKey hides all but the edges of key.
func MaskKey(key string) string {
	if len(key) <= 10 {
		return strings.Repeat("*", len(key))
	}
	return key[:6] + "..." + key[len(key)-4:]
}
