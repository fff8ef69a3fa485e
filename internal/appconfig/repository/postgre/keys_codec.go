package postgre

import (
	"encoding/json"
	"fmt"

	"central-gpt/internal/appconfig"
)

// decodeKeys reads gemini_keys stored either as a JSON array of strings or,
// for rows written by older clients, as a single comma/newline separated string.
func decodeKeys(raw []byte) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return []string{}, nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return appconfig.NormalizeKeys(list), nil
	}

	var legacy string
	if err := json.Unmarshal(raw, &legacy); err == nil {
		return appconfig.SplitLegacyKeys(legacy), nil
	}

	return []string{}, fmt.Errorf("unsupported gemini_keys value %.32q", raw)
}

func encodeKeys(keys []string) (string, error) {
	keys = appconfig.NormalizeKeys(keys)
	b, err := json.Marshal(keys)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
