package usecase

import (
	"strings"

	"github.com/google/uuid"
)

const (
	keyPrefix       = "CGPT"
	maxKeyAttempts  = 3
	defaultPageSize = 50
)

// generateKey returns an access key of the form CGPT-XXXX-XXXX.
func generateKey() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return keyPrefix + "-" + raw[:4] + "-" + raw[4:8]
}

// coalesce returns newVal when it is not blank, otherwise fallback.
func coalesce(newVal, fallback string) string {
	if v := strings.TrimSpace(newVal); v != "" {
		return v
	}
	return fallback
}
