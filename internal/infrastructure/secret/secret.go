package secret

import (
	"context"
	"strings"

	"github.com/iho/paydash/internal/domain"
)

// StaticSource supplies a credential provided directly through
// configuration or user entry.
type StaticSource struct {
	key string
}

// NewStaticSource creates a new StaticSource.
func NewStaticSource(key string) *StaticSource {
	return &StaticSource{key: key}
}

// Credential returns the configured credential, trimmed.
func (s *StaticSource) Credential(_ context.Context) (string, error) {
	key := strings.TrimSpace(s.key)
	if key == "" {
		return "", domain.ErrCredentialMissing
	}
	return key, nil
}
