package secret

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"

	"github.com/iho/paydash/internal/domain"
)

// GCSSource reads the credential from an object in a Google Cloud
// Storage bucket. The client authenticates with application default
// credentials.
type GCSSource struct {
	bucket string
	object string
}

// NewGCSSource creates a new GCSSource.
func NewGCSSource(bucket, object string) *GCSSource {
	return &GCSSource{bucket: bucket, object: object}
}

// Credential downloads the credential object and returns its contents,
// trimmed of surrounding whitespace.
func (s *GCSSource) Credential(ctx context.Context) (string, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create storage client: %w", err)
	}
	defer client.Close()

	reader, err := client.Bucket(s.bucket).Object(s.object).NewReader(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to open object %s/%s: %w", s.bucket, s.object, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read object %s/%s: %w", s.bucket, s.object, err)
	}

	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", domain.ErrCredentialMissing
	}
	return key, nil
}
