package secret_test

import (
	"context"
	"errors"
	"testing"

	"github.com/iho/paydash/internal/domain"
	"github.com/iho/paydash/internal/infrastructure/secret"
)

func TestStaticSourceCredential(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		want    string
		wantErr error
	}{
		{name: "plain key", key: "sk_test_123", want: "sk_test_123"},
		{name: "trims whitespace", key: "  sk_test_123\n", want: "sk_test_123"},
		{name: "empty", key: "", wantErr: domain.ErrCredentialMissing},
		{name: "whitespace only", key: "   \n\t", wantErr: domain.ErrCredentialMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := secret.NewStaticSource(tt.key)

			got, err := src.Credential(context.Background())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected credential %q, got %q", tt.want, got)
			}
		})
	}
}
