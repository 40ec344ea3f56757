package usecase

import (
	"context"
	"time"

	"github.com/iho/paydash/internal/domain"
)

// TransactionSource produces every ledger entry across all pages of the
// upstream payment source, in upstream order.
type TransactionSource interface {
	ListTransactions(ctx context.Context, apiKey string) ([]domain.LedgerEntry, error)
}

// ChargeSource produces one charge identity per charge record, in upstream
// order. Charges not yet linked to a settled ledger transaction are omitted.
type ChargeSource interface {
	ListCharges(ctx context.Context, apiKey string) ([]domain.ChargeIdentity, error)
}

// CredentialSource supplies the payment source API credential. The value is
// read-only for the whole session.
type CredentialSource interface {
	Credential(ctx context.Context) (string, error)
}

// Cache defines caching operations. Get returns (nil, nil) on a miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// PipelineMetrics records pipeline observations.
type PipelineMetrics interface {
	ObserveBuild(duration time.Duration, result string)
	CacheHit()
	CacheMiss()
	DatasetSize(records int)
}
