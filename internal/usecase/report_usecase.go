package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/iho/paydash/internal/domain"
)

// ReportUseCase runs the full reporting pipeline: fetch both upstream
// sequences, resolve identities, reconcile, then filter and aggregate. The
// reconciled dataset is cached keyed by the credential, so filter changes
// re-apply predicates to the cached dataset instead of re-invoking the
// upstream source.
type ReportUseCase struct {
	transactions TransactionSource
	charges      ChargeSource
	credentials  CredentialSource
	cache        Cache
	idGen        IDGenerator
	metrics      PipelineMetrics
	cacheTTL     time.Duration
}

// NewReportUseCase creates a new ReportUseCase. A nil metrics recorder
// disables instrumentation.
func NewReportUseCase(
	transactions TransactionSource,
	charges ChargeSource,
	credentials CredentialSource,
	cache Cache,
	idGen IDGenerator,
	metrics PipelineMetrics,
	cacheTTL time.Duration,
) *ReportUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &ReportUseCase{
		transactions: transactions,
		charges:      charges,
		credentials:  credentials,
		cache:        cache,
		idGen:        idGen,
		metrics:      metrics,
		cacheTTL:     cacheTTL,
	}
}

// ReportInput represents one filter selection.
type ReportInput struct {
	Window   domain.Window
	Category domain.Category
	Customer string
}

// BuildReport produces the report for one filter selection. Either a full
// reconciled dataset backs the report or an error is returned; no partially
// joined state is ever exposed.
func (uc *ReportUseCase) BuildReport(ctx context.Context, input ReportInput) (*domain.Report, error) {
	start := time.Now()

	dataset, err := uc.loadDataset(ctx)
	if err != nil {
		uc.metrics.ObserveBuild(time.Since(start), "error")
		return nil, err
	}

	working := Filter(dataset.Records, input.Window, input.Category, input.Customer)

	gross := MonthlyGross(working)
	net := MonthlyNet(working)
	payments := MonthlyPayments(working)

	report := &domain.Report{
		Window:          input.Window,
		Category:        input.Category,
		Customer:        input.Customer,
		Summary:         Summarize(gross, net, payments),
		MonthlyGross:    gross,
		MonthlyNet:      net,
		MonthlyPayments: payments,
		CustomerTotals:  CustomerGross(working),
		Transactions:    working,
	}

	uc.metrics.ObserveBuild(time.Since(start), "ok")
	return report, nil
}

// ListCustomers returns the distinct resolved customer names for the
// customer selector.
func (uc *ReportUseCase) ListCustomers(ctx context.Context) ([]string, error) {
	dataset, err := uc.loadDataset(ctx)
	if err != nil {
		return nil, err
	}
	return CustomerNames(dataset.Records), nil
}

// RefreshDataset drops the cached dataset for the session credential, so
// the next report re-fetches from the upstream source.
func (uc *ReportUseCase) RefreshDataset(ctx context.Context) error {
	key, _, err := uc.sessionKey(ctx)
	if err != nil {
		return err
	}
	return uc.cache.Delete(ctx, key)
}

// loadDataset returns the cached reconciled dataset for the session
// credential, fetching and reconciling from the upstream source on a miss.
func (uc *ReportUseCase) loadDataset(ctx context.Context) (*domain.Dataset, error) {
	key, apiKey, err := uc.sessionKey(ctx)
	if err != nil {
		return nil, err
	}

	// A cache read failure is treated as a miss: the source of truth is
	// the upstream API, not the cache.
	if data, err := uc.cache.Get(ctx, key); err == nil && data != nil {
		var dataset domain.Dataset
		if err := json.Unmarshal(data, &dataset); err == nil {
			uc.metrics.CacheHit()
			return &dataset, nil
		}
	}
	uc.metrics.CacheMiss()

	entries, err := uc.transactions.ListTransactions(ctx, apiKey)
	if err != nil {
		return nil, fmt.Errorf("fetch balance transactions: %w", err)
	}

	charges, err := uc.charges.ListCharges(ctx, apiKey)
	if err != nil {
		return nil, fmt.Errorf("fetch charges: %w", err)
	}

	dataset := &domain.Dataset{
		SnapshotID: uc.idGen.Generate(),
		FetchedAt:  time.Now().UTC(),
		Records:    Reconcile(entries, charges),
	}
	uc.metrics.DatasetSize(len(dataset.Records))

	// Cache write failures never fail the pipeline.
	if data, err := json.Marshal(dataset); err == nil {
		_ = uc.cache.Set(ctx, key, data, uc.cacheTTL)
	}

	return dataset, nil
}

// sessionKey derives the content-addressed cache key from the credential.
// Changing the credential changes the key, which is the cache invalidation.
func (uc *ReportUseCase) sessionKey(ctx context.Context) (key, apiKey string, err error) {
	apiKey, err = uc.credentials.Credential(ctx)
	if err != nil {
		return "", "", err
	}

	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return "", "", domain.ErrCredentialMissing
	}

	sum := sha256.Sum256([]byte(apiKey))
	return hex.EncodeToString(sum[:]), apiKey, nil
}

type nopMetrics struct{}

func (nopMetrics) ObserveBuild(time.Duration, string) {}
func (nopMetrics) CacheHit()                          {}
func (nopMetrics) CacheMiss()                         {}
func (nopMetrics) DatasetSize(int)                    {}
