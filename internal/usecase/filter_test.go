package usecase_test

import (
	"testing"
	"time"

	"github.com/iho/paydash/internal/domain"
	"github.com/iho/paydash/internal/usecase"
)

func allTimeWindow(t *testing.T) domain.Window {
	t.Helper()

	w, err := domain.NewWindow(
		time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return w
}

func TestFilter_IdentityFiltersPreserveEverything(t *testing.T) {
	entries := []domain.LedgerEntry{
		{ID: "txn_1", Type: "charge", ReportingCategory: "charge", CreatedUnix: 1609857000},
		{ID: "txn_2", Type: "refund", ReportingCategory: "refund", CreatedUnix: 1610289000},
		{ID: "txn_3", Type: "payout", ReportingCategory: "payout", CreatedUnix: 1612137600},
		{ID: "txn_4", Type: "stripe_fee", ReportingCategory: "fee", CreatedUnix: 1612137600},
	}

	records := usecase.Reconcile(entries, nil)
	filtered := usecase.Filter(records, allTimeWindow(t), domain.CategoryAll, usecase.CustomerAll)

	if len(filtered) != len(entries) {
		t.Fatalf("identity filters must preserve cardinality: expected %d, got %d", len(entries), len(filtered))
	}

	seen := make(map[string]int)
	for _, r := range filtered {
		seen[r.ID]++
	}
	for _, e := range entries {
		if seen[e.ID] != 1 {
			t.Errorf("expected %s exactly once, got %d", e.ID, seen[e.ID])
		}
	}
}

func TestFilter_DateWindow(t *testing.T) {
	records := []domain.ReconciledRecord{
		{ID: "in", Type: "charge", Date: time.Date(2021, 1, 15, 0, 0, 0, 0, time.UTC)},
		{ID: "edge", Type: "charge", Date: time.Date(2021, 1, 31, 0, 0, 0, 0, time.UTC)},
		{ID: "out", Type: "charge", Date: time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC)},
	}

	w, err := domain.NewWindow(
		time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2021, 1, 31, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	filtered := usecase.Filter(records, w, domain.CategoryAll, usecase.CustomerAll)

	if len(filtered) != 2 {
		t.Fatalf("expected 2 records inside the window, got %d", len(filtered))
	}
	if filtered[0].ID != "in" || filtered[1].ID != "edge" {
		t.Errorf("expected [in edge] in input order, got [%s %s]", filtered[0].ID, filtered[1].ID)
	}
}

func TestFilter_Category(t *testing.T) {
	records := []domain.ReconciledRecord{
		{ID: "c", Type: "charge", Date: time.Date(2021, 1, 5, 0, 0, 0, 0, time.UTC)},
		{ID: "p", Type: "payout", Date: time.Date(2021, 1, 6, 0, 0, 0, 0, time.UTC)},
		{ID: "r", Type: "refund", Date: time.Date(2021, 1, 7, 0, 0, 0, 0, time.UTC)},
	}

	filtered := usecase.Filter(records, allTimeWindow(t), domain.CategoryPayout, usecase.CustomerAll)

	if len(filtered) != 1 || filtered[0].ID != "p" {
		t.Fatalf("expected only the payout, got %+v", filtered)
	}
}

func TestFilter_CustomerAcrossResolvedNames(t *testing.T) {
	// Two charges, same email: one named "A B", one unnamed. After
	// resolution both display "A B", so the customer filter returns both.
	entries := []domain.LedgerEntry{
		{ID: "txn_1", Type: "charge", ReportingCategory: "charge", CreatedUnix: 1609857000},
		{ID: "txn_2", Type: "charge", ReportingCategory: "charge", CreatedUnix: 1610289000},
	}
	charges := []domain.ChargeIdentity{
		{LedgerTransactionID: "txn_1", BillingName: strPtr("A B"), Email: strPtr("ab@x.com")},
		{LedgerTransactionID: "txn_2", BillingName: nil, Email: strPtr("ab@x.com")},
	}

	records := usecase.Reconcile(entries, charges)
	filtered := usecase.Filter(records, allTimeWindow(t), domain.CategoryAll, "A B")

	if len(filtered) != 2 {
		t.Fatalf("expected both charges for customer A B, got %d", len(filtered))
	}
}

func TestFilter_CustomerNeverMatchesNilName(t *testing.T) {
	records := []domain.ReconciledRecord{
		{ID: "anon", Type: "charge", Date: time.Date(2021, 1, 5, 0, 0, 0, 0, time.UTC), Name: nil},
	}

	filtered := usecase.Filter(records, allTimeWindow(t), domain.CategoryAll, "A B")
	if len(filtered) != 0 {
		t.Fatalf("nil-name records must not match a customer filter, got %d", len(filtered))
	}
}

func TestCustomerNames(t *testing.T) {
	records := []domain.ReconciledRecord{
		{ID: "1", Name: strPtr("Zed")},
		{ID: "2", Name: strPtr("Amy")},
		{ID: "3", Name: strPtr("Zed")},
		{ID: "4", Name: nil},
	}

	names := usecase.CustomerNames(records)

	if len(names) != 2 || names[0] != "Amy" || names[1] != "Zed" {
		t.Fatalf("expected sorted distinct [Amy Zed], got %v", names)
	}
}
