package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/paydash/internal/domain"
	"github.com/iho/paydash/internal/usecase"
)

// The three-entry scenario: a January charge of 10.00, a January refund of
// -2.00 and a February payout of 8.00, viewed through a January window.
func januaryScenario(t *testing.T) []domain.ReconciledRecord {
	t.Helper()

	entries := []domain.LedgerEntry{
		{ID: "txn_charge", Type: "charge", ReportingCategory: "charge",
			AmountMinor: 1000, NetMinor: 1000, CreatedUnix: 1609857000}, // 2021-01-05
		{ID: "txn_refund", Type: "refund", ReportingCategory: "refund",
			AmountMinor: -200, NetMinor: -200, CreatedUnix: 1610289000}, // 2021-01-10
		{ID: "txn_payout", Type: "payout", ReportingCategory: "payout",
			AmountMinor: 800, NetMinor: 800, CreatedUnix: 1612137600}, // 2021-02-01
	}

	w, err := domain.NewWindow(
		time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2021, 1, 31, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records := usecase.Reconcile(entries, nil)
	return usecase.Filter(records, w, domain.CategoryAll, usecase.CustomerAll)
}

func TestAggregate_JanuaryScenario(t *testing.T) {
	working := januaryScenario(t)

	// Payout is excluded by the date window.
	if len(working) != 2 {
		t.Fatalf("expected 2 records in the window, got %d", len(working))
	}

	jan := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

	gross := usecase.MonthlyGross(working)
	if len(gross) != 1 || !gross[0].Month.Equal(jan) {
		t.Fatalf("expected one gross month 2021-01, got %+v", gross)
	}
	if gross[0].Total.StringFixed(2) != "10.00" {
		t.Errorf("expected gross 10.00, got %s", gross[0].Total)
	}

	net := usecase.MonthlyNet(working)
	if len(net) != 1 || net[0].Total.StringFixed(2) != "8.00" {
		t.Fatalf("expected net {2021-01: 8.00}, got %+v", net)
	}

	payments := usecase.MonthlyPayments(working)
	if len(payments) != 1 || payments[0].Payments != 1 {
		t.Fatalf("expected payment count {2021-01: 1}, got %+v", payments)
	}
}

func TestSummarize_EqualsTableSums(t *testing.T) {
	working := januaryScenario(t)

	gross := usecase.MonthlyGross(working)
	net := usecase.MonthlyNet(working)
	payments := usecase.MonthlyPayments(working)

	summary := usecase.Summarize(gross, net, payments)

	wantGross := decimal.Zero
	for _, m := range gross {
		wantGross = wantGross.Add(m.Total)
	}
	if !summary.GrossTotal.Equal(wantGross) {
		t.Errorf("grand total %s does not equal sum of monthly gross %s", summary.GrossTotal, wantGross)
	}
	if summary.NetTotal.StringFixed(2) != "8.00" {
		t.Errorf("expected net total 8.00, got %s", summary.NetTotal)
	}
	if summary.PaymentCount != 1 {
		t.Errorf("expected payment count 1, got %d", summary.PaymentCount)
	}
}

func TestMonthlyGross_MultipleMonthsSorted(t *testing.T) {
	records := []domain.ReconciledRecord{
		{ID: "feb", ReportingCategory: "charge", Amount: decimal.New(500, -2),
			Date: time.Date(2021, 2, 10, 0, 0, 0, 0, time.UTC)},
		{ID: "jan1", ReportingCategory: "charge", Amount: decimal.New(1000, -2),
			Date: time.Date(2021, 1, 5, 0, 0, 0, 0, time.UTC)},
		{ID: "jan2", ReportingCategory: "charge", Amount: decimal.New(250, -2),
			Date: time.Date(2021, 1, 20, 0, 0, 0, 0, time.UTC)},
		{ID: "fee", ReportingCategory: "fee", Amount: decimal.New(9999, -2),
			Date: time.Date(2021, 1, 6, 0, 0, 0, 0, time.UTC)},
	}

	gross := usecase.MonthlyGross(records)

	if len(gross) != 2 {
		t.Fatalf("expected 2 months, got %d", len(gross))
	}
	if !gross[0].Month.Before(gross[1].Month) {
		t.Error("expected months in ascending order")
	}
	if gross[0].Total.StringFixed(2) != "12.50" {
		t.Errorf("expected January total 12.50, got %s", gross[0].Total)
	}
	if gross[1].Total.StringFixed(2) != "5.00" {
		t.Errorf("expected February total 5.00, got %s", gross[1].Total)
	}
}

func TestCustomerGross(t *testing.T) {
	records := []domain.ReconciledRecord{
		{ID: "1", ReportingCategory: "charge", Name: strPtr("Beth"), Amount: decimal.New(1000, -2),
			Date: time.Date(2021, 1, 5, 0, 0, 0, 0, time.UTC)},
		{ID: "2", ReportingCategory: "charge", Name: strPtr("Amy"), Amount: decimal.New(2000, -2),
			Date: time.Date(2021, 1, 6, 0, 0, 0, 0, time.UTC)},
		{ID: "3", ReportingCategory: "charge", Name: strPtr("Beth"), Amount: decimal.New(500, -2),
			Date: time.Date(2021, 1, 7, 0, 0, 0, 0, time.UTC)},
		{ID: "4", ReportingCategory: "charge", Name: nil, Amount: decimal.New(300, -2),
			Date: time.Date(2021, 1, 8, 0, 0, 0, 0, time.UTC)},
		{ID: "5", ReportingCategory: "payout", Name: nil, Amount: decimal.New(9999, -2),
			Date: time.Date(2021, 1, 9, 0, 0, 0, 0, time.UTC)},
	}

	totals := usecase.CustomerGross(records)

	if len(totals) != 3 {
		t.Fatalf("expected 3 buckets (Amy, Beth, unnamed), got %d", len(totals))
	}

	if totals[0].Name == nil || *totals[0].Name != "Amy" || totals[0].Total.StringFixed(2) != "20.00" {
		t.Errorf("expected Amy 20.00 first, got %+v", totals[0])
	}
	if totals[1].Name == nil || *totals[1].Name != "Beth" || totals[1].Total.StringFixed(2) != "15.00" {
		t.Errorf("expected Beth 15.00, got %+v", totals[1])
	}
	if totals[2].Name != nil || totals[2].Total.StringFixed(2) != "3.00" {
		t.Errorf("expected unnamed bucket 3.00 last, got %+v", totals[2])
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	if got := usecase.MonthlyGross(nil); len(got) != 0 {
		t.Errorf("expected empty gross table, got %+v", got)
	}

	summary := usecase.Summarize(nil, nil, nil)
	if !summary.GrossTotal.IsZero() || !summary.NetTotal.IsZero() || summary.PaymentCount != 0 {
		t.Errorf("expected zero-valued summary, got %+v", summary)
	}
}
