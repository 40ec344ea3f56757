package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is a single balance transaction as reported by the payment
// processor. Monetary fields are in minor currency units (cents) until the
// entry is reconciled.
type LedgerEntry struct {
	ID                string
	Object            string
	AmountMinor       int64
	FeeMinor          int64
	NetMinor          int64
	ReportingCategory string
	Status            string
	Description       string
	Type              string
	CreatedUnix       int64
}

// ChargeIdentity is the customer-identifying slice of a charge record: the
// ledger transaction it settled into plus billing name and receipt email.
// Name and email may be absent. Multiple charges can share an email.
type ChargeIdentity struct {
	LedgerTransactionID string
	BillingName         *string
	Email               *string
}

// ResolvedIdentity maps an email to its canonical display name, chosen as
// the first non-nil billing name in arrival order among that email's charges.
type ResolvedIdentity struct {
	Email         string
	CanonicalName *string
}

// ReconciledRecord is one ledger entry with customer identity attached and
// monetary fields converted from minor units to decimal currency amounts.
type ReconciledRecord struct {
	ID                string
	Type              string
	ReportingCategory string
	Status            string
	Description       string
	Name              *string
	Amount            decimal.Decimal
	Fee               decimal.Decimal
	Net               decimal.Decimal
	Date              time.Time
}

// Dataset is a fully reconciled session dataset. It is the unit of caching:
// built once per credential, filtered many times.
type Dataset struct {
	SnapshotID string
	FetchedAt  time.Time
	Records    []ReconciledRecord
}

// MinorToAmount converts an integer amount in minor currency units to a
// decimal currency amount. The conversion is an exact division by 100, so
// every result carries exactly two decimal places.
func MinorToAmount(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}

// DateOfUnix converts a Unix timestamp to its UTC calendar date
// (midnight UTC of the same day).
func DateOfUnix(unix int64) time.Time {
	t := time.Unix(unix, 0).UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthOf truncates a date to the first day of its month.
func MonthOf(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Reconcile attaches a resolved customer name to the entry and normalizes
// its monetary and date fields.
func (e *LedgerEntry) Reconcile(name *string) ReconciledRecord {
	return ReconciledRecord{
		ID:                e.ID,
		Type:              e.Type,
		ReportingCategory: e.ReportingCategory,
		Status:            e.Status,
		Description:       e.Description,
		Name:              name,
		Amount:            MinorToAmount(e.AmountMinor),
		Fee:               MinorToAmount(e.FeeMinor),
		Net:               MinorToAmount(e.NetMinor),
		Date:              DateOfUnix(e.CreatedUnix),
	}
}
