package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyAmount is one row of a month-keyed sum table. Month is the first
// day of the month, UTC.
type MonthlyAmount struct {
	Month time.Time
	Total decimal.Decimal
}

// MonthlyCount is one row of a month-keyed count table.
type MonthlyCount struct {
	Month    time.Time
	Payments int
}

// CustomerTotal is one row of the per-customer gross table. A nil Name is
// the bucket for ledger entries with no resolved customer.
type CustomerTotal struct {
	Name  *string
	Total decimal.Decimal
}

// Summary holds the three scalar numbers shown above the charts. Each is a
// sum over its aggregated table, never recomputed independently.
type Summary struct {
	GrossTotal   decimal.Decimal
	NetTotal     decimal.Decimal
	PaymentCount int
}

// Report is the full output for one filter selection: scalar summary,
// the three time-series/categorical tables and the row-level view.
type Report struct {
	Window          Window
	Category        Category
	Customer        string
	Summary         Summary
	MonthlyGross    []MonthlyAmount
	MonthlyNet      []MonthlyAmount
	MonthlyPayments []MonthlyCount
	CustomerTotals  []CustomerTotal
	Transactions    []ReconciledRecord
}
