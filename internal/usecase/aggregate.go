package usecase

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/paydash/internal/domain"
)

// Reporting categories used by the aggregations.
const (
	reportingCharge = "charge"
	reportingRefund = "refund"
)

// MonthlyGross sums charge amounts per calendar month.
func MonthlyGross(records []domain.ReconciledRecord) []domain.MonthlyAmount {
	return sumByMonth(records,
		func(r *domain.ReconciledRecord) bool { return r.ReportingCategory == reportingCharge },
		func(r *domain.ReconciledRecord) decimal.Decimal { return r.Amount },
	)
}

// MonthlyNet sums net amounts of charges and refunds per calendar month.
func MonthlyNet(records []domain.ReconciledRecord) []domain.MonthlyAmount {
	return sumByMonth(records,
		func(r *domain.ReconciledRecord) bool {
			return r.ReportingCategory == reportingCharge || r.ReportingCategory == reportingRefund
		},
		func(r *domain.ReconciledRecord) decimal.Decimal { return r.Net },
	)
}

// MonthlyPayments counts charges per calendar month.
func MonthlyPayments(records []domain.ReconciledRecord) []domain.MonthlyCount {
	counts := make(map[time.Time]int)

	for i := range records {
		if records[i].ReportingCategory != reportingCharge {
			continue
		}
		counts[domain.MonthOf(records[i].Date)]++
	}

	out := make([]domain.MonthlyCount, 0, len(counts))
	for month, n := range counts {
		out = append(out, domain.MonthlyCount{Month: month, Payments: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month.Before(out[j].Month) })

	return out
}

// CustomerGross sums charge amounts per customer. Charges with no resolved
// name land in a single nil-name bucket, listed after the named customers.
func CustomerGross(records []domain.ReconciledRecord) []domain.CustomerTotal {
	totals := make(map[string]decimal.Decimal)
	unnamed := decimal.Zero
	hasUnnamed := false

	for i := range records {
		r := &records[i]
		if r.ReportingCategory != reportingCharge {
			continue
		}
		if r.Name == nil {
			unnamed = unnamed.Add(r.Amount)
			hasUnnamed = true
			continue
		}
		totals[*r.Name] = totals[*r.Name].Add(r.Amount)
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]domain.CustomerTotal, 0, len(names)+1)
	for _, name := range names {
		n := name
		out = append(out, domain.CustomerTotal{Name: &n, Total: totals[name]})
	}
	if hasUnnamed {
		out = append(out, domain.CustomerTotal{Name: nil, Total: unnamed})
	}

	return out
}

// Summarize derives the scalar summary from the aggregated tables. The
// displayed totals are sums over the tables, never an independent pass over
// the rows, so they always agree with the charts.
func Summarize(gross, net []domain.MonthlyAmount, payments []domain.MonthlyCount) domain.Summary {
	s := domain.Summary{GrossTotal: decimal.Zero, NetTotal: decimal.Zero}

	for _, m := range gross {
		s.GrossTotal = s.GrossTotal.Add(m.Total)
	}
	for _, m := range net {
		s.NetTotal = s.NetTotal.Add(m.Total)
	}
	for _, m := range payments {
		s.PaymentCount += m.Payments
	}

	return s
}

func sumByMonth(records []domain.ReconciledRecord, include func(*domain.ReconciledRecord) bool, value func(*domain.ReconciledRecord) decimal.Decimal) []domain.MonthlyAmount {
	totals := make(map[time.Time]decimal.Decimal)

	for i := range records {
		r := &records[i]
		if !include(r) {
			continue
		}
		month := domain.MonthOf(r.Date)
		totals[month] = totals[month].Add(value(r))
	}

	out := make([]domain.MonthlyAmount, 0, len(totals))
	for month, total := range totals {
		out = append(out, domain.MonthlyAmount{Month: month, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month.Before(out[j].Month) })

	return out
}
