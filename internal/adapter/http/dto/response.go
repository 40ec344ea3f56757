package dto

import (
	"time"

	"github.com/iho/paydash/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// TransactionResponse represents one reconciled ledger row in API responses.
type TransactionResponse struct {
	ID                string          `json:"id"`
	Type              string          `json:"type"`
	ReportingCategory string          `json:"reporting_category"`
	Status            string          `json:"status"`
	Description       string          `json:"description,omitempty"`
	Name              *string         `json:"name"`
	Amount            decimal.Decimal `json:"amount"`
	Fee               decimal.Decimal `json:"fee"`
	Net               decimal.Decimal `json:"net"`
	Date              string          `json:"date"`
}

// TransactionFromDomain converts a reconciled record to a response.
func TransactionFromDomain(r domain.ReconciledRecord) TransactionResponse {
	return TransactionResponse{
		ID:                r.ID,
		Type:              r.Type,
		ReportingCategory: r.ReportingCategory,
		Status:            r.Status,
		Description:       r.Description,
		Name:              r.Name,
		Amount:            r.Amount,
		Fee:               r.Fee,
		Net:               r.Net,
		Date:              r.Date.Format(dateLayout),
	}
}

// TransactionsFromDomain converts reconciled records to responses.
func TransactionsFromDomain(records []domain.ReconciledRecord) []TransactionResponse {
	result := make([]TransactionResponse, len(records))
	for i, r := range records {
		result[i] = TransactionFromDomain(r)
	}
	return result
}

// MonthlyAmountResponse is one row of a month-keyed sum table.
type MonthlyAmountResponse struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// MonthlyCountResponse is one row of a month-keyed count table.
type MonthlyCountResponse struct {
	Month    string `json:"month"`
	Payments int    `json:"payments"`
}

// CustomerTotalResponse is one row of the per-customer gross table.
type CustomerTotalResponse struct {
	Name  *string         `json:"name"`
	Total decimal.Decimal `json:"total"`
}

// SummaryResponse holds the three headline numbers of a report.
type SummaryResponse struct {
	GrossTotal   decimal.Decimal `json:"gross_total"`
	NetTotal     decimal.Decimal `json:"net_total"`
	PaymentCount int             `json:"payment_count"`
}

// ReportResponse represents a full report in API responses.
type ReportResponse struct {
	Start           string                  `json:"start"`
	End             string                  `json:"end"`
	Category        string                  `json:"category"`
	Customer        string                  `json:"customer,omitempty"`
	Summary         SummaryResponse         `json:"summary"`
	MonthlyGross    []MonthlyAmountResponse `json:"monthly_gross"`
	MonthlyNet      []MonthlyAmountResponse `json:"monthly_net"`
	MonthlyPayments []MonthlyCountResponse  `json:"monthly_payments"`
	CustomerTotals  []CustomerTotalResponse `json:"customer_totals"`
	Transactions    []TransactionResponse   `json:"transactions"`
}

// ReportFromDomain converts a domain report to a response.
func ReportFromDomain(r *domain.Report) *ReportResponse {
	return &ReportResponse{
		Start:           r.Window.Start.Format(dateLayout),
		End:             r.Window.End.Format(dateLayout),
		Category:        string(r.Category),
		Customer:        r.Customer,
		Summary: SummaryResponse{
			GrossTotal:   r.Summary.GrossTotal,
			NetTotal:     r.Summary.NetTotal,
			PaymentCount: r.Summary.PaymentCount,
		},
		MonthlyGross:    monthlyAmounts(r.MonthlyGross),
		MonthlyNet:      monthlyAmounts(r.MonthlyNet),
		MonthlyPayments: monthlyCounts(r.MonthlyPayments),
		CustomerTotals:  customerTotals(r.CustomerTotals),
		Transactions:    TransactionsFromDomain(r.Transactions),
	}
}

func monthlyAmounts(rows []domain.MonthlyAmount) []MonthlyAmountResponse {
	result := make([]MonthlyAmountResponse, len(rows))
	for i, row := range rows {
		result[i] = MonthlyAmountResponse{
			Month: row.Month.Format(monthLayout),
			Total: row.Total,
		}
	}
	return result
}

func monthlyCounts(rows []domain.MonthlyCount) []MonthlyCountResponse {
	result := make([]MonthlyCountResponse, len(rows))
	for i, row := range rows {
		result[i] = MonthlyCountResponse{
			Month:    row.Month.Format(monthLayout),
			Payments: row.Payments,
		}
	}
	return result
}

func customerTotals(rows []domain.CustomerTotal) []CustomerTotalResponse {
	result := make([]CustomerTotalResponse, len(rows))
	for i, row := range rows {
		result[i] = CustomerTotalResponse{
			Name:  row.Name,
			Total: row.Total,
		}
	}
	return result
}

// CustomersResponse represents the customer selector list.
type CustomersResponse struct {
	Customers []string `json:"customers"`
	Total     int      `json:"total"`
}

// RefreshResponse acknowledges a cache refresh.
type RefreshResponse struct {
	Status      string    `json:"status"`
	RefreshedAt time.Time `json:"refreshed_at"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
