package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/iho/paydash/internal/adapter/http/dto"
	"github.com/iho/paydash/internal/domain"
	"github.com/iho/paydash/internal/usecase"
)

const dateLayout = "2006-01-02"

// ReportService defines the behavior needed by ReportHandler.
type ReportService interface {
	BuildReport(ctx context.Context, input usecase.ReportInput) (*domain.Report, error)
	ListCustomers(ctx context.Context) ([]string, error)
	RefreshDataset(ctx context.Context) error
}

// ReportHandler handles report-related HTTP requests.
type ReportHandler struct {
	reportUC ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportUC ReportService) *ReportHandler {
	return &ReportHandler{reportUC: reportUC}
}

// Get builds the report for the requested filter selection.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindow(r)
	if err != nil {
		writeError(w, mapDomainError(err), "invalid date range", err.Error())
		return
	}

	category, err := domain.ParseCategory(r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, mapDomainError(err), "invalid category", err.Error())
		return
	}

	report, err := h.reportUC.BuildReport(r.Context(), usecase.ReportInput{
		Window:   window,
		Category: category,
		Customer: r.URL.Query().Get("customer"),
	})
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to build report", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ReportFromDomain(report))
}

// ListCustomers returns distinct resolved customer names.
func (h *ReportHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.reportUC.ListCustomers(r.Context())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list customers", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.CustomersResponse{
		Customers: customers,
		Total:     len(customers),
	})
}

// Refresh drops the cached dataset for the session credential.
func (h *ReportHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.reportUC.RefreshDataset(r.Context()); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to refresh dataset", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.RefreshResponse{
		Status:      "refreshed",
		RefreshedAt: time.Now().UTC(),
	})
}

// parseWindow reads the start/end query parameters. A missing start defaults
// to the Unix epoch, a missing end to the current UTC date.
func parseWindow(r *http.Request) (domain.Window, error) {
	start := time.Unix(0, 0).UTC()
	end := time.Now().UTC()

	if raw := r.URL.Query().Get("start"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return domain.Window{}, domain.ErrInvalidDateRange
		}
		start = parsed
	}
	if raw := r.URL.Query().Get("end"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return domain.Window{}, domain.ErrInvalidDateRange
		}
		end = parsed
	}

	return domain.NewWindow(start, end)
}
