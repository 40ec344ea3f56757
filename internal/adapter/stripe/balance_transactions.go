package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/iho/paydash/internal/domain"
)

// balanceTransaction is the wire shape of one ledger entry. Pointer fields
// distinguish absent from zero.
type balanceTransaction struct {
	ID                *string `json:"id"`
	Object            *string `json:"object"`
	Amount            *int64  `json:"amount"`
	Description       *string `json:"description"`
	Fee               *int64  `json:"fee"`
	Net               *int64  `json:"net"`
	ReportingCategory *string `json:"reporting_category"`
	Status            *string `json:"status"`
	Type              *string `json:"type"`
	Created           *int64  `json:"created"`
}

// ListTransactions fetches every balance transaction across all pages.
// A record missing any required field aborts the whole fetch: partial
// financial totals are worse than no totals.
func (c *Client) ListTransactions(ctx context.Context, apiKey string) ([]domain.LedgerEntry, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(c.pageLimit))

	var entries []domain.LedgerEntry

	for {
		var envelope listEnvelope
		if err := c.getPage(ctx, apiKey, "/v1/balance_transactions", query, &envelope); err != nil {
			return nil, err
		}

		var page []balanceTransaction
		if err := json.Unmarshal(envelope.Data, &page); err != nil {
			return nil, fmt.Errorf("%w: decode balance transactions: %v", domain.ErrSourceUnavailable, err)
		}

		for i := range page {
			entry, err := page[i].toDomain()
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
		}

		if !envelope.HasMore || len(page) == 0 {
			return entries, nil
		}

		last := page[len(page)-1]
		if last.ID == nil {
			return nil, missingField("balance transaction", "", "id")
		}
		query.Set("starting_after", *last.ID)
	}
}

func (t *balanceTransaction) toDomain() (domain.LedgerEntry, error) {
	var id string
	if t.ID != nil {
		id = *t.ID
	}

	var entry domain.LedgerEntry
	var err error

	if entry.ID, err = requiredString(t.ID, "balance transaction", id, "id"); err != nil {
		return domain.LedgerEntry{}, err
	}
	if entry.Object, err = requiredString(t.Object, "balance transaction", id, "object"); err != nil {
		return domain.LedgerEntry{}, err
	}
	if entry.AmountMinor, err = requiredInt(t.Amount, "balance transaction", id, "amount"); err != nil {
		return domain.LedgerEntry{}, err
	}
	if entry.FeeMinor, err = requiredInt(t.Fee, "balance transaction", id, "fee"); err != nil {
		return domain.LedgerEntry{}, err
	}
	if entry.NetMinor, err = requiredInt(t.Net, "balance transaction", id, "net"); err != nil {
		return domain.LedgerEntry{}, err
	}
	if entry.ReportingCategory, err = requiredString(t.ReportingCategory, "balance transaction", id, "reporting_category"); err != nil {
		return domain.LedgerEntry{}, err
	}
	if entry.Status, err = requiredString(t.Status, "balance transaction", id, "status"); err != nil {
		return domain.LedgerEntry{}, err
	}
	if entry.Type, err = requiredString(t.Type, "balance transaction", id, "type"); err != nil {
		return domain.LedgerEntry{}, err
	}
	if entry.CreatedUnix, err = requiredInt(t.Created, "balance transaction", id, "created"); err != nil {
		return domain.LedgerEntry{}, err
	}

	// Description is the one optional field.
	if t.Description != nil {
		entry.Description = *t.Description
	}

	return entry, nil
}
