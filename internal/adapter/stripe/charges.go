package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/iho/paydash/internal/domain"
)

// charge is the wire shape of the slice of a charge record the pipeline
// needs: the linking ledger transaction id plus billing identity.
type charge struct {
	ID                 *string `json:"id"`
	BalanceTransaction *string `json:"balance_transaction"`
	BillingDetails     *struct {
		Name *string `json:"name"`
	} `json:"billing_details"`
	ReceiptEmail *string `json:"receipt_email"`
}

// ListCharges fetches every charge across all pages and extracts its
// identity fields. Charges not yet linked to a settled balance transaction
// are skipped: a nil transaction id cannot join. A missing billing name or
// email is data, not an error.
func (c *Client) ListCharges(ctx context.Context, apiKey string) ([]domain.ChargeIdentity, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(c.pageLimit))

	var identities []domain.ChargeIdentity

	for {
		var envelope listEnvelope
		if err := c.getPage(ctx, apiKey, "/v1/charges", query, &envelope); err != nil {
			return nil, err
		}

		var page []charge
		if err := json.Unmarshal(envelope.Data, &page); err != nil {
			return nil, fmt.Errorf("%w: decode charges: %v", domain.ErrSourceUnavailable, err)
		}

		for i := range page {
			ch := &page[i]
			if ch.ID == nil {
				return nil, missingField("charge", "", "id")
			}
			if ch.BalanceTransaction == nil || *ch.BalanceTransaction == "" {
				continue
			}

			identity := domain.ChargeIdentity{
				LedgerTransactionID: *ch.BalanceTransaction,
				Email:               ch.ReceiptEmail,
			}
			if ch.BillingDetails != nil {
				identity.BillingName = ch.BillingDetails.Name
			}

			identities = append(identities, identity)
		}

		if !envelope.HasMore || len(page) == 0 {
			return identities, nil
		}

		last := page[len(page)-1]
		if last.ID == nil {
			return nil, missingField("charge", "", "id")
		}
		query.Set("starting_after", *last.ID)
	}
}
