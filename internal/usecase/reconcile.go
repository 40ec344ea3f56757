package usecase

import "github.com/iho/paydash/internal/domain"

// Reconcile left-joins ledger entries with charge identities on ledger
// transaction id and normalizes the result. The join is outer-left: every
// entry appears in the output exactly once, and entries with no matching
// charge (payouts, fees, standalone refunds) keep a nil name.
//
// Name precedence per entry: the charge's own billing name, else the
// canonical name resolved for the charge's email, else nil. The upstream
// source is expected to link at most one charge per transaction; if it ever
// sends duplicates, the first charge in arrival order wins.
func Reconcile(entries []domain.LedgerEntry, charges []domain.ChargeIdentity) []domain.ReconciledRecord {
	resolved := ResolveIdentities(charges)

	byTxn := make(map[string]domain.ChargeIdentity, len(charges))
	for _, c := range charges {
		if c.LedgerTransactionID == "" {
			continue
		}
		if _, ok := byTxn[c.LedgerTransactionID]; ok {
			continue
		}
		byTxn[c.LedgerTransactionID] = c
	}

	records := make([]domain.ReconciledRecord, 0, len(entries))
	for i := range entries {
		entry := &entries[i]

		var name *string
		if c, ok := byTxn[entry.ID]; ok {
			name = c.BillingName
			if name == nil && c.Email != nil {
				if r, ok := resolved[*c.Email]; ok {
					name = r.CanonicalName
				}
			}
		}

		records = append(records, entry.Reconcile(name))
	}

	return records
}
