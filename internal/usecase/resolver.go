package usecase

import "github.com/iho/paydash/internal/domain"

// ResolveIdentities groups charge identities by email and picks each email's
// canonical display name: the first non-nil billing name in arrival order.
// The policy is deliberately "first seen", not "most common"; for a fixed
// input sequence the result is reproducible. Charges without an email are
// skipped entirely and can only ever display their per-transaction name.
func ResolveIdentities(charges []domain.ChargeIdentity) map[string]domain.ResolvedIdentity {
	resolved := make(map[string]domain.ResolvedIdentity)

	for _, c := range charges {
		if c.Email == nil {
			continue
		}

		r, ok := resolved[*c.Email]
		if !ok {
			r = domain.ResolvedIdentity{Email: *c.Email}
		}

		if r.CanonicalName == nil && c.BillingName != nil {
			r.CanonicalName = c.BillingName
		}

		resolved[*c.Email] = r
	}

	return resolved
}
