package usecase

import (
	"sort"

	"github.com/iho/paydash/internal/domain"
)

// CustomerAll selects every customer. An empty customer filter means the same.
const CustomerAll = ""

// Filter applies the three display predicates in order: inclusive date
// window, category selector, customer selector. Predicates compose by AND.
// Input order is preserved.
func Filter(records []domain.ReconciledRecord, window domain.Window, category domain.Category, customer string) []domain.ReconciledRecord {
	out := make([]domain.ReconciledRecord, 0, len(records))

	for _, r := range records {
		if !window.Contains(r.Date) {
			continue
		}
		if !category.Matches(r.Type) {
			continue
		}
		if customer != CustomerAll && (r.Name == nil || *r.Name != customer) {
			continue
		}
		out = append(out, r)
	}

	return out
}

// CustomerNames returns the distinct non-nil customer names in the dataset,
// sorted. This feeds the customer selector.
func CustomerNames(records []domain.ReconciledRecord) []string {
	seen := make(map[string]struct{})

	for _, r := range records {
		if r.Name == nil {
			continue
		}
		seen[*r.Name] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
