package usecase_test

import (
	"testing"

	"github.com/iho/paydash/internal/domain"
	"github.com/iho/paydash/internal/usecase"
)

func strPtr(s string) *string { return &s }

func TestResolveIdentities_FirstNonNilWins(t *testing.T) {
	email := "a@x.com"
	charges := []domain.ChargeIdentity{
		{LedgerTransactionID: "txn_1", BillingName: nil, Email: strPtr(email)},
		{LedgerTransactionID: "txn_2", BillingName: strPtr("Jane Doe"), Email: strPtr(email)},
		{LedgerTransactionID: "txn_3", BillingName: strPtr("J. Doe"), Email: strPtr(email)},
	}

	resolved := usecase.ResolveIdentities(charges)

	r, ok := resolved[email]
	if !ok {
		t.Fatal("expected an identity for a@x.com")
	}
	if r.CanonicalName == nil || *r.CanonicalName != "Jane Doe" {
		t.Errorf("expected canonical name Jane Doe (first non-nil), got %v", r.CanonicalName)
	}
}

func TestResolveIdentities_NilEmailSkipped(t *testing.T) {
	charges := []domain.ChargeIdentity{
		{LedgerTransactionID: "txn_1", BillingName: strPtr("Anonymous"), Email: nil},
	}

	resolved := usecase.ResolveIdentities(charges)
	if len(resolved) != 0 {
		t.Errorf("expected no resolved identities for nil-email charges, got %d", len(resolved))
	}
}

func TestResolveIdentities_AllNamesMissing(t *testing.T) {
	email := "b@x.com"
	charges := []domain.ChargeIdentity{
		{LedgerTransactionID: "txn_1", Email: strPtr(email)},
		{LedgerTransactionID: "txn_2", Email: strPtr(email)},
	}

	resolved := usecase.ResolveIdentities(charges)

	r, ok := resolved[email]
	if !ok {
		t.Fatal("expected a partition for b@x.com even without names")
	}
	if r.CanonicalName != nil {
		t.Errorf("expected nil canonical name, got %q", *r.CanonicalName)
	}
}

func TestResolveIdentities_IndependentEmails(t *testing.T) {
	charges := []domain.ChargeIdentity{
		{LedgerTransactionID: "txn_1", BillingName: strPtr("Alice"), Email: strPtr("alice@x.com")},
		{LedgerTransactionID: "txn_2", BillingName: strPtr("Bob"), Email: strPtr("bob@x.com")},
	}

	resolved := usecase.ResolveIdentities(charges)

	if got := resolved["alice@x.com"].CanonicalName; got == nil || *got != "Alice" {
		t.Errorf("expected Alice, got %v", got)
	}
	if got := resolved["bob@x.com"].CanonicalName; got == nil || *got != "Bob" {
		t.Errorf("expected Bob, got %v", got)
	}
}
