package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read stdout: %v", err)
	}
	return buf.String()
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("expected short unchanged, got %q", got)
	}

	if got := truncate("longerstring", 6); got != "lon..." {
		t.Fatalf("expected lon..., got %q", got)
	}
}

func TestPrintJSON(t *testing.T) {
	out := captureOutput(t, func() {
		printJSON(struct {
			A int `json:"a"`
		}{A: 1})
	})

	expected := "{\n  \"a\": 1\n}\n"
	if out != expected {
		t.Fatalf("unexpected json output:\n%s", out)
	}
}

func TestReportQuery(t *testing.T) {
	origStart, origEnd, origCategory, origCustomer := startDate, endDate, category, customer
	defer func() {
		startDate, endDate, category, customer = origStart, origEnd, origCategory, origCustomer
	}()

	startDate = "2021-01-01"
	endDate = "2021-12-31"
	category = "charge"
	customer = "Jane Doe"

	got := reportQuery()
	expected := "category=charge&customer=Jane+Doe&end=2021-12-31&start=2021-01-01"
	if got != expected {
		t.Fatalf("unexpected query %q, expected %q", got, expected)
	}
}

func TestListCustomers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/customers" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"customers":["Ada Lovelace","Jane Doe"],"total":2}`))
	}))
	defer server.Close()

	origURL, origTimeout := baseURL, timeout
	defer func() { baseURL, timeout = origURL, origTimeout }()
	baseURL = server.URL
	timeout = 5 * time.Second

	out := captureOutput(t, listCustomers)

	if !strings.Contains(out, "Ada Lovelace") || !strings.Contains(out, "Jane Doe") {
		t.Fatalf("expected customer names in output, got:\n%s", out)
	}
	if !strings.Contains(out, "2 customers") {
		t.Fatalf("expected count line, got:\n%s", out)
	}
}

func TestShowSummary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/report" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"summary": {"gross_total": "10", "net_total": "9.41", "payment_count": 1},
			"monthly_gross": [{"month": "2021-01", "total": "10"}],
			"transactions": []
		}`))
	}))
	defer server.Close()

	origURL, origTimeout := baseURL, timeout
	defer func() { baseURL, timeout = origURL, origTimeout }()
	baseURL = server.URL
	timeout = 5 * time.Second

	out := captureOutput(t, showSummary)

	if !strings.Contains(out, "Payment count: 1") {
		t.Fatalf("expected payment count line, got:\n%s", out)
	}
	if !strings.Contains(out, "2021-01") {
		t.Fatalf("expected monthly row, got:\n%s", out)
	}
}
