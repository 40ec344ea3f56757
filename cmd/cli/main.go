package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration

	startDate string
	endDate   string
	category  string
	customer  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "paydash-cli",
		Short: "Paydash CLI tool",
		Long:  `A command line interface for interacting with the Paydash reporting API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Paydash API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Report commands
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Report operations",
	}
	reportCmd.PersistentFlags().StringVar(&startDate, "start", "", "Start date (YYYY-MM-DD)")
	reportCmd.PersistentFlags().StringVar(&endDate, "end", "", "End date (YYYY-MM-DD)")
	reportCmd.PersistentFlags().StringVar(&category, "category", "all", "Category filter (all, charge, payout, refund)")
	reportCmd.PersistentFlags().StringVar(&customer, "customer", "", "Customer name filter")

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show report summary totals",
		Run: func(cmd *cobra.Command, args []string) {
			showSummary()
		},
	}

	transactionsCmd := &cobra.Command{
		Use:   "transactions",
		Short: "List reconciled transactions",
		Run: func(cmd *cobra.Command, args []string) {
			showTransactions()
		},
	}

	reportCmd.AddCommand(summaryCmd)
	reportCmd.AddCommand(transactionsCmd)
	rootCmd.AddCommand(reportCmd)

	// Customers
	customersCmd := &cobra.Command{
		Use:   "customers",
		Short: "List resolved customer names",
		Run: func(cmd *cobra.Command, args []string) {
			listCustomers()
		},
	}
	rootCmd.AddCommand(customersCmd)

	// Cache
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Dataset cache operations",
	}
	refreshCmd := &cobra.Command{
		Use:   "refresh",
		Short: "Drop the cached dataset",
		Run: func(cmd *cobra.Command, args []string) {
			refreshCache()
		},
	}
	cacheCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(cacheCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func reportQuery() string {
	q := url.Values{}
	if startDate != "" {
		q.Set("start", startDate)
	}
	if endDate != "" {
		q.Set("end", endDate)
	}
	if category != "" {
		q.Set("category", category)
	}
	if customer != "" {
		q.Set("customer", customer)
	}
	return q.Encode()
}

type reportPayload struct {
	Summary struct {
		GrossTotal   string `json:"gross_total"`
		NetTotal     string `json:"net_total"`
		PaymentCount int    `json:"payment_count"`
	} `json:"summary"`
	MonthlyGross []struct {
		Month string `json:"month"`
		Total string `json:"total"`
	} `json:"monthly_gross"`
	Transactions []struct {
		ID          string  `json:"id"`
		Type        string  `json:"type"`
		Status      string  `json:"status"`
		Description string  `json:"description"`
		Name        *string `json:"name"`
		Amount      string  `json:"amount"`
		Net         string  `json:"net"`
		Date        string  `json:"date"`
	} `json:"transactions"`
}

func fetchReport() (*reportPayload, error) {
	body, err := getJSON("/api/v1/report?" + reportQuery())
	if err != nil {
		return nil, err
	}

	var report reportPayload
	if err := json.Unmarshal(body, &report); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &report, nil
}

func showSummary() {
	report, err := fetchReport()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Gross total:   %s\n", report.Summary.GrossTotal)
	fmt.Printf("Net total:     %s\n", report.Summary.NetTotal)
	fmt.Printf("Payment count: %d\n", report.Summary.PaymentCount)

	if len(report.MonthlyGross) > 0 {
		fmt.Println("\nMonthly gross:")
		for _, row := range report.MonthlyGross {
			fmt.Printf("  %s  %s\n", row.Month, row.Total)
		}
	}
}

func showTransactions() {
	report, err := fetchReport()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%-12s %-10s %-10s %-20s %10s %10s  %s\n",
		"DATE", "TYPE", "STATUS", "CUSTOMER", "AMOUNT", "NET", "DESCRIPTION")
	for _, tx := range report.Transactions {
		name := "-"
		if tx.Name != nil {
			name = *tx.Name
		}
		fmt.Printf("%-12s %-10s %-10s %-20s %10s %10s  %s\n",
			tx.Date, tx.Type, tx.Status, truncate(name, 20),
			tx.Amount, tx.Net, truncate(tx.Description, 40))
	}
	fmt.Printf("\n%d transactions\n", len(report.Transactions))
}

func listCustomers() {
	body, err := getJSON("/api/v1/customers")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	var result struct {
		Customers []string `json:"customers"`
		Total     int      `json:"total"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	for _, name := range result.Customers {
		fmt.Println(name)
	}
	fmt.Printf("\n%d customers\n", result.Total)
}

func refreshCache() {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+"/api/v1/cache/refresh", "application/json", nil)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Refresh FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Cache refreshed")
	printJSON(result)
}

func getJSON(path string) ([]byte, error) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed (Status: %d): %s", resp.StatusCode, string(body))
	}

	return body, nil
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to marshal: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
