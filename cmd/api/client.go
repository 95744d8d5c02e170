package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"smartpill/internal/domain/report"
	"smartpill/internal/platform/httpclient"

	"github.com/spf13/cobra"
)

// defaultURL apunta al server local usando PORT si está seteado.
func defaultURL() string {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}
	return "http://localhost:" + port
}

func newHealthcheckCmd() *cobra.Command {
	var baseURL string

	cmd := &cobra.Command{
		Use:   "healthcheck",
		Short: "Check that a running API answers /health (exit code 1 if not)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := httpclient.New(baseURL, 3*time.Second)
			if err != nil {
				return err
			}

			var out struct {
				Status string `json:"status"`
			}
			if err := c.DoJSON(cmd.Context(), http.MethodGet, "/health", nil, &out); err != nil {
				return err
			}
			if out.Status != "ok" {
				return fmt.Errorf("unexpected status %q", out.Status)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
	cmd.Flags().StringVar(&baseURL, "url", defaultURL(), "API base URL")
	return cmd
}

func newReportCmd() *cobra.Command {
	var baseURL, token, email, password, startDate string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the 7-day expected vs actual consumption report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := httpclient.New(baseURL, 0)
			if err != nil {
				return err
			}

			if token == "" {
				if email == "" || password == "" {
					return fmt.Errorf("--token or --email/--password required")
				}
				var login struct {
					Token string `json:"token"`
				}
				creds := map[string]string{"email": email, "password": password}
				if err := c.DoJSON(cmd.Context(), http.MethodPost, "/auth/login", creds, &login); err != nil {
					return fmt.Errorf("login: %w", err)
				}
				token = login.Token
			}
			c.Token = token

			var days []report.DayResult
			path := "/consumption-report?start_date=" + url.QueryEscape(startDate)
			if err := c.DoJSON(cmd.Context(), http.MethodGet, path, nil, &days); err != nil {
				return err
			}

			printReport(cmd.OutOrStdout(), days)
			return nil
		},
	}
	cmd.Flags().StringVar(&baseURL, "url", defaultURL(), "API base URL")
	cmd.Flags().StringVar(&token, "token", os.Getenv("SMARTPILL_TOKEN"), "JWT (default $SMARTPILL_TOKEN)")
	cmd.Flags().StringVar(&email, "email", "", "login email (if no token)")
	cmd.Flags().StringVar(&password, "password", "", "login password (if no token)")
	cmd.Flags().StringVar(&startDate, "start-date", time.Now().Format("2006-01-02"), "first day (YYYY-MM-DD)")
	return cmd
}

func printReport(w io.Writer, days []report.DayResult) {
	for _, d := range days {
		_, _ = fmt.Fprintf(w, "%s  expected=%d actual=%d\n", d.Date, len(d.Expected), len(d.Actual))
		for _, e := range d.Expected {
			_, _ = fmt.Fprintf(w, "  - %s dose %d\n", e.MedicationName, e.DoseIndex)
		}
		for _, a := range d.Actual {
			_, _ = fmt.Fprintf(w, "  + %s at %s\n", a.MedicationName, a.Time)
		}
	}
}
