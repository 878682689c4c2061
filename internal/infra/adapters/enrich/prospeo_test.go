package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chenna-nefer/InsightScout-new/internal/domain"
)

func prospeoServer(t *testing.T, handler http.HandlerFunc) *ProspeoFinder {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-KEY"); got != "test-key" {
			t.Errorf("x-key header = %q", got)
		}
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	p, err := NewProspeoFinder("test-key", srv.URL)
	if err != nil {
		t.Fatalf("NewProspeoFinder: %v", err)
	}
	return p
}

func TestProspeoFindEmail(t *testing.T) {
	cases := []struct {
		name   string
		status string
		email  string
		want   string
	}{
		{"verified", "VERIFIED", "jane@acme.com", "jane@acme.com"},
		{"accept all", "ACCEPT_ALL", "jane@acme.com", "jane@acme.com"},
		{"valid", "VALID", "jane@acme.com", "jane@acme.com"},
		{"unverified discarded", "UNVERIFIED", "jane@acme.com", ""},
		{"guessed discarded", "GUESS", "maybe@acme.com", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := prospeoServer(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/social-url-enrichment" {
					t.Errorf("path = %s", r.URL.Path)
				}
				_ = json.NewEncoder(w).Encode(map[string]any{
					"error": false,
					"response": map[string]any{
						"email": map[string]any{
							"email":        tc.email,
							"email_status": tc.status,
						},
					},
				})
			})

			got, err := p.FindEmail(context.Background(), "https://linkedin.com/in/janedoe")
			if err != nil {
				t.Fatalf("FindEmail: %v", err)
			}
			if got != tc.want {
				t.Errorf("email = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestProspeoFindEmailAPIError(t *testing.T) {
	p := prospeoServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"error": true})
	})

	got, err := p.FindEmail(context.Background(), "https://linkedin.com/in/janedoe")
	if err != nil {
		t.Fatalf("FindEmail: %v", err)
	}
	if got != "" {
		t.Errorf("email = %q, want empty on api-level error", got)
	}
}

func TestProspeoFindPhone(t *testing.T) {
	p := prospeoServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/mobile-finder" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var req struct {
			URL string `json:"url"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.URL != "https://linkedin.com/in/janedoe" {
			t.Errorf("url = %q", req.URL)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error":    false,
			"response": map[string]any{"raw_format": "+14155550100"},
		})
	})

	got, err := p.FindPhone(context.Background(), "https://linkedin.com/in/janedoe")
	if err != nil {
		t.Fatalf("FindPhone: %v", err)
	}
	if got != "+14155550100" {
		t.Errorf("phone = %q", got)
	}
}

func TestProspeoInsufficientCredits(t *testing.T) {
	p := prospeoServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "INSUFFICIENT_CREDITS"})
	})

	if _, err := p.FindEmail(context.Background(), "https://linkedin.com/in/janedoe"); !errors.Is(err, domain.ErrInsufficientCredits) {
		t.Errorf("err = %v, want ErrInsufficientCredits", err)
	}
}

func TestProspeoHTTPError(t *testing.T) {
	p := prospeoServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	if _, err := p.FindPhone(context.Background(), "https://linkedin.com/in/janedoe"); err == nil {
		t.Error("expected error on upstream 500")
	}
}

func TestNewProspeoFinderRequiresKey(t *testing.T) {
	if _, err := NewProspeoFinder("", ""); err == nil {
		t.Error("expected error for empty api key")
	}
}
