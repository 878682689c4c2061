package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/chenna-nefer/InsightScout-new/internal/domain"
	"github.com/chenna-nefer/InsightScout-new/internal/domain/ports/adapter"
)

// Compile-time assurance this adapter satisfies the port
var _ adapter.ContactFinder = (*ProspeoFinder)(nil)

// ProspeoFinder resolves email and phone from a LinkedIn profile URL through
// Prospeo's enrichment endpoints. Authentication is an X-KEY header.
type ProspeoFinder struct {
	apiKey string
	base   string // e.g., https://api.prospeo.io
	client *http.Client
}

func NewProspeoFinder(apiKey, base string) (*ProspeoFinder, error) {
	if apiKey == "" {
		return nil, errors.New("prospeo api key empty")
	}
	if base == "" {
		base = "https://api.prospeo.io"
	}
	return &ProspeoFinder{
		apiKey: apiKey,
		base:   strings.TrimRight(base, "/"),
		client: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (p *ProspeoFinder) FindEmail(ctx context.Context, linkedinURL string) (string, error) {
	var payload struct {
		Error    bool `json:"error"`
		Response struct {
			Email struct {
				Email       string `json:"email"`
				EmailStatus string `json:"email_status"`
			} `json:"email"`
		} `json:"response"`
	}
	if err := p.post(ctx, "/social-url-enrichment", linkedinURL, &payload); err != nil {
		return "", err
	}
	if payload.Error {
		return "", nil
	}
	// Only surface addresses Prospeo is reasonably sure about.
	switch payload.Response.Email.EmailStatus {
	case "VERIFIED", "ACCEPT_ALL", "VALID":
		return payload.Response.Email.Email, nil
	}
	return "", nil
}

func (p *ProspeoFinder) FindPhone(ctx context.Context, linkedinURL string) (string, error) {
	var payload struct {
		Error    bool `json:"error"`
		Response struct {
			RawFormat string `json:"raw_format"`
		} `json:"response"`
	}
	if err := p.post(ctx, "/mobile-finder", linkedinURL, &payload); err != nil {
		return "", err
	}
	if payload.Error {
		return "", nil
	}
	return payload.Response.RawFormat, nil
}

func (p *ProspeoFinder) post(ctx context.Context, path, linkedinURL string, out any) error {
	b, _ := json.Marshal(struct {
		URL string `json:"url"`
	}{URL: linkedinURL})

	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, p.base+path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-KEY", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var errBody struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		if errBody.Message == "INSUFFICIENT_CREDITS" {
			return domain.ErrInsufficientCredits
		}
		return fmt.Errorf("prospeo http %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
