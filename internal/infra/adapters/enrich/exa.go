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

	"github.com/chenna-nefer/InsightScout-new/internal/domain/ports/adapter"
)

// Compile-time assurance this adapter satisfies the port
var _ adapter.ProfileSearcher = (*ExaSearcher)(nil)

// ExaSearcher finds LinkedIn profiles through Exa's keyword search API.
type ExaSearcher struct {
	apiKey string
	base   string // e.g., https://api.exa.ai
	client *http.Client
}

func NewExaSearcher(apiKey, base string) (*ExaSearcher, error) {
	if apiKey == "" {
		return nil, errors.New("exa api key empty")
	}
	if base == "" {
		base = "https://api.exa.ai"
	}
	return &ExaSearcher{
		apiKey: apiKey,
		base:   strings.TrimRight(base, "/"),
		client: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// FindLinkedIn tries a few query shapes, most specific first, and returns the
// first profile URL whose slug matches the founder's first or last name.
// An empty string means no convincing match.
func (e *ExaSearcher) FindLinkedIn(ctx context.Context, founderName, companyName string) (string, error) {
	first, last, ok := splitName(founderName)
	if !ok {
		return "", nil
	}
	company := strings.TrimSpace(nonNameChars.ReplaceAllString(companyName, ""))

	queries := []string{
		fmt.Sprintf(`site:linkedin.com/in/ "%s %s" "%s"`, first, last, company),
		fmt.Sprintf(`site:linkedin.com/in/ "%s %s" founder OR ceo "%s"`, first, last, company),
		fmt.Sprintf(`site:linkedin.com/in/ "%s %s" founder OR ceo`, first, last),
	}

	for _, q := range queries {
		urls, err := e.search(ctx, q)
		if err != nil {
			return "", err
		}
		for _, raw := range urls {
			if !strings.Contains(raw, "linkedin.com/in/") {
				continue
			}
			profile := strings.SplitN(raw, "?", 2)[0]
			slug := strings.ToLower(strings.SplitN(profile, "/in/", 2)[1])
			if strings.Contains(slug, strings.ToLower(first)) || strings.Contains(slug, strings.ToLower(last)) {
				return profile, nil
			}
		}
	}
	return "", nil
}

func (e *ExaSearcher) search(ctx context.Context, query string) ([]string, error) {
	reqBody := struct {
		Query      string `json:"query"`
		NumResults int    `json:"num_results"`
		Type       string `json:"type"`
	}{Query: query, NumResults: 3, Type: "keyword"}

	b, _ := json.Marshal(reqBody)
	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, e.base+"/search", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.apiKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("exa http %d", resp.StatusCode)
	}

	var payload struct {
		Results []struct {
			URL string `json:"url"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	urls := make([]string, 0, len(payload.Results))
	for _, r := range payload.Results {
		urls = append(urls, r.URL)
	}
	return urls, nil
}
