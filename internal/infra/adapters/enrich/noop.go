package enrich

import (
	"context"
	"strings"
	"time"

	"github.com/chenna-nefer/InsightScout-new/internal/domain/model"
	"github.com/chenna-nefer/InsightScout-new/internal/domain/ports/adapter"
)

var _ adapter.EnrichmentProvider = (*NoopProvider)(nil)

// NoopProvider implements the enrichment port for local/dev runs without API
// keys. It fabricates a single founder per company after a small delay.
type NoopProvider struct{}

func NewNoopProvider() *NoopProvider { return &NoopProvider{} }

func (n *NoopProvider) Enrich(ctx context.Context, companyName string) ([]model.Founder, error) {
	select {
	case <-time.After(100 * time.Millisecond):
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	slug := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(companyName), " ", ""))
	return []model.Founder{{
		Name:        "Jane Doe",
		Role:        "Founder",
		LinkedInURL: "https://linkedin.com/in/janedoe",
		Email:       "jane@" + slug + ".example",
		Phone:       model.NotFound,
	}}, nil
}
