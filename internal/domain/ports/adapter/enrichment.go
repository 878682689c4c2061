package adapter

import (
	"context"

	"github.com/chenna-nefer/InsightScout-new/internal/domain/model"
)

// EnrichmentProvider is the port the job runner drives: given a company name,
// asynchronously return zero or more founder records, or fail. An empty slice
// means "nothing found" and is not an error.
type EnrichmentProvider interface {
	Enrich(ctx context.Context, companyName string) ([]model.Founder, error)
}

// FounderSource discovers founder/CEO name+role pairs for a company.
type FounderSource interface {
	DiscoverFounders(ctx context.Context, companyName string) ([]model.FounderLead, error)
}

// ProfileSearcher locates a person's LinkedIn profile URL. An empty string
// means no matching profile was found.
type ProfileSearcher interface {
	FindLinkedIn(ctx context.Context, founderName, companyName string) (string, error)
}

// ContactFinder resolves contact details from a LinkedIn profile URL. Empty
// strings mean not found.
type ContactFinder interface {
	FindEmail(ctx context.Context, linkedinURL string) (string, error)
	FindPhone(ctx context.Context, linkedinURL string) (string, error)
}
