// File: internal/infra/adapters/enrich/provider.go
package enrich

import (
	"context"
	"time"

	"github.com/chenna-nefer/InsightScout-new/internal/domain/model"
	"github.com/chenna-nefer/InsightScout-new/internal/domain/ports/adapter"
	"github.com/chenna-nefer/InsightScout-new/internal/infra/metrics"

	"github.com/rs/zerolog"
)

// Compile-time check
var _ adapter.EnrichmentProvider = (*Pipeline)(nil)

// Pipeline is the composite enrichment provider: founder discovery, then a
// LinkedIn profile search per founder, then email/phone lookup per profile.
// The searcher and contact finder are optional; when absent those fields stay
// at the sentinel. Per-founder lookup failures degrade to the sentinel rather
// than failing the company.
type Pipeline struct {
	source   adapter.FounderSource
	searcher adapter.ProfileSearcher
	contacts adapter.ContactFinder
	log      *zerolog.Logger
}

func NewPipeline(source adapter.FounderSource, searcher adapter.ProfileSearcher, contacts adapter.ContactFinder, logger *zerolog.Logger) *Pipeline {
	l := logger.With().Str("component", "EnrichmentPipeline").Logger()
	return &Pipeline{
		source:   source,
		searcher: searcher,
		contacts: contacts,
		log:      &l,
	}
}

func (p *Pipeline) Enrich(ctx context.Context, companyName string) ([]model.Founder, error) {
	start := time.Now()
	leads, err := p.source.DiscoverFounders(ctx, companyName)
	metrics.ObserveProviderCall("discovery", int(time.Since(start)/time.Millisecond), err == nil)
	if err != nil {
		return nil, err
	}
	if len(leads) == 0 {
		p.log.Debug().Str("company", companyName).Msg("no verified founders found")
		return []model.Founder{}, nil
	}

	founders := make([]model.Founder, 0, len(leads))
	for _, lead := range leads {
		founders = append(founders, p.enrichFounder(ctx, lead, companyName))
	}
	return founders, nil
}

func (p *Pipeline) enrichFounder(ctx context.Context, lead model.FounderLead, companyName string) model.Founder {
	f := model.Founder{
		Name:        lead.Name,
		Role:        lead.Role,
		LinkedInURL: model.NotFound,
		Email:       model.NotFound,
		Phone:       model.NotFound,
	}
	if f.Role == "" {
		f.Role = "Founder"
	}
	if p.searcher == nil {
		return f
	}

	start := time.Now()
	profile, err := p.searcher.FindLinkedIn(ctx, lead.Name, companyName)
	metrics.ObserveProviderCall("linkedin", int(time.Since(start)/time.Millisecond), err == nil)
	if err != nil {
		p.log.Warn().Err(err).Str("founder", lead.Name).Msg("linkedin search failed")
		return f
	}
	if profile == "" {
		return f
	}
	f.LinkedInURL = profile

	if p.contacts == nil {
		return f
	}
	start = time.Now()
	email, err := p.contacts.FindEmail(ctx, profile)
	metrics.ObserveProviderCall("email", int(time.Since(start)/time.Millisecond), err == nil)
	if err != nil {
		p.log.Warn().Err(err).Str("founder", lead.Name).Msg("email lookup failed")
	} else if email != "" {
		f.Email = email
	}

	start = time.Now()
	phone, err := p.contacts.FindPhone(ctx, profile)
	metrics.ObserveProviderCall("phone", int(time.Since(start)/time.Millisecond), err == nil)
	if err != nil {
		p.log.Warn().Err(err).Str("founder", lead.Name).Msg("phone lookup failed")
	} else if phone != "" {
		f.Phone = phone
	}

	return f
}
