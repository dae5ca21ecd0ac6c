package songview

import (
	"context"

	"crosswalk/internal/registry"
)

// ProviderName tags compositions fetched from the Songview portal.
const ProviderName = "Songview"

// Provider is a placeholder integration for the combined ASCAP/BMI Songview
// repertory. The public portals return HTML and gate programmatic access, so
// every query currently yields zero candidates. The matching pipeline treats
// an empty candidate set as a valid outcome, which keeps the engine correct
// while this integration is stubbed.
type Provider struct{}

var _ registry.Provider = (*Provider)(nil)

// New creates the stub provider.
func New() *Provider {
	return &Provider{}
}

// Name returns the provider tag.
func (p *Provider) Name() string {
	return ProviderName
}

// LookupByCode always reports no registered works.
func (p *Provider) LookupByCode(ctx context.Context, code string) ([]registry.Composition, error) {
	return nil, nil
}

// SearchByTitle always reports no candidates.
func (p *Provider) SearchByTitle(ctx context.Context, title, performerHint string) ([]registry.Composition, error) {
	return nil, nil
}
