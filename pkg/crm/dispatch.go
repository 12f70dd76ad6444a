package crm

import (
	"github.com/dealpage/dealpage/config"
)

// Registry holds the four provider adapters. ForProvider is the single
// dispatch point between provider names and adapter implementations; adding
// a provider means extending the switch here and nothing else outside this
// package.
type Registry struct {
	hubspot    Adapter
	salesforce Adapter
	pipedrive  Adapter
	zoho       Adapter
}

// NewRegistry constructs adapters for all supported providers from the
// application configuration.
func NewRegistry(cfg *config.Config) *Registry {
	return &Registry{
		hubspot:    NewHubSpotAdapter(cfg.HubSpot, cfg.CRMCallbackURL),
		salesforce: NewSalesforceAdapter(cfg.Salesforce, cfg.CRMCallbackURL),
		pipedrive:  NewPipedriveAdapter(cfg.Pipedrive, cfg.CRMCallbackURL),
		zoho:       NewZohoAdapter(cfg.Zoho, cfg.CRMCallbackURL),
	}
}

// NewRegistryWithAdapters builds a registry from explicit adapter
// implementations.
func NewRegistryWithAdapters(hubspot, salesforce, pipedrive, zoho Adapter) *Registry {
	return &Registry{
		hubspot:    hubspot,
		salesforce: salesforce,
		pipedrive:  pipedrive,
		zoho:       zoho,
	}
}

// ForProvider returns the adapter for a provider.
func (r *Registry) ForProvider(p Provider) (Adapter, error) {
	switch p {
	case ProviderHubSpot:
		return r.hubspot, nil
	case ProviderSalesforce:
		return r.salesforce, nil
	case ProviderPipedrive:
		return r.pipedrive, nil
	case ProviderZoho:
		return r.zoho, nil
	default:
		return nil, ErrUnknownProvider
	}
}

// Providers lists all supported providers.
func Providers() []Provider {
	return []Provider{ProviderHubSpot, ProviderSalesforce, ProviderPipedrive, ProviderZoho}
}
