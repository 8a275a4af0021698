package partners

import "context"

// RepositoryInterface defines the partner data access contract
type RepositoryInterface interface {
	// GetPartners returns the full collection in backend order.
	GetPartners(ctx context.Context) ([]*Partner, error)
	// GetPartnerByID fails with ErrPartnerNotFound when no record matches.
	GetPartnerByID(ctx context.Context, id string) (*Partner, error)
}
