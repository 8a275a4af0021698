package partners

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/richxcame/partner-showcase/pkg/httpclient"
	"github.com/richxcame/partner-showcase/pkg/logger"
	"go.uber.org/zap"
)

// PartnersPath is the backend collection route, relative to the API base URL
const PartnersPath = "/home/partenaire/"

// JSONGetter is the transport the repository needs from the HTTP client
type JSONGetter interface {
	GetJSON(ctx context.Context, path string, out interface{}) error
}

var _ JSONGetter = (*httpclient.Client)(nil)

// Repository reads partners from the REST backend.
//
// Lookups by id fetch the whole collection and scan it (list-and-scan)
// instead of calling the per-id route. Each lookup costs a full payload and
// an O(n) scan, but the record always comes from the same snapshot as the
// partnership listing, and the per-id route is not available on every
// backend deployment.
type Repository struct {
	client JSONGetter
}

// NewRepository creates a new partner repository
func NewRepository(client JSONGetter) *Repository {
	return &Repository{client: client}
}

type listResponse struct {
	Data []json.RawMessage `json:"data"`
}

// GetPartners returns every partner in the order the backend sent them.
// Records are decoded one by one; null and undecodable records are skipped
// so a single bad record never hides its siblings.
func (r *Repository) GetPartners(ctx context.Context) ([]*Partner, error) {
	var resp listResponse
	if err := r.client.GetJSON(ctx, PartnersPath, &resp); err != nil {
		return nil, fmt.Errorf("get partners: %w", err)
	}

	partners := make([]*Partner, 0, len(resp.Data))
	for i, raw := range resp.Data {
		var p *Partner
		if err := json.Unmarshal(raw, &p); err != nil {
			logger.WithContext(ctx).Warn("skipping undecodable partner record",
				zap.Int("index", i),
				zap.Error(err),
			)
			continue
		}
		if p != nil {
			partners = append(partners, p)
		}
	}
	return partners, nil
}

// GetPartnerByID returns the first partner whose string or numeric id matches
func (r *Repository) GetPartnerByID(ctx context.Context, id string) (*Partner, error) {
	partners, err := r.GetPartners(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range partners {
		if p.MatchesID(id) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrPartnerNotFound, id)
}
