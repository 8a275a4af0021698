package partners

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/richxcame/partner-showcase/pkg/i18n"
	"github.com/richxcame/partner-showcase/pkg/logger"
	"go.uber.org/zap"
)

// Service handles partner business logic
type Service struct {
	repo  RepositoryInterface
	media *MediaResolver
}

// NewService creates a new partner service
func NewService(repo RepositoryInterface, media *MediaResolver) *Service {
	return &Service{repo: repo, media: media}
}

// Media returns the resolver used for image URLs
func (s *Service) Media() *MediaResolver {
	return s.media
}

// ListPartners returns the collection ordered by display priority (ascending,
// backend order breaks ties). activeOnly drops partners flagged inactive.
func (s *Service) ListPartners(ctx context.Context, activeOnly bool) ([]*Partner, error) {
	partners, err := s.repo.GetPartners(ctx)
	if err != nil {
		logger.WithContext(ctx).Error("failed to list partners", zap.Error(err))
		return nil, err
	}

	out := make([]*Partner, 0, len(partners))
	for _, p := range partners {
		if activeOnly && !p.IsActive() {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority < out[j].Priority
	})
	return out, nil
}

// GetPartner returns a single partner, ErrPartnerNotFound when absent
func (s *Service) GetPartner(ctx context.Context, id string) (*Partner, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrPartnerNotFound
	}

	partner, err := s.repo.GetPartnerByID(ctx, id)
	if err != nil {
		log := logger.WithContext(ctx).With(zap.String("partner_id", id))
		if errors.Is(err, ErrPartnerNotFound) {
			log.Info("partner not found")
		} else {
			log.Error("failed to get partner", zap.Error(err))
		}
		return nil, err
	}
	return partner, nil
}

// GetPartnerDetail returns the partner and its view resolved for lang
func (s *Service) GetPartnerDetail(ctx context.Context, id string, lang i18n.Language) (*Partner, *DetailView, error) {
	partner, err := s.GetPartner(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return partner, BuildDetailView(partner, strings.TrimSpace(id), lang, s.media), nil
}
