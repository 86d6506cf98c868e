package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/sweetshop/inventory-system/internal/api/metrics"
	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
)

const defaultListLimit = 100

// SweetService implements the catalog use cases on top of SweetRepository.
// The quantity invariants live in the repository's conditional updates; this
// layer adds defaults, logging, and metrics.
type SweetService struct {
	repo ports.SweetRepository
	log  zerolog.Logger
}

func NewSweetService(repo ports.SweetRepository, log zerolog.Logger) *SweetService {
	return &SweetService{repo: repo, log: log}
}

func (s *SweetService) Create(ctx context.Context, input ports.CreateSweetInput) (*domain.Sweet, error) {
	sweet := &domain.Sweet{
		Name:        input.Name,
		Category:    input.Category,
		Price:       input.Price,
		Quantity:    input.Quantity,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}

	created, err := s.repo.Create(ctx, sweet)
	if err != nil {
		s.log.Error().Err(err).Str("name", input.Name).Msg("failed to create sweet")
		return nil, err
	}

	metrics.SweetsCreatedTotal.WithLabelValues(created.Category).Inc()
	s.log.Info().Uint("sweet_id", created.ID).Str("name", created.Name).Msg("sweet created")
	return created, nil
}

func (s *SweetService) List(ctx context.Context, skip, limit int) ([]*domain.Sweet, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.repo.List(ctx, skip, limit)
}

func (s *SweetService) Get(ctx context.Context, id uint) (*domain.Sweet, error) {
	return s.repo.Get(ctx, id)
}

func (s *SweetService) Update(ctx context.Context, id uint, patch ports.SweetPatch) (*domain.Sweet, error) {
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.log.Info().Uint("sweet_id", id).Msg("sweet updated")
	return updated, nil
}

func (s *SweetService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Uint("sweet_id", id).Msg("sweet deleted")
	return nil
}

func (s *SweetService) Search(ctx context.Context, filter ports.SearchFilter) ([]*domain.Sweet, error) {
	return s.repo.Search(ctx, filter)
}

// Purchase decrements stock all-or-nothing. A rejected purchase leaves the
// row untouched and reports "unavailable" without revealing whether the id
// exists.
func (s *SweetService) Purchase(ctx context.Context, id uint, quantity int) (*domain.Sweet, error) {
	sweet, err := s.repo.DecrementStock(ctx, id, quantity)
	if err != nil {
		if errors.Is(err, domain.ErrSweetUnavailable) {
			metrics.PurchasesTotal.WithLabelValues("rejected").Inc()
			s.log.Info().Uint("sweet_id", id).Int("quantity", quantity).Msg("purchase rejected")
		}
		return nil, err
	}

	metrics.PurchasesTotal.WithLabelValues("ok").Inc()
	s.log.Info().Uint("sweet_id", id).Int("quantity", quantity).Int("remaining", sweet.Quantity).Msg("sweet purchased")
	return sweet, nil
}

func (s *SweetService) Restock(ctx context.Context, id uint, quantity int) (*domain.Sweet, error) {
	sweet, err := s.repo.IncrementStock(ctx, id, quantity)
	if err != nil {
		return nil, err
	}

	metrics.RestocksTotal.Inc()
	s.log.Info().Uint("sweet_id", id).Int("quantity", quantity).Int("on_hand", sweet.Quantity).Msg("sweet restocked")
	return sweet, nil
}
