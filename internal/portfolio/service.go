package portfolio

import (
	"context"
	"time"

	"goldrates/internal/adapters"
	"goldrates/internal/domain"

	"github.com/google/uuid"
)

type Service struct {
	repo adapters.PortfolioRepository
}

func (s *Service) Create(ctx context.Context, ownerID string, in CreateInput) (domain.PortfolioItem, error) {
	now := time.Now().UTC()
	item := domain.PortfolioItem{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Type:      in.Type,
		Name:      in.Name,
		NameEn:    in.NameEn,
		Quantity:  in.Quantity,
		BuyPrice:  in.BuyPrice,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return domain.PortfolioItem{}, err
	}
	return item, nil
}

func (s *Service) List(ctx context.Context, ownerID string) ([]domain.PortfolioItem, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, ownerID string, patch domain.PortfolioItemPatch) (domain.PortfolioItem, error) {
	return s.repo.Update(ctx, id, ownerID, patch)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID, ownerID string) error {
	return s.repo.Delete(ctx, id, ownerID)
}

func NewService(repo adapters.PortfolioRepository) *Service {
	return &Service{repo: repo}
}
