package services

import (
	"context"

	"rently-backend/internal/models"
	"rently-backend/internal/repositories"
)

type FavoriteService struct {
	Repo *repositories.FavoriteRepository
}

func NewFavoriteService(repo *repositories.FavoriteRepository) *FavoriteService {
	return &FavoriteService{Repo: repo}
}

func (s *FavoriteService) List(ctx context.Context, userID int) ([]models.Favorite, error) {
	return s.Repo.ListByUser(ctx, userID)
}

func (s *FavoriteService) Save(ctx context.Context, userID int, listingID string) (*models.Favorite, error) {
	if listingID == "" {
		return nil, invalidf("listing_id", "required")
	}
	return s.Repo.Add(ctx, userID, listingID)
}

func (s *FavoriteService) Remove(ctx context.Context, userID int, listingID string) error {
	if listingID == "" {
		return invalidf("listing_id", "required")
	}
	return s.Repo.Remove(ctx, userID, listingID)
}
