package service

import (
	"Cookhub/dao"
	"Cookhub/models"
	"Cookhub/types"
	"context"
	"fmt"
	"math"
)

var _ IRatingService = (*RatingService)(nil)

type IRatingService interface {
	Rate(ctx context.Context, userID uint64, slug string, score int) (*types.RateResponse, error)
}

type RatingService struct {
	RatingDAO *dao.Rating
	RecipeDAO *dao.Recipe
}

// Rate 分数越界时不写库
func (s *RatingService) Rate(ctx context.Context, userID uint64, slug string, score int) (*types.RateResponse, error) {
	if score < models.MinScore || score > models.MaxScore {
		return nil, ErrInvalidScore
	}
	recipe, err := findRecipe(ctx, s.RecipeDAO, slug)
	if err != nil {
		return nil, err
	}

	if err := s.RatingDAO.Upsert(ctx, userID, recipe.ID, score); err != nil {
		return nil, fmt.Errorf("upsert rating: %w", err)
	}

	stats, err := s.RecipeDAO.RatingStats(ctx, recipe.ID)
	if err != nil {
		return nil, fmt.Errorf("rating stats: %w", err)
	}
	return &types.RateResponse{
		Success: true,
		Score:   score,
		Average: roundRating(stats.Average),
		Count:   stats.Count,
	}, nil
}

// roundRating 保留一位小数
func roundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}
