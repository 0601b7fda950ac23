package service

import (
	"Cookhub/dao"
	"Cookhub/models"
	"Cookhub/types"
	"context"
	"fmt"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	Toggle(ctx context.Context, userID uint64, slug string) (*types.LikeResponse, error)
}

type LikeService struct {
	LikeDAO   *dao.Like
	RecipeDAO *dao.Recipe
	Notice    INoticeService
}

// Toggle 点赞/取消点赞，只有真正写入的那次调用才通知作者
func (s *LikeService) Toggle(ctx context.Context, userID uint64, slug string) (*types.LikeResponse, error) {
	recipe, err := findRecipe(ctx, s.RecipeDAO, slug)
	if err != nil {
		return nil, err
	}

	liked, inserted, err := s.LikeDAO.Toggle(ctx, userID, recipe.ID)
	if err != nil {
		return nil, fmt.Errorf("toggle like: %w", err)
	}
	if inserted {
		s.Notice.NotifyLike(ctx, userID, recipe)
	}

	count, err := s.RecipeDAO.LikeCount(ctx, recipe.ID)
	if err != nil {
		return nil, fmt.Errorf("count likes: %w", err)
	}
	return &types.LikeResponse{Liked: liked, Count: count}, nil
}

func findRecipe(ctx context.Context, recipes *dao.Recipe, slug string) (*models.Recipe, error) {
	recipe, err := recipes.FindBySlug(ctx, slug)
	if dao.IsNotFound(err) {
		return nil, ErrRecipeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find recipe: %w", err)
	}
	return recipe, nil
}
