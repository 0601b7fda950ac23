package service

import (
	"Cookhub/dao"
	"Cookhub/types"
	"context"
	"fmt"
)

var _ IFavoriteService = (*FavoriteService)(nil)

type IFavoriteService interface {
	Toggle(ctx context.Context, userID uint64, slug string) (*types.FavoriteResponse, error)
	List(ctx context.Context, userID uint64, page int) (*types.Page[*types.RecipeCard], error)
}

type FavoriteService struct {
	FavoriteDAO *dao.Favorite
	RecipeDAO   *dao.Recipe
}

// Toggle 收藏不产生通知
func (s *FavoriteService) Toggle(ctx context.Context, userID uint64, slug string) (*types.FavoriteResponse, error) {
	recipe, err := findRecipe(ctx, s.RecipeDAO, slug)
	if err != nil {
		return nil, err
	}

	favorited, _, err := s.FavoriteDAO.Toggle(ctx, userID, recipe.ID)
	if err != nil {
		return nil, fmt.Errorf("toggle favorite: %w", err)
	}

	count, err := s.RecipeDAO.FavoriteCount(ctx, recipe.ID)
	if err != nil {
		return nil, fmt.Errorf("count favorites: %w", err)
	}

	msg := "Recipe removed from favorites"
	if favorited {
		msg = "Recipe added to favorites"
	}
	return &types.FavoriteResponse{Favorited: favorited, Count: count, Message: msg}, nil
}

func (s *FavoriteService) List(ctx context.Context, userID uint64, page int) (*types.Page[*types.RecipeCard], error) {
	list, total, err := s.FavoriteDAO.ListRecipes(ctx, userID, page, types.FavoritePageSize)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return types.NewPage(toRecipeCards(list), total, page, types.FavoritePageSize), nil
}
