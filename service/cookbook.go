package service

import (
	"Cookhub/config"
	"Cookhub/dao"
	"Cookhub/models"
	"Cookhub/pkg/utils"
	"Cookhub/types"
	"context"
	"fmt"
	"strings"
)

var _ ICookbookService = (*CookbookService)(nil)

type ICookbookService interface {
	List(ctx context.Context, userID uint64) (*types.CookbookListResponse, error)
	Create(ctx context.Context, userID uint64, req *types.CookbookRequest) (*types.CookbookItem, error)
	Get(ctx context.Context, viewerID, id uint64) (*types.CookbookDetail, error)
	GetShared(ctx context.Context, viewerID uint64, code string) (*types.CookbookDetail, error)
	Update(ctx context.Context, userID, id uint64, req *types.CookbookRequest) (*types.CookbookItem, error)
	Delete(ctx context.Context, userID, id uint64) error
	AddRecipe(ctx context.Context, userID, id, recipeID uint64) error
	RemoveRecipe(ctx context.Context, userID, id, recipeID uint64) error
}

type CookbookService struct {
	Config      *config.Config
	CookbookDAO *dao.Cookbook
	RecipeDAO   *dao.Recipe
}

// List 自己的全部食谱书，外加其他用户公开的若干本
func (s *CookbookService) List(ctx context.Context, userID uint64) (*types.CookbookListResponse, error) {
	mine, err := s.CookbookDAO.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list own cookbooks: %w", err)
	}
	public, err := s.CookbookDAO.ListPublicOthers(ctx, userID, types.PublicCookbookLimit)
	if err != nil {
		return nil, fmt.Errorf("list public cookbooks: %w", err)
	}

	resp := &types.CookbookListResponse{
		Mine:   make([]*types.CookbookItem, 0, len(mine)),
		Public: make([]*types.CookbookItem, 0, len(public)),
	}
	for _, c := range mine {
		item, err := s.item(ctx, c)
		if err != nil {
			return nil, err
		}
		resp.Mine = append(resp.Mine, item)
	}
	for _, c := range public {
		item, err := s.item(ctx, c)
		if err != nil {
			return nil, err
		}
		resp.Public = append(resp.Public, item)
	}
	return resp, nil
}

func (s *CookbookService) Create(ctx context.Context, userID uint64, req *types.CookbookRequest) (*types.CookbookItem, error) {
	cookbook := &models.Cookbook{
		UserID:      userID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		IsPublic:    req.IsPublic,
		CoverImage:  req.CoverImage,
	}
	if err := s.CookbookDAO.Create(ctx, cookbook); err != nil {
		return nil, fmt.Errorf("create cookbook: %w", err)
	}
	return s.item(ctx, cookbook)
}

// Get 所有者或公开时可见
func (s *CookbookService) Get(ctx context.Context, viewerID, id uint64) (*types.CookbookDetail, error) {
	cookbook, err := s.CookbookDAO.GetDetail(ctx, id)
	if dao.IsNotFound(err) {
		return nil, ErrCookbookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get cookbook: %w", err)
	}
	if !cookbook.IsPublic && cookbook.UserID != viewerID {
		return nil, ErrPrivateCookbook
	}
	return s.detail(ctx, viewerID, cookbook)
}

// GetShared 分享码只对公开食谱书有效
func (s *CookbookService) GetShared(ctx context.Context, viewerID uint64, code string) (*types.CookbookDetail, error) {
	id, err := utils.DecodeHashID(s.Config.App.HashSalt, code)
	if err != nil {
		return nil, ErrCookbookNotFound
	}
	cookbook, err := s.CookbookDAO.GetDetail(ctx, id)
	if dao.IsNotFound(err) {
		return nil, ErrCookbookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get cookbook: %w", err)
	}
	if !cookbook.IsPublic {
		return nil, ErrCookbookNotFound
	}
	return s.detail(ctx, viewerID, cookbook)
}

func (s *CookbookService) Update(ctx context.Context, userID, id uint64, req *types.CookbookRequest) (*types.CookbookItem, error) {
	cookbook, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	cookbook.Name = strings.TrimSpace(req.Name)
	cookbook.Description = req.Description
	cookbook.IsPublic = req.IsPublic
	cookbook.CoverImage = req.CoverImage
	err = s.CookbookDAO.Db.WithContext(ctx).
		Model(cookbook).
		Select("name", "description", "is_public", "cover_image", "updated_at").
		Updates(cookbook).Error
	if err != nil {
		return nil, fmt.Errorf("update cookbook: %w", err)
	}
	return s.item(ctx, cookbook)
}

func (s *CookbookService) Delete(ctx context.Context, userID, id uint64) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.CookbookDAO.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete cookbook: %w", err)
	}
	return nil
}

func (s *CookbookService) AddRecipe(ctx context.Context, userID, id, recipeID uint64) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	exist, err := s.RecipeDAO.IsExist(ctx, "id = ?", recipeID)
	if err != nil {
		return err
	}
	if !exist {
		return ErrRecipeNotFound
	}
	if err := s.CookbookDAO.AddRecipe(ctx, id, recipeID); err != nil {
		return fmt.Errorf("add recipe to cookbook: %w", err)
	}
	return nil
}

func (s *CookbookService) RemoveRecipe(ctx context.Context, userID, id, recipeID uint64) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.CookbookDAO.RemoveRecipe(ctx, id, recipeID); err != nil {
		return fmt.Errorf("remove recipe from cookbook: %w", err)
	}
	return nil
}

func (s *CookbookService) owned(ctx context.Context, userID, id uint64) (*models.Cookbook, error) {
	cookbook, err := s.CookbookDAO.GetByID(ctx, id)
	if dao.IsNotFound(err) {
		return nil, ErrCookbookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get cookbook: %w", err)
	}
	if cookbook.UserID != userID {
		return nil, ErrForbidden
	}
	return cookbook, nil
}

func (s *CookbookService) item(ctx context.Context, c *models.Cookbook) (*types.CookbookItem, error) {
	count, err := s.CookbookDAO.RecipeCount(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("count cookbook recipes: %w", err)
	}
	item := &types.CookbookItem{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		IsPublic:     c.IsPublic,
		CoverImage:   c.CoverImage,
		Owner:        toUserBrief(c.User),
		RecipesCount: count,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
	if c.IsPublic {
		item.ShareCode = utils.GenHashID(s.Config.App.HashSalt, c.ID)
	}
	return item, nil
}

func (s *CookbookService) detail(ctx context.Context, viewerID uint64, c *models.Cookbook) (*types.CookbookDetail, error) {
	item, err := s.item(ctx, c)
	if err != nil {
		return nil, err
	}
	recipes := make([]*models.Recipe, 0, len(c.Recipes))
	for i := range c.Recipes {
		recipes = append(recipes, &c.Recipes[i])
	}
	return &types.CookbookDetail{
		CookbookItem: *item,
		IsOwner:      c.UserID == viewerID,
		Recipes:      toRecipeCards(recipes),
	}, nil
}
