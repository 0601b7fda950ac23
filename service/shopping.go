package service

import (
	"Cookhub/dao"
	"Cookhub/models"
	"Cookhub/pkg/ingredient"
	"Cookhub/pkg/utils"
	"Cookhub/types"
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

var _ IShoppingService = (*ShoppingService)(nil)

type IShoppingService interface {
	Options(ctx context.Context, slug string) (*types.ShoppingOptionsResponse, error)
	AddFromRecipe(ctx context.Context, userID uint64, slug string, keys []string) (*types.AddToShoppingListResponse, error)
	Get(ctx context.Context, userID uint64) (*types.ShoppingListResponse, error)
	AddItem(ctx context.Context, userID uint64, req *types.ShoppingItemRequest) (*types.ShoppingItemView, error)
	ToggleItem(ctx context.Context, userID, itemID uint64) (*types.ShoppingItemView, error)
	DeleteItem(ctx context.Context, userID, itemID uint64) error
	Clear(ctx context.Context, userID uint64) (int64, error)
}

type ShoppingService struct {
	ShoppingDAO *dao.Shopping
	RecipeDAO   *dao.Recipe
}

// Options 配料行及其内容 key，供前端勾选
func (s *ShoppingService) Options(ctx context.Context, slug string) (*types.ShoppingOptionsResponse, error) {
	recipe, err := findRecipe(ctx, s.RecipeDAO, slug)
	if err != nil {
		return nil, err
	}
	lines := ingredient.Parse(recipe.Ingredients)
	options := make([]types.ShoppingOption, 0, len(lines))
	for _, l := range lines {
		options = append(options, types.ShoppingOption{Index: l.Index, Key: l.Key, Text: l.Text})
	}
	return &types.ShoppingOptionsResponse{Recipe: toRecipeCard(recipe), Options: options}, nil
}

// AddFromRecipe 在同一事务内重新读取配料并按 key 解析，已不存在的 key 跳过并返回
func (s *ShoppingService) AddFromRecipe(ctx context.Context, userID uint64, slug string, keys []string) (*types.AddToShoppingListResponse, error) {
	resp := &types.AddToShoppingListResponse{Skipped: make([]string, 0)}

	err := s.ShoppingDAO.Transaction(ctx, func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.Where("slug = ?", slug).First(&recipe).Error; err != nil {
			if dao.IsNotFound(err) {
				return ErrRecipeNotFound
			}
			return err
		}

		found, missing := ingredient.Resolve(ingredient.Parse(recipe.Ingredients), keys)
		resp.Skipped = append(resp.Skipped, missing...)
		if len(found) == 0 {
			return nil
		}

		list, err := dao.GetOrCreateList(tx, userID)
		if err != nil {
			return err
		}

		now := time.Now()
		recipeID := recipe.ID
		items := make([]*models.ShoppingItem, 0, len(found))
		for _, l := range found {
			items = append(items, &models.ShoppingItem{
				ShoppingListID: list.ID,
				Name:           utils.Truncate(l.Text, 200),
				RecipeID:       &recipeID,
				LineKey:        l.Key,
				CreatedAt:      now,
			})
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		resp.Added = len(items)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("add to shopping list: %w", err)
	}

	resp.Message = fmt.Sprintf("Added %d ingredients to your shopping list", resp.Added)
	return resp, nil
}

func (s *ShoppingService) Get(ctx context.Context, userID uint64) (*types.ShoppingListResponse, error) {
	list, err := s.ShoppingDAO.GetOrCreateList(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get shopping list: %w", err)
	}
	items, err := s.ShoppingDAO.Items(ctx, list.ID)
	if err != nil {
		return nil, fmt.Errorf("list shopping items: %w", err)
	}

	resp := &types.ShoppingListResponse{
		ID:    list.ID,
		Name:  list.Name,
		Items: make([]*types.ShoppingItemView, 0, len(items)),
		Total: len(items),
	}
	for _, i := range items {
		if i.IsChecked {
			resp.Checked++
		}
		resp.Items = append(resp.Items, toShoppingItemView(i))
	}
	return resp, nil
}

func (s *ShoppingService) AddItem(ctx context.Context, userID uint64, req *types.ShoppingItemRequest) (*types.ShoppingItemView, error) {
	list, err := s.ShoppingDAO.GetOrCreateList(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get shopping list: %w", err)
	}
	item := &models.ShoppingItem{
		ShoppingListID: list.ID,
		Name:           strings.TrimSpace(req.Name),
		Quantity:       strings.TrimSpace(req.Quantity),
	}
	if err := s.ShoppingDAO.AddItem(ctx, item); err != nil {
		return nil, fmt.Errorf("add shopping item: %w", err)
	}
	return toShoppingItemView(item), nil
}

// ToggleItem 切换勾选状态
func (s *ShoppingService) ToggleItem(ctx context.Context, userID, itemID uint64) (*types.ShoppingItemView, error) {
	item, err := s.ownedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	item.IsChecked = !item.IsChecked
	if err := s.ShoppingDAO.SetChecked(ctx, item.ID, item.IsChecked); err != nil {
		return nil, fmt.Errorf("toggle shopping item: %w", err)
	}
	return toShoppingItemView(item), nil
}

func (s *ShoppingService) DeleteItem(ctx context.Context, userID, itemID uint64) error {
	list, err := s.ShoppingDAO.GetOrCreateList(ctx, userID)
	if err != nil {
		return fmt.Errorf("get shopping list: %w", err)
	}
	n, err := s.ShoppingDAO.DeleteItem(ctx, list.ID, itemID)
	if err != nil {
		return fmt.Errorf("delete shopping item: %w", err)
	}
	if n == 0 {
		return ErrShoppingItemNotFound
	}
	return nil
}

func (s *ShoppingService) Clear(ctx context.Context, userID uint64) (int64, error) {
	list, err := s.ShoppingDAO.GetOrCreateList(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("get shopping list: %w", err)
	}
	n, err := s.ShoppingDAO.Clear(ctx, list.ID)
	if err != nil {
		return 0, fmt.Errorf("clear shopping list: %w", err)
	}
	return n, nil
}

// ownedItem 只能操作自己清单中的条目
func (s *ShoppingService) ownedItem(ctx context.Context, userID, itemID uint64) (*models.ShoppingItem, error) {
	list, err := s.ShoppingDAO.GetOrCreateList(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get shopping list: %w", err)
	}
	item, err := s.ShoppingDAO.GetItem(ctx, list.ID, itemID)
	if dao.IsNotFound(err) {
		return nil, ErrShoppingItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get shopping item: %w", err)
	}
	return item, nil
}
