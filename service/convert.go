package service

import (
	"Cookhub/models"
	"Cookhub/pkg/ingredient"
	"Cookhub/types"
)

func toUserBrief(u *models.User) *types.UserBrief {
	if u == nil {
		return nil
	}
	brief := &types.UserBrief{ID: u.ID, Username: u.Username}
	if u.Profile != nil {
		brief.Avatar = u.Profile.Avatar
	}
	return brief
}

func toCategoryItem(c *models.Category) *types.CategoryItem {
	if c == nil {
		return nil
	}
	return &types.CategoryItem{ID: c.ID, Name: c.Name, Slug: c.Slug, Description: c.Description}
}

func toRecipeCard(r *models.Recipe) *types.RecipeCard {
	image := r.Image
	if image == "" {
		image = models.DefaultRecipeImage
	}
	return &types.RecipeCard{
		ID:          r.ID,
		Title:       r.Title,
		Slug:        r.Slug,
		Description: r.Description,
		Image:       image,
		CookingTime: r.CookingTime,
		Difficulty:  string(r.Difficulty),
		Author:      toUserBrief(r.Author),
		Category:    toCategoryItem(r.Category),
		CreatedAt:   r.CreatedAt,
	}
}

func toRecipeCards(list []*models.Recipe) []*types.RecipeCard {
	cards := make([]*types.RecipeCard, 0, len(list))
	for _, r := range list {
		cards = append(cards, toRecipeCard(r))
	}
	return cards
}

func toRecipeItem(r *models.Recipe) *types.RecipeItem {
	item := &types.RecipeItem{
		RecipeCard:    *toRecipeCard(r),
		Ingredients:   ingredient.Texts(ingredient.Parse(r.Ingredients)),
		Instructions:  r.Instructions,
		Servings:      r.Servings,
		Calories:      r.Calories,
		Proteins:      r.Proteins,
		Fats:          r.Fats,
		Carbohydrates: r.Carbohydrates,
		IsPublished:   r.IsPublished,
		PublishedAt:   r.PublishedAt,
		UpdatedAt:     r.UpdatedAt,
		Tags:          make([]types.TagItem, 0, len(r.Tags)),
		Steps:         make([]types.RecipeStepItem, 0, len(r.Steps)),
	}
	for _, t := range r.Tags {
		item.Tags = append(item.Tags, types.TagItem{ID: t.ID, Name: t.Name, Slug: t.Slug})
	}
	for _, s := range r.Steps {
		item.Steps = append(item.Steps, types.RecipeStepItem{
			StepNumber:  s.StepNumber,
			Title:       s.Title,
			Description: s.Description,
			Image:       s.Image,
			Duration:    s.Duration,
		})
	}
	return item
}

func toNotificationItem(n *models.Notification) *types.NotificationItem {
	return &types.NotificationItem{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Link:      n.Link,
		IsRead:    n.IsRead,
		Sender:    toUserBrief(n.Sender),
		CreatedAt: n.CreatedAt,
	}
}

func toShoppingItemView(i *models.ShoppingItem) *types.ShoppingItemView {
	return &types.ShoppingItemView{
		ID:        i.ID,
		Name:      i.Name,
		Quantity:  i.Quantity,
		IsChecked: i.IsChecked,
		RecipeID:  i.RecipeID,
		CreatedAt: i.CreatedAt,
	}
}
