package service

import (
	"Cookhub/dao"
	"Cookhub/models"
	"Cookhub/pkg/utils"
	"Cookhub/types"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ IRecipeService = (*RecipeService)(nil)

type IRecipeService interface {
	Create(ctx context.Context, userID uint64, req *types.RecipeRequest) (*types.RecipeItem, error)
	Update(ctx context.Context, userID uint64, slug string, req *types.RecipeRequest) (*types.RecipeItem, error)
	Delete(ctx context.Context, userID uint64, slug string) error
	Detail(ctx context.Context, viewerID uint64, slug string) (*types.RecipeDetailResponse, error)

	List(ctx context.Context, page int) (*types.Page[*types.RecipeCard], error)
	ListByCategory(ctx context.Context, slug string, page int) (*types.Page[*types.RecipeCard], error)
	ListByTag(ctx context.Context, slug string, page int) (*types.Page[*types.RecipeCard], error)
	Search(ctx context.Context, q string, page int) (*types.Page[*types.RecipeCard], error)
}

type RecipeService struct {
	RecipeDAO   *dao.Recipe
	CategoryDAO *dao.Category
	LikeDAO     *dao.Like
	FavoriteDAO *dao.Favorite
	RatingDAO   *dao.Rating
	Catalog     ICatalogService
	Comments    ICommentService
	Notice      INoticeService
}

// Create 已发布的食谱在提交后通知作者的粉丝
func (s *RecipeService) Create(ctx context.Context, userID uint64, req *types.RecipeRequest) (*types.RecipeItem, error) {
	if err := s.checkCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	base := strings.TrimSpace(req.Slug)
	if base == "" {
		base = utils.Slugify(req.Title)
	}
	if base == "" {
		base = "recipe"
	}
	slug, err := s.RecipeDAO.UniqueSlug(ctx, base, 0)
	if err != nil {
		return nil, fmt.Errorf("unique slug: %w", err)
	}

	recipe := &models.Recipe{AuthorID: userID, Slug: slug, IsPublished: true}
	applyRecipe(recipe, req)
	if recipe.IsPublished {
		now := time.Now()
		recipe.PublishedAt = &now
	}

	err = s.RecipeDAO.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(recipe).Error; err != nil {
			return err
		}
		return saveAssociations(tx, recipe, req, true)
	})
	if err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}

	if recipe.IsPublished {
		s.Notice.NotifyRecipePublished(ctx, recipe)
	}
	return s.reload(ctx, recipe.Slug)
}

// Update 仅作者可修改，首次发布时触发扇出
func (s *RecipeService) Update(ctx context.Context, userID uint64, slug string, req *types.RecipeRequest) (*types.RecipeItem, error) {
	recipe, err := findRecipe(ctx, s.RecipeDAO, slug)
	if err != nil {
		return nil, err
	}
	if recipe.AuthorID != userID {
		return nil, ErrForbidden
	}
	if err := s.checkCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	if newSlug := strings.TrimSpace(req.Slug); newSlug != "" && newSlug != recipe.Slug {
		if recipe.Slug, err = s.RecipeDAO.UniqueSlug(ctx, newSlug, recipe.ID); err != nil {
			return nil, fmt.Errorf("unique slug: %w", err)
		}
	}

	applyRecipe(recipe, req)
	firstPublish := recipe.IsPublished && recipe.PublishedAt == nil
	if firstPublish {
		now := time.Now()
		recipe.PublishedAt = &now
	}

	err = s.RecipeDAO.Transaction(ctx, func(tx *gorm.DB) error {
		err := tx.Model(&models.Recipe{}).Where("id = ?", recipe.ID).Updates(map[string]any{
			"title":         recipe.Title,
			"slug":          recipe.Slug,
			"category_id":   recipe.CategoryID,
			"description":   recipe.Description,
			"ingredients":   recipe.Ingredients,
			"instructions":  recipe.Instructions,
			"cooking_time":  recipe.CookingTime,
			"difficulty":    recipe.Difficulty,
			"image":         recipe.Image,
			"servings":      recipe.Servings,
			"calories":      recipe.Calories,
			"proteins":      recipe.Proteins,
			"fats":          recipe.Fats,
			"carbohydrates": recipe.Carbohydrates,
			"is_published":  recipe.IsPublished,
			"published_at":  recipe.PublishedAt,
			"updated_at":    time.Now(),
		}).Error
		if err != nil {
			return err
		}
		return saveAssociations(tx, recipe, req, req.Steps != nil)
	})
	if err != nil {
		return nil, fmt.Errorf("update recipe: %w", err)
	}

	if firstPublish {
		s.Notice.NotifyRecipePublished(ctx, recipe)
	}
	return s.reload(ctx, recipe.Slug)
}

// Delete 级联删除评论、点赞、收藏、评分、步骤及关联关系
func (s *RecipeService) Delete(ctx context.Context, userID uint64, slug string) error {
	recipe, err := findRecipe(ctx, s.RecipeDAO, slug)
	if err != nil {
		return err
	}
	if recipe.AuthorID != userID {
		return ErrForbidden
	}
	err = s.RecipeDAO.Transaction(ctx, func(tx *gorm.DB) error {
		return dao.DeleteCascade(tx, recipe.ID)
	})
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	return nil
}

// Detail 各项统计并发加载，全部实时计算
func (s *RecipeService) Detail(ctx context.Context, viewerID uint64, slug string) (*types.RecipeDetailResponse, error) {
	recipe, err := s.RecipeDAO.GetDetail(ctx, slug)
	if dao.IsNotFound(err) {
		return nil, ErrRecipeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get recipe: %w", err)
	}

	resp := &types.RecipeDetailResponse{
		Recipe:      toRecipeItem(recipe),
		IsAuthor:    viewerID == recipe.AuthorID,
		Comments:    make([]*types.CommentItem, 0),
		Recommended: make([]*types.RecipeCard, 0),
	}

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) (err error) {
		resp.LikesCount, err = s.RecipeDAO.LikeCount(ctx, recipe.ID)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		resp.FavoritesCount, err = s.RecipeDAO.FavoriteCount(ctx, recipe.ID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		stats, err := s.RecipeDAO.RatingStats(ctx, recipe.ID)
		resp.AverageRating, resp.RatingCount = roundRating(stats.Average), stats.Count
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		resp.Comments, err = s.Comments.ListByRecipe(ctx, recipe.ID)
		return err
	})
	if recipe.CategoryID != nil {
		p.Go(func(ctx context.Context) error {
			list, err := s.RecipeDAO.Recommended(ctx, *recipe.CategoryID, recipe.ID, types.RecommendedLimit)
			resp.Recommended = toRecipeCards(list)
			return err
		})
	}
	if viewerID > 0 {
		p.Go(func(ctx context.Context) (err error) {
			resp.IsLiked, err = s.LikeDAO.IsLiked(ctx, viewerID, recipe.ID)
			return err
		})
		p.Go(func(ctx context.Context) (err error) {
			resp.IsFavorited, err = s.FavoriteDAO.IsFavorited(ctx, viewerID, recipe.ID)
			return err
		})
		p.Go(func(ctx context.Context) (err error) {
			resp.UserRating, err = s.RatingDAO.UserScore(ctx, viewerID, recipe.ID)
			return err
		})
	}
	if err := p.Wait(); err != nil {
		return nil, fmt.Errorf("load recipe detail: %w", err)
	}
	return resp, nil
}

func (s *RecipeService) List(ctx context.Context, page int) (*types.Page[*types.RecipeCard], error) {
	list, total, err := s.RecipeDAO.ListPublished(ctx, page, types.RecipePageSize)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return types.NewPage(toRecipeCards(list), total, page, types.RecipePageSize), nil
}

func (s *RecipeService) ListByCategory(ctx context.Context, slug string, page int) (*types.Page[*types.RecipeCard], error) {
	category, err := s.Catalog.CategoryBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	list, total, err := s.RecipeDAO.ListByCategory(ctx, category.ID, page, types.RecipePageSize)
	if err != nil {
		return nil, fmt.Errorf("list recipes by category: %w", err)
	}
	return types.NewPage(toRecipeCards(list), total, page, types.RecipePageSize), nil
}

func (s *RecipeService) ListByTag(ctx context.Context, slug string, page int) (*types.Page[*types.RecipeCard], error) {
	tag, err := s.Catalog.TagBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	list, total, err := s.RecipeDAO.ListByTag(ctx, tag.ID, page, types.RecipePageSize)
	if err != nil {
		return nil, fmt.Errorf("list recipes by tag: %w", err)
	}
	return types.NewPage(toRecipeCards(list), total, page, types.RecipePageSize), nil
}

// Search q 为空时等同于首页列表
func (s *RecipeService) Search(ctx context.Context, q string, page int) (*types.Page[*types.RecipeCard], error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return s.List(ctx, page)
	}
	list, total, err := s.RecipeDAO.Search(ctx, q, page, types.RecipePageSize)
	if err != nil {
		return nil, fmt.Errorf("search recipes: %w", err)
	}
	return types.NewPage(toRecipeCards(list), total, page, types.RecipePageSize), nil
}

func (s *RecipeService) checkCategory(ctx context.Context, id *uint64) error {
	if id == nil {
		return nil
	}
	exist, err := s.CategoryDAO.IsExist(ctx, "id = ?", *id)
	if err != nil {
		return err
	}
	if !exist {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *RecipeService) reload(ctx context.Context, slug string) (*types.RecipeItem, error) {
	recipe, err := s.RecipeDAO.GetDetail(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("reload recipe: %w", err)
	}
	return toRecipeItem(recipe), nil
}

func applyRecipe(r *models.Recipe, req *types.RecipeRequest) {
	r.Title = strings.TrimSpace(req.Title)
	r.CategoryID = req.CategoryID
	r.Description = req.Description
	r.Ingredients = req.Ingredients
	r.Instructions = req.Instructions
	r.CookingTime = req.CookingTime
	r.Difficulty = models.Difficulty(req.Difficulty)
	r.Image = req.Image
	r.Servings = req.Servings
	if r.Servings <= 0 {
		r.Servings = 1
	}
	r.Calories = req.Calories
	r.Proteins = req.Proteins
	r.Fats = req.Fats
	r.Carbohydrates = req.Carbohydrates
	if req.IsPublished != nil {
		r.IsPublished = *req.IsPublished
	}
}

// saveAssociations 标签总是整体替换，步骤按需替换
func saveAssociations(tx *gorm.DB, recipe *models.Recipe, req *types.RecipeRequest, replaceSteps bool) error {
	tags, err := dao.GetOrCreateTags(tx, req.Tags)
	if err != nil {
		return err
	}
	if err := dao.ReplaceTags(tx, recipe, tags); err != nil {
		return err
	}
	if !replaceSteps {
		return nil
	}

	steps := make([]models.RecipeStep, 0, len(req.Steps))
	for i, st := range req.Steps {
		number := st.StepNumber
		if number <= 0 {
			number = i + 1
		}
		steps = append(steps, models.RecipeStep{
			StepNumber:  number,
			Title:       st.Title,
			Description: st.Description,
			Image:       st.Image,
			Duration:    st.Duration,
		})
	}
	return dao.ReplaceSteps(tx, recipe.ID, steps)
}
