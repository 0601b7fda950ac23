package service

import (
	"Cookhub/dao"
	"Cookhub/models"
	"Cookhub/pkg/utils"
	"Cookhub/types"
	"context"
	"fmt"
	"strings"

	cmap "github.com/orcaman/concurrent-map/v2"
)

var _ ICatalogService = (*CatalogService)(nil)

type ICatalogService interface {
	ListCategories(ctx context.Context) ([]*types.CategoryItem, error)
	CreateCategory(ctx context.Context, req *types.CreateCategoryRequest) (*types.CategoryItem, error)
	CategoryBySlug(ctx context.Context, slug string) (*models.Category, error)
	ListTags(ctx context.Context) ([]*types.TagItem, error)
	TagBySlug(ctx context.Context, slug string) (*models.Tag, error)
}

type CatalogService struct {
	CategoryDAO *dao.Category
	TagDAO      *dao.Tag

	// slug -> 分类，分类只增不改
	categories cmap.ConcurrentMap[string, *models.Category]
}

func NewCatalogService(categoryDAO *dao.Category, tagDAO *dao.Tag) *CatalogService {
	return &CatalogService{
		CategoryDAO: categoryDAO,
		TagDAO:      tagDAO,
		categories:  cmap.New[*models.Category](),
	}
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]*types.CategoryItem, error) {
	list, err := s.CategoryDAO.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	items := make([]*types.CategoryItem, 0, len(list))
	for _, c := range list {
		s.categories.Set(c.Slug, c)
		items = append(items, toCategoryItem(c))
	}
	return items, nil
}

// CreateCategory slug 缺省时由名称生成
func (s *CatalogService) CreateCategory(ctx context.Context, req *types.CreateCategoryRequest) (*types.CategoryItem, error) {
	name := strings.TrimSpace(req.Name)
	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = utils.Slugify(name)
	}

	category := &models.Category{Name: name, Slug: slug, Description: req.Description}
	if err := s.CategoryDAO.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	s.categories.Set(category.Slug, category)
	return toCategoryItem(category), nil
}

func (s *CatalogService) CategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	if c, ok := s.categories.Get(slug); ok {
		return c, nil
	}
	c, err := s.CategoryDAO.FindBySlug(ctx, slug)
	if dao.IsNotFound(err) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}
	s.categories.Set(slug, c)
	return c, nil
}

func (s *CatalogService) ListTags(ctx context.Context) ([]*types.TagItem, error) {
	list, err := s.TagDAO.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	items := make([]*types.TagItem, 0, len(list))
	for _, t := range list {
		items = append(items, &types.TagItem{ID: t.ID, Name: t.Name, Slug: t.Slug})
	}
	return items, nil
}

func (s *CatalogService) TagBySlug(ctx context.Context, slug string) (*models.Tag, error) {
	t, err := s.TagDAO.FindBySlug(ctx, slug)
	if dao.IsNotFound(err) {
		return nil, ErrTagNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find tag: %w", err)
	}
	return t, nil
}
