package dao

import (
	"Cookhub/models"
	"Cookhub/pkg/utils"
	"context"
	"strings"

	"gorm.io/gorm"
)

type Tag struct {
	Repo[models.Tag]
}

func NewTag(db *gorm.DB) *Tag {
	return &Tag{
		Repo: NewRepo[models.Tag](db),
	}
}

func (d *Tag) List(ctx context.Context) ([]*models.Tag, error) {
	var list []*models.Tag
	err := d.Db.WithContext(ctx).Order("name ASC").Find(&list).Error
	return list, err
}

func (d *Tag) FindBySlug(ctx context.Context, slug string) (*models.Tag, error) {
	return d.FindByWhere(ctx, "slug = ?", slug)
}

// GetOrCreateTags 名称去空格转小写后查找，不存在则创建
func GetOrCreateTags(tx *gorm.DB, names []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		tag := models.Tag{Name: name}
		err := tx.Where("name = ?", name).
			Attrs(models.Tag{Slug: utils.Slugify(name)}).
			FirstOrCreate(&tag).Error
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}
