package service

import (
	"Cookhub/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Categories(t *testing.T) {
	e := newTestEnv(t)

	c, err := e.Catalog.CreateCategory(e.ctx, &types.CreateCategoryRequest{Name: "Main Dishes"})
	require.NoError(t, err)
	assert.Equal(t, "main-dishes", c.Slug)
	_, err = e.Catalog.CreateCategory(e.ctx, &types.CreateCategoryRequest{Name: "Breakfast", Slug: "morning"})
	require.NoError(t, err)

	list, err := e.Catalog.ListCategories(e.ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	found, err := e.Catalog.CategoryBySlug(e.ctx, "morning")
	require.NoError(t, err)
	assert.Equal(t, "Breakfast", found.Name)

	_, err = e.Catalog.CategoryBySlug(e.ctx, "missing")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCatalog_Tags(t *testing.T) {
	e := newTestEnv(t)
	alice := e.user(t, "alice")
	e.recipe(t, alice, "Salad", func(req *types.RecipeRequest) {
		req.Tags = types.TagList{"Summer", "green"}
	})

	tags, err := e.Catalog.ListTags(e.ctx)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "green", tags[0].Name)
	assert.Equal(t, "summer", tags[1].Slug)

	_, err = e.Catalog.TagBySlug(e.ctx, "winter")
	assert.ErrorIs(t, err, ErrTagNotFound)
}
