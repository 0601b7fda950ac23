package service

import (
	"Cookhub/models"
	"Cookhub/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRecipe_SlugCollision(t *testing.T) {
	e := newTestEnv(t)
	alice := e.user(t, "alice")

	r1 := e.recipe(t, alice, "Banana Bread")
	r2 := e.recipe(t, alice, "Banana Bread")
	r3 := e.recipe(t, alice, "banana bread!")
	assert.Equal(t, "banana-bread", r1.Slug)
	assert.Equal(t, "banana-bread-2", r2.Slug)
	assert.Equal(t, "banana-bread-3", r3.Slug)

	r4 := e.recipe(t, alice, "!!!")
	assert.Equal(t, "recipe", r4.Slug)
}

func TestCreateRecipe_TagsStepsAndDefaults(t *testing.T) {
	e := newTestEnv(t)
	alice := e.user(t, "alice")

	r := e.recipe(t, alice, "Omelette", func(req *types.RecipeRequest) {
		req.Tags = types.TagList{"Breakfast", " eggs ", "breakfast"}
		req.Steps = []types.RecipeStepInput{
			{Title: "Whisk", Description: "Whisk the eggs"},
			{StepNumber: 5, Title: "Cook"},
		}
	})

	assert.True(t, r.IsPublished)
	assert.NotNil(t, r.PublishedAt)
	assert.Equal(t, 1, r.Servings)
	assert.Equal(t, models.DefaultRecipeImage, r.Image)
	assert.Equal(t, []string{"2 eggs", "1 cup flour"}, r.Ingredients)

	names := make([]string, 0, len(r.Tags))
	for _, tag := range r.Tags {
		names = append(names, tag.Name)
	}
	assert.ElementsMatch(t, []string{"breakfast", "eggs"}, names)

	require.Len(t, r.Steps, 2)
	assert.Equal(t, 1, r.Steps[0].StepNumber)
	assert.Equal(t, 5, r.Steps[1].StepNumber)
}

func TestCreateRecipe_UnknownCategory(t *testing.T) {
	e := newTestEnv(t)
	alice := e.user(t, "alice")
	id := uint64(42)

	_, err := e.Recipes.Create(e.ctx, alice.ID, &types.RecipeRequest{Title: "X", Difficulty: "easy", CategoryID: &id})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestUpdateRecipe(t *testing.T) {
	e := newTestEnv(t)
	alice := e.user(t, "alice")
	bob := e.user(t, "bob")
	r := e.recipe(t, alice, "Chili", func(req *types.RecipeRequest) {
		req.Tags = types.TagList{"spicy"}
		req.Steps = []types.RecipeStepInput{{Title: "Brown the meat"}}
	})

	req := &types.RecipeRequest{Title: "Chili con carne", Difficulty: "medium", Tags: types.TagList{"beans"}}
	_, err := e.Recipes.Update(e.ctx, bob.ID, r.Slug, req)
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := e.Recipes.Update(e.ctx, alice.ID, r.Slug, req)
	require.NoError(t, err)
	assert.Equal(t, "Chili con carne", updated.Title)
	assert.Equal(t, "chili", updated.Slug)
	assert.Equal(t, "medium", updated.Difficulty)
	require.Len(t, updated.Tags, 1)
	assert.Equal(t, "beans", updated.Tags[0].Name)
	// 未提交步骤时保留原步骤
	require.Len(t, updated.Steps, 1)

	req.Steps = []types.RecipeStepInput{}
	updated, err = e.Recipes.Update(e.ctx, alice.ID, r.Slug, req)
	require.NoError(t, err)
	assert.Empty(t, updated.Steps)

	e.recipe(t, alice, "Taken")
	req.Slug = "taken"
	updated, err = e.Recipes.Update(e.ctx, alice.ID, r.Slug, req)
	require.NoError(t, err)
	assert.Equal(t, "taken-2", updated.Slug)
}

func TestDeleteRecipe_Cascades(t *testing.T) {
	e := newTestEnv(t)
	alice := e.user(t, "alice")
	bob := e.user(t, "bob")
	r := e.recipe(t, alice, "Lasagna", func(req *types.RecipeRequest) {
		req.Tags = types.TagList{"pasta"}
		req.Steps = []types.RecipeStepInput{{Title: "Layer"}}
	})

	_, err := e.Likes.Toggle(e.ctx, bob.ID, r.Slug)
	require.NoError(t, err)
	_, err = e.Favorites.Toggle(e.ctx, bob.ID, r.Slug)
	require.NoError(t, err)
	_, err = e.Ratings.Rate(e.ctx, bob.ID, r.Slug, 4)
	require.NoError(t, err)
	root, err := e.Comments.Create(e.ctx, bob.ID, r.Slug, &types.CreateCommentRequest{Content: "nice"})
	require.NoError(t, err)
	_, err = e.Comments.Create(e.ctx, alice.ID, r.Slug, &types.CreateCommentRequest{Content: "ty", ParentID: &root.ID})
	require.NoError(t, err)
	book, err := e.Cookbooks.Create(e.ctx, bob.ID, &types.CookbookRequest{Name: "Faves"})
	require.NoError(t, err)
	require.NoError(t, e.Cookbooks.AddRecipe(e.ctx, bob.ID, book.ID, r.ID))
	added, err := e.Shopping.AddFromRecipe(e.ctx, bob.ID, r.Slug, []string{optionKeys(t, e, r.Slug)[0]})
	require.NoError(t, err)
	require.Equal(t, 1, added.Added)

	assert.ErrorIs(t, e.Recipes.Delete(e.ctx, bob.ID, r.Slug), ErrForbidden)
	require.NoError(t, e.Recipes.Delete(e.ctx, alice.ID, r.Slug))

	for _, m := range []any{&models.Recipe{}, &models.Like{}, &models.Favorite{}, &models.Rating{}, &models.Comment{}, &models.RecipeStep{}} {
		var count int64
		require.NoError(t, e.db.Model(m).Count(&count).Error)
		assert.Zero(t, count, "%T", m)
	}
	var links int64
	require.NoError(t, e.db.Table("recipe_tags").Count(&links).Error)
	assert.Zero(t, links)
	require.NoError(t, e.db.Table("cookbook_recipes").Count(&links).Error)
	assert.Zero(t, links)

	// 购物清单条目保留，只断开来源
	list, err := e.Shopping.Get(e.ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Nil(t, list.Items[0].RecipeID)

	_, err = e.Recipes.Detail(e.ctx, 0, r.Slug)
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestRecipeDetail(t *testing.T) {
	e := newTestEnv(t)
	alice := e.user(t, "alice")
	bob := e.user(t, "bob")
	category, err := e.Catalog.CreateCategory(e.ctx, &types.CreateCategoryRequest{Name: "Desserts"})
	require.NoError(t, err)
	inCategory := func(req *types.RecipeRequest) { req.CategoryID = &category.ID }

	r := e.recipe(t, alice, "Tiramisu", inCategory)
	e.recipe(t, alice, "Panna Cotta", inCategory)
	e.recipe(t, alice, "Hidden Cake", inCategory, draft)

	_, err = e.Likes.Toggle(e.ctx, bob.ID, r.Slug)
	require.NoError(t, err)
	_, err = e.Ratings.Rate(e.ctx, bob.ID, r.Slug, 5)
	require.NoError(t, err)

	detail, err := e.Recipes.Detail(e.ctx, bob.ID, r.Slug)
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.LikesCount)
	assert.True(t, detail.IsLiked)
	assert.False(t, detail.IsFavorited)
	assert.Equal(t, 5, detail.UserRating)
	assert.Equal(t, 5.0, detail.AverageRating)
	assert.False(t, detail.IsAuthor)
	require.Len(t, detail.Recommended, 1)
	assert.Equal(t, "panna-cotta", detail.Recommended[0].Slug)
	assert.Equal(t, "Desserts", detail.Recipe.Category.Name)

	anon, err := e.Recipes.Detail(e.ctx, 0, r.Slug)
	require.NoError(t, err)
	assert.False(t, anon.IsLiked)
	assert.Zero(t, anon.UserRating)

	// 草稿通过 slug 仍可访问
	hidden, err := e.Recipes.Detail(e.ctx, alice.ID, "hidden-cake")
	require.NoError(t, err)
	assert.True(t, hidden.IsAuthor)
	assert.False(t, hidden.Recipe.IsPublished)
}

func TestListAndSearch(t *testing.T) {
	e := newTestEnv(t)
	alice := e.user(t, "alice")
	category, err := e.Catalog.CreateCategory(e.ctx, &types.CreateCategoryRequest{Name: "Soups"})
	require.NoError(t, err)

	e.recipe(t, alice, "Tomato Soup", func(req *types.RecipeRequest) {
		req.CategoryID = &category.ID
		req.Tags = types.TagList{"vegan", "quick"}
	})
	e.recipe(t, alice, "Beef Stew", func(req *types.RecipeRequest) {
		req.Ingredients = "1 kg beef\n2 carrots"
	})
	e.recipe(t, alice, "Vegan Tomato Draft", draft)
	for i := 0; i < 6; i++ {
		e.recipe(t, alice, "Filler")
	}

	page, err := e.Recipes.List(e.ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(8), page.Total)
	assert.Len(t, page.List, types.RecipePageSize)
	assert.True(t, page.HasNext)

	page, err = e.Recipes.List(e.ctx, 2)
	require.NoError(t, err)
	assert.Len(t, page.List, 2)
	assert.False(t, page.HasNext)

	cases := map[string][]string{
		"tomato":  {"tomato-soup"},
		"CARROTS": {"beef-stew"},
		"soups":   {"tomato-soup"},
		"vegan":   {"tomato-soup"},
		"nothing": {},
		"%":       {},
		"_":       {},
	}
	for q, want := range cases {
		page, err := e.Recipes.Search(e.ctx, q, 1)
		require.NoError(t, err, q)
		got := make([]string, 0, len(page.List))
		for _, c := range page.List {
			got = append(got, c.Slug)
		}
		assert.ElementsMatch(t, want, got, q)
		assert.Equal(t, int64(len(want)), page.Total, q)
	}

	// 空关键字等同首页
	page, err = e.Recipes.Search(e.ctx, "  ", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(8), page.Total)

	page, err = e.Recipes.ListByCategory(e.ctx, category.Slug, 1)
	require.NoError(t, err)
	require.Len(t, page.List, 1)
	assert.Equal(t, "tomato-soup", page.List[0].Slug)

	page, err = e.Recipes.ListByTag(e.ctx, "quick", 1)
	require.NoError(t, err)
	require.Len(t, page.List, 1)

	_, err = e.Recipes.ListByCategory(e.ctx, "missing", 1)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
	_, err = e.Recipes.ListByTag(e.ctx, "missing", 1)
	assert.ErrorIs(t, err, ErrTagNotFound)
}
