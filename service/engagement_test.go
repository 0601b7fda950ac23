package service

import (
	"Cookhub/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeToggle_NotifiesOnlyOnInsert(t *testing.T) {
	e := newTestEnv(t)
	author := e.user(t, "alice")
	fan := e.user(t, "bob")
	r := e.recipe(t, author, "Pancakes")

	resp, err := e.Likes.Toggle(e.ctx, fan.ID, r.Slug)
	require.NoError(t, err)
	assert.True(t, resp.Liked)
	assert.Equal(t, int64(1), resp.Count)

	resp, err = e.Likes.Toggle(e.ctx, fan.ID, r.Slug)
	require.NoError(t, err)
	assert.False(t, resp.Liked)
	assert.Equal(t, int64(0), resp.Count)

	// 再次点赞会重新通知
	resp, err = e.Likes.Toggle(e.ctx, fan.ID, r.Slug)
	require.NoError(t, err)
	assert.True(t, resp.Liked)

	list := e.notifications(t, author.ID, models.NotificationLike)
	require.Len(t, list, 2)
	assert.Equal(t, fan.ID, list[0].SenderID)
	assert.Equal(t, "/recipe/pancakes/", list[0].Link)
	assert.Contains(t, list[0].Message, "bob liked your recipe")
}

func TestLikeToggle_SelfLikeNoNotification(t *testing.T) {
	e := newTestEnv(t)
	author := e.user(t, "alice")
	r := e.recipe(t, author, "Pancakes")

	resp, err := e.Likes.Toggle(e.ctx, author.ID, r.Slug)
	require.NoError(t, err)
	assert.True(t, resp.Liked)
	assert.Empty(t, e.notifications(t, author.ID, models.NotificationLike))
}

func TestLikeToggle_UnknownRecipe(t *testing.T) {
	e := newTestEnv(t)
	u := e.user(t, "alice")

	_, err := e.Likes.Toggle(e.ctx, u.ID, "missing")
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestFavoriteToggle(t *testing.T) {
	e := newTestEnv(t)
	author := e.user(t, "alice")
	fan := e.user(t, "bob")
	r1 := e.recipe(t, author, "Soup")
	r2 := e.recipe(t, author, "Salad")

	resp, err := e.Favorites.Toggle(e.ctx, fan.ID, r1.Slug)
	require.NoError(t, err)
	assert.True(t, resp.Favorited)
	assert.Equal(t, int64(1), resp.Count)
	assert.Equal(t, "Recipe added to favorites", resp.Message)

	_, err = e.Favorites.Toggle(e.ctx, fan.ID, r2.Slug)
	require.NoError(t, err)

	page, err := e.Favorites.List(e.ctx, fan.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	require.Len(t, page.List, 2)
	assert.Equal(t, "alice", page.List[0].Author.Username)

	resp, err = e.Favorites.Toggle(e.ctx, fan.ID, r1.Slug)
	require.NoError(t, err)
	assert.False(t, resp.Favorited)
	assert.Equal(t, "Recipe removed from favorites", resp.Message)

	// 收藏不产生通知
	var count int64
	require.NoError(t, e.db.Model(&models.Notification{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRate_UpsertAndAverage(t *testing.T) {
	e := newTestEnv(t)
	author := e.user(t, "alice")
	u1 := e.user(t, "bob")
	u2 := e.user(t, "carol")
	r := e.recipe(t, author, "Stew")

	resp, err := e.Ratings.Rate(e.ctx, u1.ID, r.Slug, 5)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 5.0, resp.Average)
	assert.Equal(t, int64(1), resp.Count)

	_, err = e.Ratings.Rate(e.ctx, u2.ID, r.Slug, 4)
	require.NoError(t, err)

	// 重复评分覆盖旧值
	resp, err = e.Ratings.Rate(e.ctx, u1.ID, r.Slug, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Score)
	assert.Equal(t, 3.0, resp.Average)
	assert.Equal(t, int64(2), resp.Count)

	detail, err := e.Recipes.Detail(e.ctx, u1.ID, r.Slug)
	require.NoError(t, err)
	assert.Equal(t, 2, detail.UserRating)
	assert.Equal(t, int64(2), detail.RatingCount)
}

func TestRate_InvalidScoreWritesNothing(t *testing.T) {
	e := newTestEnv(t)
	author := e.user(t, "alice")
	u := e.user(t, "bob")
	r := e.recipe(t, author, "Stew")

	for _, score := range []int{0, 6, -1} {
		_, err := e.Ratings.Rate(e.ctx, u.ID, r.Slug, score)
		assert.ErrorIs(t, err, ErrInvalidScore)
	}
	// 分数校验先于食谱查找
	_, err := e.Ratings.Rate(e.ctx, u.ID, "missing", 9)
	assert.ErrorIs(t, err, ErrInvalidScore)

	var count int64
	require.NoError(t, e.db.Model(&models.Rating{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRoundRating(t *testing.T) {
	assert.Equal(t, 3.7, roundRating(11.0/3.0))
	assert.Equal(t, 0.0, roundRating(0))
	assert.Equal(t, 4.3, roundRating(4.25))
}
