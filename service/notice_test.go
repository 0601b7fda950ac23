package service

import (
	"Cookhub/models"
	"Cookhub/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipePublished_FansOutToFollowers(t *testing.T) {
	e := newTestEnv(t)
	author := e.user(t, "alice")
	fans := []*models.User{e.user(t, "bob"), e.user(t, "carol"), e.user(t, "dave")}
	for _, f := range fans {
		e.follow(t, f, author)
	}

	r := e.recipe(t, author, "Ramen")

	for _, f := range fans {
		list := e.notifications(t, f.ID, models.NotificationRecipe)
		require.Len(t, list, 1, f.Username)
		assert.Equal(t, author.ID, list[0].SenderID)
		assert.Equal(t, "/recipe/"+r.Slug+"/", list[0].Link)
		assert.NotNil(t, list[0].EventID)
	}
	assert.Empty(t, e.notifications(t, author.ID, models.NotificationRecipe))
}

func TestRecipePublished_DraftDoesNotNotify(t *testing.T) {
	e := newTestEnv(t)
	author := e.user(t, "alice")
	fan := e.user(t, "bob")
	e.follow(t, fan, author)

	r := e.recipe(t, author, "Secret", draft)
	assert.Empty(t, e.notifications(t, fan.ID, models.NotificationRecipe))

	// 首次发布才扇出，之后的编辑不再通知
	req := &types.RecipeRequest{Title: "Secret", Difficulty: "easy", IsPublished: new(bool)}
	*req.IsPublished = true
	_, err := e.Recipes.Update(e.ctx, author.ID, r.Slug, req)
	require.NoError(t, err)
	assert.Len(t, e.notifications(t, fan.ID, models.NotificationRecipe), 1)

	_, err = e.Recipes.Update(e.ctx, author.ID, r.Slug, req)
	require.NoError(t, err)
	assert.Len(t, e.notifications(t, fan.ID, models.NotificationRecipe), 1)
}

func TestFanOut_RedeliveryIsIdempotent(t *testing.T) {
	e := newTestEnv(t)
	author := e.user(t, "alice")
	fans := []*models.User{e.user(t, "bob"), e.user(t, "carol"), e.user(t, "dave")}
	for _, f := range fans {
		e.follow(t, f, author)
	}
	r := e.recipe(t, author, "Curry", draft)
	recipe, err := e.RecipeDAO.FindBySlug(e.ctx, r.Slug)
	require.NoError(t, err)

	event := NewRecipePublishedEvent(recipe)
	n, err := e.FanOut.Materialize(e.ctx, event)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	pushes := e.pusher.count()

	n, err = e.FanOut.Materialize(e.ctx, event)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, pushes, e.pusher.count())

	for _, f := range fans {
		assert.Len(t, e.notifications(t, f.ID, models.NotificationRecipe), 1)
	}
}

func TestFanOut_DeletedRecipe(t *testing.T) {
	e := newTestEnv(t)
	author := e.user(t, "alice")

	n, err := e.FanOut.Materialize(e.ctx, &RecipePublishedEvent{Type: EventRecipePublished, EventID: 1, RecipeID: 999, AuthorID: author.ID})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCommentNotifiesAuthorOnly(t *testing.T) {
	e := newTestEnv(t)
	author := e.user(t, "alice")
	bob := e.user(t, "bob")
	r := e.recipe(t, author, "Tacos")

	_, err := e.Comments.Create(e.ctx, bob.ID, r.Slug, &types.CreateCommentRequest{Content: "Yum"})
	require.NoError(t, err)
	_, err = e.Comments.Create(e.ctx, author.ID, r.Slug, &types.CreateCommentRequest{Content: "Thanks"})
	require.NoError(t, err)

	list := e.notifications(t, author.ID, models.NotificationComment)
	require.Len(t, list, 1)
	assert.Equal(t, bob.ID, list[0].SenderID)
	assert.Empty(t, e.notifications(t, bob.ID, models.NotificationComment))
}

func TestNotificationList_MarksAllRead(t *testing.T) {
	e := newTestEnv(t)
	alice := e.user(t, "alice")
	for _, name := range []string{"bob", "carol"} {
		e.follow(t, e.user(t, name), alice)
	}

	count, err := e.Notice.UnreadCount(e.ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	page, err := e.Notice.List(e.ctx, alice.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	require.Len(t, page.List, 2)
	// 返回标记前的状态
	for _, n := range page.List {
		assert.False(t, n.IsRead)
		require.NotNil(t, n.Sender)
	}

	count, err = e.Notice.UnreadCount(e.ctx, alice.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	page, err = e.Notice.List(e.ctx, alice.ID, 1)
	require.NoError(t, err)
	for _, n := range page.List {
		assert.True(t, n.IsRead)
	}
}

func TestUnreadCount_CacheInvalidatedOnWrite(t *testing.T) {
	e := newTestEnv(t)
	alice := e.user(t, "alice")

	count, err := e.Notice.UnreadCount(e.ctx, alice.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
	cached, ok, err := e.Unread.Get(e.ctx, alice.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Zero(t, cached)

	e.follow(t, e.user(t, "bob"), alice)
	_, ok, err = e.Unread.Get(e.ctx, alice.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	count, err = e.Notice.UnreadCount(e.ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUnreadCount_RedisDown(t *testing.T) {
	e := newTestEnv(t)
	alice := e.user(t, "alice")
	e.follow(t, e.user(t, "bob"), alice)

	e.mr.Close()
	count, err := e.Notice.UnreadCount(e.ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMarkReadAndDelete_Ownership(t *testing.T) {
	e := newTestEnv(t)
	alice := e.user(t, "alice")
	bob := e.user(t, "bob")
	e.follow(t, bob, alice)
	list := e.notifications(t, alice.ID, models.NotificationFollow)
	require.Len(t, list, 1)
	id := list[0].ID

	assert.ErrorIs(t, e.Notice.MarkRead(e.ctx, bob.ID, id), ErrNotificationNotFound)
	assert.ErrorIs(t, e.Notice.Delete(e.ctx, bob.ID, id), ErrNotificationNotFound)

	require.NoError(t, e.Notice.MarkRead(e.ctx, alice.ID, id))
	// 已读的再次标记不报错
	require.NoError(t, e.Notice.MarkRead(e.ctx, alice.ID, id))

	count, err := e.Notice.UnreadCount(e.ctx, alice.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, e.Notice.Delete(e.ctx, alice.ID, id))
	assert.ErrorIs(t, e.Notice.Delete(e.ctx, alice.ID, id), ErrNotificationNotFound)
}

func TestNoticeStore_PushesNewRows(t *testing.T) {
	e := newTestEnv(t)
	alice := e.user(t, "alice")
	bob := e.user(t, "bob")

	e.follow(t, bob, alice)
	require.Equal(t, 1, e.pusher.count())
	got := e.pusher.list[0]
	assert.Equal(t, alice.ID, got.recipientID)
	assert.Equal(t, "notification", got.msg.Event)
	item := got.msg.Data
	require.NotNil(t, item)
	assert.Equal(t, string(models.NotificationFollow), item.Type)
}
