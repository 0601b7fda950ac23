package service

import (
	"Cookhub/models"
	"Cookhub/types"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestComments_Threading(t *testing.T) {
	e := newTestEnv(t)
	author := e.user(t, "alice")
	bob := e.user(t, "bob")
	r := e.recipe(t, author, "Risotto")

	root, err := e.Comments.Create(e.ctx, bob.ID, r.Slug, &types.CreateCommentRequest{Content: "  Looks great  "})
	require.NoError(t, err)
	assert.Equal(t, "Looks great", root.Content)
	assert.Nil(t, root.ParentID)
	assert.Equal(t, "bob", root.User.Username)

	reply, err := e.Comments.Create(e.ctx, author.ID, r.Slug, &types.CreateCommentRequest{Content: "Thanks", ParentID: &root.ID})
	require.NoError(t, err)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, root.ID, *reply.ParentID)

	// 回复的回复挂到一级评论下
	nested, err := e.Comments.Create(e.ctx, bob.ID, r.Slug, &types.CreateCommentRequest{Content: "Sure", ParentID: &reply.ID})
	require.NoError(t, err)
	require.NotNil(t, nested.ParentID)
	assert.Equal(t, root.ID, *nested.ParentID)

	list, err := e.Comments.List(e.ctx, r.Slug)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(2), list[0].RepliesCount)
	require.Len(t, list[0].Replies, 2)
	assert.Equal(t, "Thanks", list[0].Replies[0].Content)
	assert.Equal(t, "Sure", list[0].Replies[1].Content)
}

func TestComments_ParentFromOtherRecipeBecomesRoot(t *testing.T) {
	e := newTestEnv(t)
	author := e.user(t, "alice")
	r1 := e.recipe(t, author, "Soup")
	r2 := e.recipe(t, author, "Bread")

	other, err := e.Comments.Create(e.ctx, author.ID, r1.Slug, &types.CreateCommentRequest{Content: "on soup"})
	require.NoError(t, err)

	c, err := e.Comments.Create(e.ctx, author.ID, r2.Slug, &types.CreateCommentRequest{Content: "on bread", ParentID: &other.ID})
	require.NoError(t, err)
	assert.Nil(t, c.ParentID)

	missing := uint64(9999)
	c, err = e.Comments.Create(e.ctx, author.ID, r2.Slug, &types.CreateCommentRequest{Content: "orphan", ParentID: &missing})
	require.NoError(t, err)
	assert.Nil(t, c.ParentID)
}

func TestComments_EmptyContent(t *testing.T) {
	e := newTestEnv(t)
	author := e.user(t, "alice")
	r := e.recipe(t, author, "Soup")

	_, err := e.Comments.Create(e.ctx, author.ID, r.Slug, &types.CreateCommentRequest{Content: "   "})
	assert.ErrorIs(t, err, ErrEmptyComment)
}

func TestComments_Delete(t *testing.T) {
	e := newTestEnv(t)
	author := e.user(t, "alice")
	bob := e.user(t, "bob")
	r := e.recipe(t, author, "Soup")
	other := e.recipe(t, author, "Bread")

	root, err := e.Comments.Create(e.ctx, bob.ID, r.Slug, &types.CreateCommentRequest{Content: "root"})
	require.NoError(t, err)
	_, err = e.Comments.Create(e.ctx, author.ID, r.Slug, &types.CreateCommentRequest{Content: "reply", ParentID: &root.ID})
	require.NoError(t, err)

	assert.ErrorIs(t, e.Comments.Delete(e.ctx, author.ID, r.Slug, root.ID), ErrForbidden)
	assert.ErrorIs(t, e.Comments.Delete(e.ctx, bob.ID, other.Slug, root.ID), ErrCommentNotFound)

	require.NoError(t, e.Comments.Delete(e.ctx, bob.ID, r.Slug, root.ID))
	var count int64
	require.NoError(t, e.db.Model(&models.Comment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestComments_CreateKeepsCommentWhenAuthorLoadFails(t *testing.T) {
	e := newTestEnv(t)
	author := e.user(t, "alice")
	bob := e.user(t, "bob")
	r := e.recipe(t, author, "Soup")

	// 写入后对 users 的查询全部失败
	require.NoError(t, e.db.Callback().Query().Before("gorm:query").Register("test:fail_users", func(db *gorm.DB) {
		if db.Statement.Table == "users" {
			_ = db.AddError(errors.New("users unavailable"))
		}
	}))

	c, err := e.Comments.Create(e.ctx, bob.ID, r.Slug, &types.CreateCommentRequest{Content: "hello"})
	require.NoError(t, err)
	assert.Nil(t, c.User)
	assert.Equal(t, "hello", c.Content)

	var count int64
	require.NoError(t, e.db.Model(&models.Comment{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
