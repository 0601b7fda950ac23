package service

import (
	"Cookhub/models"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	mu   sync.Mutex
	err  error
	keys []string
	body [][]byte
}

func (p *fakePublisher) Publish(_ context.Context, key string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, key)
	p.body = append(p.body, body)
	return p.err
}

func (e *testEnv) consumer(publisher Publisher) *NoticeConsumer {
	return &NoticeConsumer{Conf: e.conf, FanOut: e.FanOut, OutboxDAO: e.OutboxDAO, Publisher: publisher}
}

func (e *testEnv) publishedRecipe(t *testing.T) (*models.Recipe, *models.User) {
	t.Helper()
	author := e.user(t, "alice")
	fan := e.user(t, "bob")
	e.follow(t, fan, author)
	// 不经过 RecipeService，避免 inline 扇出
	recipe := &models.Recipe{AuthorID: author.ID, Title: "Paella", Slug: "paella", Difficulty: models.DifficultyHard, IsPublished: true}
	require.NoError(t, e.RecipeDAO.Create(e.ctx, recipe))
	return recipe, fan
}

func TestNoticeConsumer_HandleDropsUnknown(t *testing.T) {
	e := newTestEnv(t)
	c := e.consumer(&fakePublisher{})

	assert.NoError(t, c.Handle(e.ctx, "1", []byte(`{"type":"recipe.deleted"}`)))
	assert.NoError(t, c.Handle(e.ctx, "2", []byte(`not json`)))
	assert.NoError(t, c.Handle(e.ctx, "3", []byte(`{"type":"recipe.published","event_id":"x"}`)))
}

func TestMQDispatcher_ConsumeMarksDone(t *testing.T) {
	e := newTestEnv(t)
	recipe, fan := e.publishedRecipe(t)
	publisher := &fakePublisher{}
	d := &MQDispatcher{OutboxDAO: e.OutboxDAO, Publisher: publisher}

	event := NewRecipePublishedEvent(recipe)
	require.NoError(t, d.Dispatch(e.ctx, event))
	require.Len(t, publisher.body, 1)

	row, err := e.OutboxDAO.Get(e.ctx, event.EventID)
	require.NoError(t, err)
	assert.Equal(t, models.OutboxPending, row.Status)

	c := e.consumer(publisher)
	require.NoError(t, c.Handle(e.ctx, publisher.keys[0], publisher.body[0]))
	require.Len(t, e.notifications(t, fan.ID, models.NotificationRecipe), 1)

	row, err = e.OutboxDAO.Get(e.ctx, event.EventID)
	require.NoError(t, err)
	assert.Equal(t, models.OutboxDone, row.Status)

	// 重复投递
	require.NoError(t, c.Handle(e.ctx, publisher.keys[0], publisher.body[0]))
	assert.Len(t, e.notifications(t, fan.ID, models.NotificationRecipe), 1)
}

func TestMQDispatcher_PublishFailureKeepsPending(t *testing.T) {
	e := newTestEnv(t)
	recipe, fan := e.publishedRecipe(t)
	publisher := &fakePublisher{err: errors.New("broker down")}
	d := &MQDispatcher{OutboxDAO: e.OutboxDAO, Publisher: publisher}

	event := NewRecipePublishedEvent(recipe)
	require.Error(t, d.Dispatch(e.ctx, event))

	row, err := e.OutboxDAO.Get(e.ctx, event.EventID)
	require.NoError(t, err)
	assert.Equal(t, models.OutboxPending, row.Status)
	assert.Equal(t, 1, row.Attempts)
	assert.Equal(t, "broker down", row.LastError)

	// 未过重试间隔时不重投
	c := e.consumer(&fakePublisher{})
	sent, err := c.Redispatch(e.ctx)
	require.NoError(t, err)
	assert.Zero(t, sent)

	stale := time.Now().Add(-time.Hour)
	require.NoError(t, e.db.Model(&models.NoticeOutbox{}).Where("id = ?", event.EventID).UpdateColumn("updated_at", stale).Error)

	retry := &fakePublisher{}
	c = e.consumer(retry)
	sent, err = c.Redispatch(e.ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	require.Len(t, retry.body, 1)

	require.NoError(t, c.Handle(e.ctx, retry.keys[0], retry.body[0]))
	assert.Len(t, e.notifications(t, fan.ID, models.NotificationRecipe), 1)
	row, err = e.OutboxDAO.Get(e.ctx, event.EventID)
	require.NoError(t, err)
	assert.Equal(t, models.OutboxDone, row.Status)
	assert.Equal(t, 2, row.Attempts)
}
