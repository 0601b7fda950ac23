package service

import (
	"Cookhub/config"
	"Cookhub/dao"
	"Cookhub/models"
	"Cookhub/pkg/log"
	"Cookhub/pkg/rocketmq"
	"Cookhub/pkg/snowflake"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	mq "github.com/apache/rocketmq-client-go/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

const EventRecipePublished = "recipe.published"

// RecipePublishedEvent 新食谱扇出事件，EventID 用于接收方去重
type RecipePublishedEvent struct {
	Type     string `json:"type"`
	EventID  int64  `json:"event_id"`
	RecipeID uint64 `json:"recipe_id"`
	AuthorID uint64 `json:"author_id"`
}

func NewRecipePublishedEvent(recipe *models.Recipe) *RecipePublishedEvent {
	return &RecipePublishedEvent{
		Type:     EventRecipePublished,
		EventID:  snowflake.GenID(),
		RecipeID: recipe.ID,
		AuthorID: recipe.AuthorID,
	}
}

// Dispatcher 决定扇出在请求内执行还是交给消息队列
type Dispatcher interface {
	Dispatch(ctx context.Context, event *RecipePublishedEvent) error
}

// FanOut 把新食谱事件落成每个粉丝一条通知
type FanOut struct {
	RecipeDAO *dao.Recipe
	UserDAO   *dao.Users
	FollowDAO *dao.UserFollowDAO
	Store     *NoticeStore
	BatchSize int
}

func NewFanOut(conf *config.NotifyConfig, recipeDAO *dao.Recipe, userDAO *dao.Users, followDAO *dao.UserFollowDAO, store *NoticeStore) *FanOut {
	return &FanOut{
		RecipeDAO: recipeDAO,
		UserDAO:   userDAO,
		FollowDAO: followDAO,
		Store:     store,
		BatchSize: conf.BatchSize,
	}
}

// Materialize 粉丝在执行时实时枚举，同一事件重复执行不会重复通知
func (f *FanOut) Materialize(ctx context.Context, event *RecipePublishedEvent) (int64, error) {
	recipe, err := f.RecipeDAO.GetByID(ctx, event.RecipeID)
	if dao.IsNotFound(err) {
		// 食谱已被删除
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get recipe: %w", err)
	}
	author, err := f.UserDAO.GetByID(ctx, recipe.AuthorID)
	if err != nil {
		return 0, fmt.Errorf("get author: %w", err)
	}
	followerIDs, err := f.FollowDAO.FollowerIDs(ctx, author.ID)
	if err != nil {
		return 0, fmt.Errorf("list followers: %w", err)
	}

	eventID := event.EventID
	list := make([]*models.Notification, 0, len(followerIDs))
	for _, uid := range followerIDs {
		if uid == author.ID {
			continue
		}
		list = append(list, &models.Notification{
			RecipientID: uid,
			SenderID:    author.ID,
			Type:        models.NotificationRecipe,
			Title:       "New recipe",
			Message:     fmt.Sprintf("%s published a new recipe \"%s\"", author.Username, recipe.Title),
			Link:        recipeLink(recipe),
			EventID:     &eventID,
		})
	}
	return f.Store.Save(ctx, list, f.BatchSize)
}

// InlineDispatcher 请求内同步扇出
type InlineDispatcher struct {
	FanOut *FanOut
}

func (d *InlineDispatcher) Dispatch(ctx context.Context, event *RecipePublishedEvent) error {
	n, err := d.FanOut.Materialize(ctx, event)
	if err != nil {
		return err
	}
	log.L.Debug("recipe published fan-out done", zap.Int64("event_id", event.EventID), zap.Int64("created", n))
	return nil
}

// Publisher 消息发送
type Publisher interface {
	Publish(ctx context.Context, key string, body []byte) error
}

type topicPublisher struct {
	producer mq.Producer
	topic    string
}

func (p *topicPublisher) Publish(ctx context.Context, key string, body []byte) error {
	return rocketmq.SendSync(ctx, p.producer, p.topic, key, body)
}

// MQDispatcher 先写 outbox 再发消息，发送失败的事件由消费进程按间隔重投
type MQDispatcher struct {
	OutboxDAO *dao.NoticeOutbox
	Publisher Publisher
}

func (d *MQDispatcher) Dispatch(ctx context.Context, event *RecipePublishedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	row := &models.NoticeOutbox{
		ID:        event.EventID,
		EventType: event.Type,
		Payload:   datatypes.JSON(body),
		Status:    models.OutboxPending,
	}
	if err := d.OutboxDAO.Create(ctx, row); err != nil {
		return fmt.Errorf("create outbox: %w", err)
	}

	if err := d.Publisher.Publish(ctx, strconv.FormatInt(event.EventID, 10), body); err != nil {
		if markErr := d.OutboxDAO.MarkAttempt(ctx, event.EventID, err.Error()); markErr != nil {
			log.L.Warn("mark outbox attempt failed", zap.Int64("event_id", event.EventID), zap.Error(markErr))
		}
		return fmt.Errorf("publish event: %w", err)
	}
	return nil
}

// ProvideDispatcher 按 notify.dispatcher 选择投递方式
func ProvideDispatcher(conf *config.Config, fanOut *FanOut, outbox *dao.NoticeOutbox) (Dispatcher, func(), error) {
	if conf.Notify.Dispatcher != config.DispatcherRocketMQ {
		return &InlineDispatcher{FanOut: fanOut}, func() {}, nil
	}

	publisher, cleanup, err := ProvidePublisher(conf.RocketMQ)
	if err != nil {
		return nil, nil, err
	}
	return &MQDispatcher{OutboxDAO: outbox, Publisher: publisher}, cleanup, nil
}

func ProvidePublisher(conf *config.RocketMQConfig) (Publisher, func(), error) {
	p, err := rocketmq.NewProducer(conf)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := p.Shutdown(); err != nil {
			log.L.Warn("shutdown producer failed", zap.Error(err))
		}
	}
	return &topicPublisher{producer: p, topic: conf.Topic}, cleanup, nil
}

// retryAge 事件 pending 超过该时长后重投
func retryAge(conf *config.NotifyConfig) time.Duration {
	return time.Duration(conf.RetryInterval) * time.Second
}
