package service

import (
	"Cookhub/config"
	"Cookhub/dao"
	"Cookhub/models"
	"Cookhub/pkg/log"
	"Cookhub/pkg/rocketmq"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const redispatchBatch = 100

// NoticeConsumer 消费扇出事件，并定时重投未确认的 outbox 事件
type NoticeConsumer struct {
	Conf      *config.Config
	FanOut    *FanOut
	OutboxDAO *dao.NoticeOutbox
	Publisher Publisher
}

// Handle 按 type 分发，未知类型直接确认
func (c *NoticeConsumer) Handle(ctx context.Context, key string, body []byte) error {
	typ := gjson.GetBytes(body, "type").String()
	switch typ {
	case EventRecipePublished:
		var event RecipePublishedEvent
		if err := json.Unmarshal(body, &event); err != nil {
			log.L.Warn("drop malformed event", zap.String("key", key), zap.Error(err))
			return nil
		}
		return c.handleRecipePublished(ctx, &event)
	default:
		log.L.Warn("drop unknown event", zap.String("key", key), zap.String("type", typ))
		return nil
	}
}

func (c *NoticeConsumer) handleRecipePublished(ctx context.Context, event *RecipePublishedEvent) error {
	row, err := c.OutboxDAO.Get(ctx, event.EventID)
	if err != nil && !dao.IsNotFound(err) {
		return fmt.Errorf("get outbox: %w", err)
	}
	if row != nil && row.Status == models.OutboxDone {
		return nil
	}

	n, err := c.FanOut.Materialize(ctx, event)
	if err != nil {
		return err
	}
	if row != nil {
		if err := c.OutboxDAO.MarkDone(ctx, event.EventID); err != nil {
			return fmt.Errorf("mark outbox done: %w", err)
		}
	}
	log.L.Info("recipe published fan-out done",
		zap.Int64("event_id", event.EventID),
		zap.Uint64("recipe_id", event.RecipeID),
		zap.Int64("created", n),
	)
	return nil
}

// Redispatch 重投 pending 时间超过重试间隔的事件
func (c *NoticeConsumer) Redispatch(ctx context.Context) (int, error) {
	before := time.Now().Add(-retryAge(c.Conf.Notify))
	list, err := c.OutboxDAO.ListStale(ctx, before, redispatchBatch)
	if err != nil {
		return 0, fmt.Errorf("list stale outbox: %w", err)
	}

	sent := 0
	for _, row := range list {
		cause := ""
		if err := c.Publisher.Publish(ctx, strconv.FormatInt(row.ID, 10), row.Payload); err != nil {
			cause = err.Error()
			log.L.Warn("redispatch event failed", zap.Int64("event_id", row.ID), zap.Error(err))
		} else {
			sent++
		}
		if err := c.OutboxDAO.MarkAttempt(ctx, row.ID, cause); err != nil {
			log.L.Warn("mark outbox attempt failed", zap.Int64("event_id", row.ID), zap.Error(err))
		}
	}
	return sent, nil
}

// Run 启动 push consumer 与重投定时器，直到 ctx 取消
func (c *NoticeConsumer) Run(ctx context.Context) error {
	consumer, err := rocketmq.NewPushConsumer(c.Conf.RocketMQ)
	if err != nil {
		return err
	}
	if err := rocketmq.Subscribe(consumer, c.Conf.RocketMQ.Topic, c.Handle); err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	if err := consumer.Start(); err != nil {
		return fmt.Errorf("start consumer: %w", err)
	}
	log.L.Info("notice consumer started", zap.String("topic", c.Conf.RocketMQ.Topic))

	eg, groupCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		ticker := time.NewTicker(retryAge(c.Conf.Notify))
		defer ticker.Stop()
		for {
			select {
			case <-groupCtx.Done():
				return nil
			case <-ticker.C:
				if n, err := c.Redispatch(groupCtx); err != nil {
					log.L.Warn("redispatch failed", zap.Error(err))
				} else if n > 0 {
					log.L.Info("redispatched events", zap.Int("count", n))
				}
			}
		}
	})
	eg.Go(func() error {
		<-groupCtx.Done()
		return consumer.Shutdown()
	})
	return eg.Wait()
}
