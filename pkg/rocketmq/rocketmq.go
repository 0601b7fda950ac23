package rocketmq

import (
	"Cookhub/config"
	"Cookhub/pkg/log"
	"context"
	"fmt"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/consumer"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/apache/rocketmq-client-go/v2/rlog"
	"go.uber.org/zap"
)

func init() {
	rlog.SetLogLevel("error")
}

// Handler 消费回调，返回 error 时消息稍后重投
type Handler func(ctx context.Context, key string, body []byte) error

func NewProducer(cfg *config.RocketMQConfig) (rocketmq.Producer, error) {
	retry := cfg.Producer.Retry
	if retry <= 0 {
		retry = 2
	}
	p, err := rocketmq.NewProducer(
		producer.WithNameServer(cfg.NameServer),
		producer.WithGroupName(cfg.Producer.Group),
		producer.WithRetry(retry),
	)
	if err != nil {
		return nil, fmt.Errorf("new producer: %w", err)
	}
	if err := p.Start(); err != nil {
		return nil, fmt.Errorf("start producer: %w", err)
	}
	log.L.Info("init producer success", zap.Strings("nameserver", cfg.NameServer))
	return p, nil
}

func NewPushConsumer(cfg *config.RocketMQConfig) (rocketmq.PushConsumer, error) {
	c, err := rocketmq.NewPushConsumer(
		consumer.WithNameServer(cfg.NameServer),
		consumer.WithGroupName(cfg.Consumer.Group),
		consumer.WithConsumeFromWhere(consumer.ConsumeFromLastOffset),
	)
	if err != nil {
		return nil, fmt.Errorf("new push consumer: %w", err)
	}
	return c, nil
}

// SendSync 同步发送，key 用于消息追踪
func SendSync(ctx context.Context, p rocketmq.Producer, topic, key string, body []byte) error {
	msg := primitive.NewMessage(topic, body)
	if key != "" {
		msg.WithKeys([]string{key})
	}
	res, err := p.SendSync(ctx, msg)
	if err != nil {
		return err
	}
	if res.Status != primitive.SendOK {
		return fmt.Errorf("send message status %d", res.Status)
	}
	log.L.Debug("send message success", zap.String("msg_id", res.MsgID), zap.String("key", key))
	return nil
}

// Subscribe 订阅 topic，单条消息处理失败时整批稍后重投
func Subscribe(c rocketmq.PushConsumer, topic string, h Handler) error {
	return c.Subscribe(topic, consumer.MessageSelector{}, func(ctx context.Context, msgs ...*primitive.MessageExt) (consumer.ConsumeResult, error) {
		for _, msg := range msgs {
			if err := h(ctx, msg.GetKeys(), msg.Body); err != nil {
				log.L.Warn("consume message failed, retry later",
					zap.String("msg_id", msg.MsgId),
					zap.Error(err),
				)
				return consumer.ConsumeRetryLater, nil
			}
		}
		return consumer.ConsumeSuccess, nil
	})
}
