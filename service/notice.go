package service

import (
	"Cookhub/dao"
	"Cookhub/dao/cache"
	"Cookhub/models"
	"Cookhub/pkg/log"
	"Cookhub/types"
	"context"
	"fmt"

	"go.uber.org/zap"
)

var _ INoticeService = (*NoticeService)(nil)

// INoticeService 通知引擎。Notify* 均为尽力而为，失败只记录日志
type INoticeService interface {
	NotifyFollow(ctx context.Context, actorID, recipientID uint64)
	NotifyLike(ctx context.Context, actorID uint64, recipe *models.Recipe)
	NotifyComment(ctx context.Context, actorID uint64, recipe *models.Recipe)
	NotifyRecipePublished(ctx context.Context, recipe *models.Recipe)

	List(ctx context.Context, userID uint64, page int) (*types.Page[*types.NotificationItem], error)
	UnreadCount(ctx context.Context, userID uint64) (int64, error)
	MarkRead(ctx context.Context, userID, id uint64) error
	Delete(ctx context.Context, userID, id uint64) error
}

// NoticePusher 在线推送，由 websocket hub 实现
type NoticePusher interface {
	Push(recipientID uint64, msg *types.PushMessage)
}

type NoticeService struct {
	NotificationDAO *dao.Notification
	UserDAO         *dao.Users
	Unread          *cache.UnreadStorage
	Store           *NoticeStore
	Dispatcher      Dispatcher
}

func (s *NoticeService) NotifyFollow(ctx context.Context, actorID, recipientID uint64) {
	if actorID == recipientID {
		return
	}
	actor, ok := s.actor(ctx, actorID)
	if !ok {
		return
	}
	s.Store.SaveOne(ctx, &models.Notification{
		RecipientID: recipientID,
		SenderID:    actorID,
		Type:        models.NotificationFollow,
		Title:       "New follower",
		Message:     fmt.Sprintf("%s started following you", actor.Username),
		Link:        fmt.Sprintf("/user/%s/", actor.Username),
	})
}

func (s *NoticeService) NotifyLike(ctx context.Context, actorID uint64, recipe *models.Recipe) {
	if actorID == recipe.AuthorID {
		return
	}
	actor, ok := s.actor(ctx, actorID)
	if !ok {
		return
	}
	s.Store.SaveOne(ctx, &models.Notification{
		RecipientID: recipe.AuthorID,
		SenderID:    actorID,
		Type:        models.NotificationLike,
		Title:       "New like",
		Message:     fmt.Sprintf("%s liked your recipe \"%s\"", actor.Username, recipe.Title),
		Link:        recipeLink(recipe),
	})
}

func (s *NoticeService) NotifyComment(ctx context.Context, actorID uint64, recipe *models.Recipe) {
	if actorID == recipe.AuthorID {
		return
	}
	actor, ok := s.actor(ctx, actorID)
	if !ok {
		return
	}
	s.Store.SaveOne(ctx, &models.Notification{
		RecipientID: recipe.AuthorID,
		SenderID:    actorID,
		Type:        models.NotificationComment,
		Title:       "New comment",
		Message:     fmt.Sprintf("%s commented on your recipe \"%s\"", actor.Username, recipe.Title),
		Link:        recipeLink(recipe),
	})
}

// NotifyRecipePublished 交给 Dispatcher 扇出给作者的全部粉丝
func (s *NoticeService) NotifyRecipePublished(ctx context.Context, recipe *models.Recipe) {
	event := NewRecipePublishedEvent(recipe)
	if err := s.Dispatcher.Dispatch(ctx, event); err != nil {
		log.L.Warn("dispatch recipe published failed",
			zap.Int64("event_id", event.EventID),
			zap.Uint64("recipe_id", recipe.ID),
			zap.Error(err),
		)
	}
}

func (s *NoticeService) actor(ctx context.Context, id uint64) (*models.User, bool) {
	user, err := s.UserDAO.GetByID(ctx, id)
	if err != nil {
		log.L.Warn("load notification sender failed", zap.Uint64("sender_id", id), zap.Error(err))
		return nil, false
	}
	return user, true
}

// List 返回本页通知后把该用户全部未读标记为已读，返回的是标记前的状态
func (s *NoticeService) List(ctx context.Context, userID uint64, page int) (*types.Page[*types.NotificationItem], error) {
	list, total, err := s.NotificationDAO.List(ctx, userID, page, types.NotificationPageSize)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	items := make([]*types.NotificationItem, 0, len(list))
	for _, n := range list {
		items = append(items, toNotificationItem(n))
	}

	marked, err := s.NotificationDAO.MarkAllRead(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("mark notifications read: %w", err)
	}
	if marked > 0 {
		s.invalidate(ctx, userID)
	}
	return types.NewPage(items, total, page, types.NotificationPageSize), nil
}

// UnreadCount 优先读缓存，未命中时回源数据库并回填
func (s *NoticeService) UnreadCount(ctx context.Context, userID uint64) (int64, error) {
	count, ok, err := s.Unread.Get(ctx, userID)
	if err != nil {
		log.L.Warn("get unread cache failed", zap.Uint64("user_id", userID), zap.Error(err))
	}
	if ok {
		return count, nil
	}

	count, err = s.NotificationDAO.UnreadCount(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count unread: %w", err)
	}
	if err := s.Unread.Set(ctx, userID, count); err != nil {
		log.L.Warn("set unread cache failed", zap.Uint64("user_id", userID), zap.Error(err))
	}
	return count, nil
}

func (s *NoticeService) MarkRead(ctx context.Context, userID, id uint64) error {
	n, err := s.NotificationDAO.MarkRead(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("mark read: %w", err)
	}
	if n == 0 {
		exist, err := s.NotificationDAO.IsExist(ctx, "id = ? AND recipient_id = ?", id, userID)
		if err != nil {
			return err
		}
		if !exist {
			return ErrNotificationNotFound
		}
	}
	s.invalidate(ctx, userID)
	return nil
}

func (s *NoticeService) Delete(ctx context.Context, userID, id uint64) error {
	n, err := s.NotificationDAO.DeleteOwned(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	if n == 0 {
		return ErrNotificationNotFound
	}
	s.invalidate(ctx, userID)
	return nil
}

func (s *NoticeService) invalidate(ctx context.Context, userIDs ...uint64) {
	if err := s.Unread.Del(ctx, userIDs...); err != nil {
		log.L.Warn("invalidate unread cache failed", zap.Error(err))
	}
}

func recipeLink(recipe *models.Recipe) string {
	return fmt.Sprintf("/recipe/%s/", recipe.Slug)
}

// NoticeStore 写入通知、失效未读缓存并推送给在线连接
type NoticeStore struct {
	NotificationDAO *dao.Notification
	Unread          *cache.UnreadStorage
	Pusher          NoticePusher
}

// SaveOne 单条写入，错误只记录
func (s *NoticeStore) SaveOne(ctx context.Context, n *models.Notification) {
	if _, err := s.Save(ctx, []*models.Notification{n}, 1); err != nil {
		log.L.Error("create notification failed",
			zap.String("type", string(n.Type)),
			zap.Uint64("recipient_id", n.RecipientID),
			zap.Error(err),
		)
	}
}

// Save 批量写入，重复投递导致的冲突行被跳过且不再推送
func (s *NoticeStore) Save(ctx context.Context, list []*models.Notification, batchSize int) (int64, error) {
	if len(list) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = len(list)
	}

	var created int64
	for start := 0; start < len(list); start += batchSize {
		end := min(start+batchSize, len(list))
		chunk := list[start:end]

		n, err := s.NotificationDAO.CreateBatch(ctx, chunk, batchSize)
		if err != nil {
			return created, err
		}
		created += n

		recipients := make([]uint64, 0, len(chunk))
		for _, item := range chunk {
			recipients = append(recipients, item.RecipientID)
		}
		if err := s.Unread.Del(ctx, recipients...); err != nil {
			log.L.Warn("invalidate unread cache failed", zap.Error(err))
		}

		if n != int64(len(chunk)) || s.Pusher == nil {
			continue
		}
		for _, item := range chunk {
			s.Pusher.Push(item.RecipientID, &types.PushMessage{
				Event: "notification",
				Data:  toNotificationItem(item),
			})
		}
	}
	return created, nil
}
