package service

import (
	"Cookhub/dao"
	"Cookhub/models"
	"Cookhub/types"
	"context"
	"fmt"
)

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	Toggle(ctx context.Context, followerID uint64, username string) (*types.FollowResponse, error)
	ListFollowing(ctx context.Context, userID uint64, page int) (*types.Page[*types.UserBrief], error)
	ListFollowers(ctx context.Context, userID uint64, page int) (*types.Page[*types.UserBrief], error)
}

type FollowService struct {
	FollowDAO *dao.UserFollowDAO
	UserDAO   *dao.Users
	Notice    INoticeService
}

// Toggle 关注/取消关注，不能关注自己
func (s *FollowService) Toggle(ctx context.Context, followerID uint64, username string) (*types.FollowResponse, error) {
	target, err := s.UserDAO.FindByUsername(ctx, username)
	if dao.IsNotFound(err) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if target.ID == followerID {
		return nil, ErrSelfFollow
	}

	following, inserted, err := s.FollowDAO.Toggle(ctx, followerID, target.ID)
	if err != nil {
		return nil, fmt.Errorf("toggle follow: %w", err)
	}
	if inserted {
		s.Notice.NotifyFollow(ctx, followerID, target.ID)
	}

	count, err := s.FollowDAO.GetFollowerCount(ctx, target.ID)
	if err != nil {
		return nil, fmt.Errorf("count followers: %w", err)
	}

	msg := fmt.Sprintf("You unfollowed %s", target.Username)
	if following {
		msg = fmt.Sprintf("You are now following %s", target.Username)
	}
	return &types.FollowResponse{Following: following, FollowersCount: count, Message: msg}, nil
}

func (s *FollowService) ListFollowing(ctx context.Context, userID uint64, page int) (*types.Page[*types.UserBrief], error) {
	list, total, err := s.FollowDAO.ListFollowing(ctx, userID, page, types.FollowPageSize)
	if err != nil {
		return nil, fmt.Errorf("list following: %w", err)
	}
	return types.NewPage(briefs(list, func(f *models.UserFollow) *models.User { return f.Following }), total, page, types.FollowPageSize), nil
}

func (s *FollowService) ListFollowers(ctx context.Context, userID uint64, page int) (*types.Page[*types.UserBrief], error) {
	list, total, err := s.FollowDAO.ListFollowers(ctx, userID, page, types.FollowPageSize)
	if err != nil {
		return nil, fmt.Errorf("list followers: %w", err)
	}
	return types.NewPage(briefs(list, func(f *models.UserFollow) *models.User { return f.Follower }), total, page, types.FollowPageSize), nil
}

func briefs(list []*models.UserFollow, pick func(*models.UserFollow) *models.User) []*types.UserBrief {
	out := make([]*types.UserBrief, 0, len(list))
	for _, f := range list {
		if u := pick(f); u != nil {
			out = append(out, toUserBrief(u))
		}
	}
	return out
}
