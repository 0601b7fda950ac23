package service

import (
	"Cookhub/dao"
	"Cookhub/types"
	"context"
	"fmt"
	"strings"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	GetProfile(ctx context.Context, userID uint64) (*types.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uint64, req *types.UpdateProfileRequest) (*types.ProfileResponse, error)
	GetPublicProfile(ctx context.Context, viewerID uint64, username string) (*types.PublicProfileResponse, error)
	ListRecipes(ctx context.Context, username string, page int) (*types.Page[*types.RecipeCard], error)
}

type UserService struct {
	UserDAO   *dao.Users
	FollowDAO *dao.UserFollowDAO
	RecipeDAO *dao.Recipe
}

func (s *UserService) GetProfile(ctx context.Context, userID uint64) (*types.ProfileResponse, error) {
	user, err := s.UserDAO.GetWithProfile(ctx, userID)
	if dao.IsNotFound(err) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	resp := &types.ProfileResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
	if user.Profile != nil {
		resp.Bio = user.Profile.Bio
		resp.Avatar = user.Profile.Avatar
	}
	return resp, nil
}

// UpdateProfile 只修改请求中出现的字段
func (s *UserService) UpdateProfile(ctx context.Context, userID uint64, req *types.UpdateProfileRequest) (*types.ProfileResponse, error) {
	userUpdates := make(map[string]any)
	profileUpdates := make(map[string]any)

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		taken, err := s.UserDAO.IsEmailExist(ctx, email, userID)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if taken {
			return nil, ErrEmailTaken
		}
		userUpdates["email"] = email
	}
	if req.Bio != nil {
		profileUpdates["bio"] = strings.TrimSpace(*req.Bio)
	}
	if req.Avatar != nil {
		profileUpdates["avatar"] = *req.Avatar
	}

	if err := s.UserDAO.UpdateProfile(ctx, userID, userUpdates, profileUpdates); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return s.GetProfile(ctx, userID)
}

// GetPublicProfile viewerID 为 0 表示未登录
func (s *UserService) GetPublicProfile(ctx context.Context, viewerID uint64, username string) (*types.PublicProfileResponse, error) {
	user, err := s.UserDAO.FindByUsername(ctx, username)
	if dao.IsNotFound(err) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	followers, err := s.FollowDAO.GetFollowerCount(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	following, err := s.FollowDAO.GetFollowingCount(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	resp := &types.PublicProfileResponse{
		ID:             user.ID,
		Username:       user.Username,
		FollowersCount: followers,
		FollowingCount: following,
		IsSelf:         viewerID == user.ID,
		JoinedAt:       user.CreatedAt,
	}
	if user.Profile != nil {
		resp.Bio = user.Profile.Bio
		resp.Avatar = user.Profile.Avatar
	}
	if viewerID > 0 && viewerID != user.ID {
		if resp.IsFollowing, err = s.FollowDAO.IsFollowing(ctx, viewerID, user.ID); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

// ListRecipes 用户已发布的食谱
func (s *UserService) ListRecipes(ctx context.Context, username string, page int) (*types.Page[*types.RecipeCard], error) {
	user, err := s.UserDAO.FindByUsername(ctx, username)
	if dao.IsNotFound(err) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	list, total, err := s.RecipeDAO.ListByAuthor(ctx, user.ID, page, types.RecipePageSize)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return types.NewPage(toRecipeCards(list), total, page, types.RecipePageSize), nil
}
