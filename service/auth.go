package service

import (
	"Cookhub/config"
	"Cookhub/dao"
	"Cookhub/models"
	"Cookhub/pkg/jwt"
	"Cookhub/types"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.LoginResponse, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error)
}

type AuthService struct {
	Config  *config.Config
	UserDAO *dao.Users
}

// Register 注册后直接签发 token
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*types.LoginResponse, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	taken, err := s.UserDAO.IsUsernameExist(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if taken {
		return nil, ErrUsernameTaken
	}
	if taken, err = s.UserDAO.IsEmailExist(ctx, email, 0); err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hash),
	}
	if err := s.UserDAO.CreateWithProfile(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.issue(user)
}

func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error) {
	user, err := s.UserDAO.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if dao.IsNotFound(err) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("compare password: %w", err)
	}

	return s.issue(user)
}

func (s *AuthService) issue(user *models.User) (*types.LoginResponse, error) {
	expire := time.Duration(s.Config.Jwt.ExpiresIn) * time.Second
	token, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), user.ID, user.Username, jwt.TokenTypeAccess, expire)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &types.LoginResponse{
		Token:     token,
		ExpiresIn: s.Config.Jwt.ExpiresIn,
		User:      toUserBrief(user),
	}, nil
}
