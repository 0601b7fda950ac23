package service

import (
	"Cookhub/dao"
	"Cookhub/models"
	"Cookhub/pkg/log"
	"Cookhub/types"
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	Create(ctx context.Context, userID uint64, slug string, req *types.CreateCommentRequest) (*types.CommentItem, error)
	List(ctx context.Context, slug string) ([]*types.CommentItem, error)
	ListByRecipe(ctx context.Context, recipeID uint64) ([]*types.CommentItem, error)
	Delete(ctx context.Context, userID uint64, slug string, commentID uint64) error
}

type CommentService struct {
	CommentDAO *dao.Comment
	RecipeDAO  *dao.Recipe
	UserDAO    *dao.Users
	Notice     INoticeService
}

// Create 父评论不属于该食谱时按一级评论保存；回复的回复挂到其一级评论下
func (s *CommentService) Create(ctx context.Context, userID uint64, slug string, req *types.CreateCommentRequest) (*types.CommentItem, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrEmptyComment
	}
	recipe, err := findRecipe(ctx, s.RecipeDAO, slug)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		RecipeID: recipe.ID,
		UserID:   userID,
		Content:  content,
	}
	if req.ParentID != nil {
		parentID, err := s.resolveParent(ctx, recipe.ID, *req.ParentID)
		if err != nil {
			return nil, err
		}
		comment.ParentID = parentID
	}

	if err := s.CommentDAO.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	s.Notice.NotifyComment(ctx, userID, recipe)

	// 评论已落库，作者信息加载失败只记日志
	user, err := s.UserDAO.GetWithProfile(ctx, userID)
	if err != nil {
		log.L.Warn("load comment author failed", zap.Uint64("comment_id", comment.ID), zap.Error(err))
	}
	comment.User = user
	return toCommentItem(comment, 0), nil
}

func (s *CommentService) resolveParent(ctx context.Context, recipeID, parentID uint64) (*uint64, error) {
	parent, err := s.CommentDAO.GetByID(ctx, parentID)
	if dao.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get parent comment: %w", err)
	}
	if parent.RecipeID != recipeID {
		return nil, nil
	}
	if parent.ParentID != nil {
		root := *parent.ParentID
		return &root, nil
	}
	return &parent.ID, nil
}

func (s *CommentService) List(ctx context.Context, slug string) ([]*types.CommentItem, error) {
	recipe, err := findRecipe(ctx, s.RecipeDAO, slug)
	if err != nil {
		return nil, err
	}
	return s.ListByRecipe(ctx, recipe.ID)
}

// ListByRecipe 一级评论倒序，回复正序，回复数实时统计
func (s *CommentService) ListByRecipe(ctx context.Context, recipeID uint64) ([]*types.CommentItem, error) {
	roots, err := s.CommentDAO.GetRootComments(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("get root comments: %w", err)
	}

	ids := make([]uint64, 0, len(roots))
	for _, c := range roots {
		ids = append(ids, c.ID)
	}
	replies, err := s.CommentDAO.BatchGetReplies(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get replies: %w", err)
	}
	counts, err := s.CommentDAO.BatchCountReplies(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("count replies: %w", err)
	}

	items := make([]*types.CommentItem, 0, len(roots))
	for _, c := range roots {
		item := toCommentItem(c, counts[c.ID])
		for _, r := range replies[c.ID] {
			item.Replies = append(item.Replies, toCommentItem(r, 0))
		}
		items = append(items, item)
	}
	return items, nil
}

// Delete 仅作者本人可删除
func (s *CommentService) Delete(ctx context.Context, userID uint64, slug string, commentID uint64) error {
	recipe, err := findRecipe(ctx, s.RecipeDAO, slug)
	if err != nil {
		return err
	}
	comment, err := s.CommentDAO.GetByID(ctx, commentID)
	if dao.IsNotFound(err) || (err == nil && comment.RecipeID != recipe.ID) {
		return ErrCommentNotFound
	}
	if err != nil {
		return fmt.Errorf("get comment: %w", err)
	}
	if comment.UserID != userID {
		return ErrForbidden
	}

	if err := s.CommentDAO.DeleteWithReplies(ctx, comment.ID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}

func toCommentItem(c *models.Comment, repliesCount int64) *types.CommentItem {
	return &types.CommentItem{
		ID:           c.ID,
		Content:      c.Content,
		User:         toUserBrief(c.User),
		ParentID:     c.ParentID,
		CreatedAt:    c.CreatedAt,
		RepliesCount: repliesCount,
	}
}
