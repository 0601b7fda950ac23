//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewCategory,
	NewTag,
	NewRecipe,
	NewLike,
	NewFavorite,
	NewRating,
	NewComment,
	NewUserFollowDAO,
	NewNotification,
	NewNoticeOutbox,
	NewCookbook,
	NewShopping,
)
