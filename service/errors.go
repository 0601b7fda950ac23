package service

import "errors"

var (
	ErrRecipeNotFound       = errors.New("recipe not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrCommentNotFound      = errors.New("comment not found")
	ErrCookbookNotFound     = errors.New("cookbook not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrShoppingItemNotFound = errors.New("shopping item not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrTagNotFound          = errors.New("tag not found")

	ErrForbidden       = errors.New("forbidden")
	ErrPrivateCookbook = errors.New("cookbook is private")

	ErrInvalidScore       = errors.New("score must be between 1 and 5")
	ErrSelfFollow         = errors.New("you cannot follow yourself")
	ErrEmptyComment       = errors.New("comment cannot be empty")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidImage       = errors.New("invalid image")
)
