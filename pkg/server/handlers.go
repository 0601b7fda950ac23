package server

import (
	"Cookhub/handler"
)

type Handlers struct {
	Auth         *handler.Auth
	User         *handler.User
	Follow       *handler.Follow
	Catalog      *handler.Catalog
	Recipe       *handler.Recipe
	Engagement   *handler.Engagement
	Comment      *handler.Comment
	Shopping     *handler.Shopping
	Cookbook     *handler.Cookbook
	Notification *handler.Notification
	Media        *handler.Media
	WebSocket    *handler.WebSocket
}
