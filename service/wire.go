package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	NewCatalogService,
	wire.Bind(new(ICatalogService), new(*CatalogService)),

	wire.Struct(new(RecipeService), "*"),
	wire.Bind(new(IRecipeService), new(*RecipeService)),

	wire.Struct(new(LikeService), "*"),
	wire.Bind(new(ILikeService), new(*LikeService)),

	wire.Struct(new(FavoriteService), "*"),
	wire.Bind(new(IFavoriteService), new(*FavoriteService)),

	wire.Struct(new(RatingService), "*"),
	wire.Bind(new(IRatingService), new(*RatingService)),

	wire.Struct(new(CommentService), "*"),
	wire.Bind(new(ICommentService), new(*CommentService)),

	wire.Struct(new(FollowService), "*"),
	wire.Bind(new(IFollowService), new(*FollowService)),

	wire.Struct(new(CookbookService), "*"),
	wire.Bind(new(ICookbookService), new(*CookbookService)),

	wire.Struct(new(ShoppingService), "*"),
	wire.Bind(new(IShoppingService), new(*ShoppingService)),

	ProvideMediaStore,
	wire.Struct(new(MediaService), "*"),
	wire.Bind(new(IMediaService), new(*MediaService)),

	wire.Struct(new(NoticeStore), "*"),
	NewFanOut,
	ProvideDispatcher,
	wire.Struct(new(NoticeService), "*"),
	wire.Bind(new(INoticeService), new(*NoticeService)),
)

// ConsumerSet consume 命令使用
var ConsumerSet = wire.NewSet(
	wire.Struct(new(NoticeStore), "*"),
	NewFanOut,
	ProvidePublisher,
	wire.Struct(new(NoticeConsumer), "*"),
)
