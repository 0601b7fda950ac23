package service

import (
	"Cookhub/config"
	"Cookhub/dao"
	"Cookhub/dao/cache"
	"Cookhub/models"
	"Cookhub/types"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testConfig = `
app:
  name: cookhub-test
  hash_salt: test-salt
jwt:
  secret: test-secret
notify:
  batch_size: 2
`

type pushed struct {
	recipientID uint64
	msg         *types.PushMessage
}

type recordPusher struct {
	mu   sync.Mutex
	list []pushed
}

func (p *recordPusher) Push(recipientID uint64, msg *types.PushMessage) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.list = append(p.list, pushed{recipientID: recipientID, msg: msg})
}

func (p *recordPusher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.list)
}

type testEnv struct {
	ctx    context.Context
	conf   *config.Config
	db     *gorm.DB
	mr     *miniredis.Miniredis
	pusher *recordPusher

	UserDAO         *dao.Users
	RecipeDAO       *dao.Recipe
	FollowDAO       *dao.UserFollowDAO
	NotificationDAO *dao.Notification
	OutboxDAO       *dao.NoticeOutbox
	ShoppingDAO     *dao.Shopping

	Unread    *cache.UnreadStorage
	Store     *NoticeStore
	FanOut    *FanOut
	Notice    *NoticeService
	Auth      *AuthService
	Users     *UserService
	Catalog   *CatalogService
	Comments  *CommentService
	Recipes   *RecipeService
	Likes     *LikeService
	Favorites *FavoriteService
	Ratings   *RatingService
	Follows   *FollowService
	Cookbooks *CookbookService
	Shopping  *ShoppingService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	conf, err := config.Parse([]byte(testConfig))
	require.NoError(t, err)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 内存库每个连接都是独立的库
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, dao.AutoMigrate(db))

	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rds.Close() })

	e := &testEnv{
		ctx:             context.Background(),
		conf:            conf,
		db:              db,
		mr:              mr,
		pusher:          &recordPusher{},
		UserDAO:         dao.NewUsers(db),
		RecipeDAO:       dao.NewRecipe(db),
		FollowDAO:       dao.NewUserFollowDAO(db),
		NotificationDAO: dao.NewNotification(db),
		OutboxDAO:       dao.NewNoticeOutbox(db),
		ShoppingDAO:     dao.NewShopping(db),
		Unread:          cache.NewUnreadStorage(rds, time.Minute),
	}
	e.Store = &NoticeStore{NotificationDAO: e.NotificationDAO, Unread: e.Unread, Pusher: e.pusher}
	e.FanOut = NewFanOut(conf.Notify, e.RecipeDAO, e.UserDAO, e.FollowDAO, e.Store)
	e.Notice = &NoticeService{
		NotificationDAO: e.NotificationDAO,
		UserDAO:         e.UserDAO,
		Unread:          e.Unread,
		Store:           e.Store,
		Dispatcher:      &InlineDispatcher{FanOut: e.FanOut},
	}

	likeDAO, favoriteDAO, ratingDAO := dao.NewLike(db), dao.NewFavorite(db), dao.NewRating(db)
	e.Auth = &AuthService{Config: conf, UserDAO: e.UserDAO}
	e.Users = &UserService{UserDAO: e.UserDAO, FollowDAO: e.FollowDAO, RecipeDAO: e.RecipeDAO}
	e.Catalog = NewCatalogService(dao.NewCategory(db), dao.NewTag(db))
	e.Comments = &CommentService{CommentDAO: dao.NewComment(db), RecipeDAO: e.RecipeDAO, UserDAO: e.UserDAO, Notice: e.Notice}
	e.Recipes = &RecipeService{
		RecipeDAO:   e.RecipeDAO,
		CategoryDAO: e.Catalog.CategoryDAO,
		LikeDAO:     likeDAO,
		FavoriteDAO: favoriteDAO,
		RatingDAO:   ratingDAO,
		Catalog:     e.Catalog,
		Comments:    e.Comments,
		Notice:      e.Notice,
	}
	e.Likes = &LikeService{LikeDAO: likeDAO, RecipeDAO: e.RecipeDAO, Notice: e.Notice}
	e.Favorites = &FavoriteService{FavoriteDAO: favoriteDAO, RecipeDAO: e.RecipeDAO}
	e.Ratings = &RatingService{RatingDAO: ratingDAO, RecipeDAO: e.RecipeDAO}
	e.Follows = &FollowService{FollowDAO: e.FollowDAO, UserDAO: e.UserDAO, Notice: e.Notice}
	e.Cookbooks = &CookbookService{Config: conf, CookbookDAO: dao.NewCookbook(db), RecipeDAO: e.RecipeDAO}
	e.Shopping = &ShoppingService{ShoppingDAO: e.ShoppingDAO, RecipeDAO: e.RecipeDAO}
	return e
}

// user 以最低 cost 直接建用户
func (e *testEnv) user(t *testing.T, username string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	u := &models.User{Username: username, Email: username + "@example.com", Password: string(hash)}
	require.NoError(t, e.UserDAO.CreateWithProfile(e.ctx, u))
	return u
}

func (e *testEnv) recipe(t *testing.T, author *models.User, title string, mutate ...func(*types.RecipeRequest)) *types.RecipeItem {
	t.Helper()
	req := &types.RecipeRequest{
		Title:       title,
		Description: title + " description",
		Ingredients: "2 eggs\n1 cup flour\n",
		CookingTime: 20,
		Difficulty:  string(models.DifficultyEasy),
	}
	for _, fn := range mutate {
		fn(req)
	}
	item, err := e.Recipes.Create(e.ctx, author.ID, req)
	require.NoError(t, err)
	return item
}

func (e *testEnv) follow(t *testing.T, follower, target *models.User) {
	t.Helper()
	resp, err := e.Follows.Toggle(e.ctx, follower.ID, target.Username)
	require.NoError(t, err)
	require.True(t, resp.Following)
}

func (e *testEnv) notifications(t *testing.T, recipientID uint64, typ models.NotificationType) []*models.Notification {
	t.Helper()
	var list []*models.Notification
	require.NoError(t, e.db.Where("recipient_id = ? AND type = ?", recipientID, typ).Order("id ASC").Find(&list).Error)
	return list
}

func draft(req *types.RecipeRequest) {
	published := false
	req.IsPublished = &published
}
