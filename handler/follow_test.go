package handler

import (
	"Cookhub/config"
	"Cookhub/pkg/jwt"
	"Cookhub/service"
	"Cookhub/types"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "handler-secret"

type stubFollowService struct {
	err      error
	followID uint64
	page     int
}

func (s *stubFollowService) Toggle(_ context.Context, followerID uint64, username string) (*types.FollowResponse, error) {
	s.followID = followerID
	if s.err != nil {
		return nil, s.err
	}
	return &types.FollowResponse{Following: true, FollowersCount: 1, Message: "You are now following " + username}, nil
}

func (s *stubFollowService) ListFollowing(_ context.Context, _ uint64, page int) (*types.Page[*types.UserBrief], error) {
	s.page = page
	return types.NewPage[*types.UserBrief](nil, 0, page, types.FollowPageSize), s.err
}

func (s *stubFollowService) ListFollowers(_ context.Context, _ uint64, page int) (*types.Page[*types.UserBrief], error) {
	s.page = page
	return types.NewPage[*types.UserBrief](nil, 0, page, types.FollowPageSize), s.err
}

func newFollowRouter(svc service.IFollowService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := &Follow{Config: &config.Config{Jwt: &config.Jwt{Secret: testSecret}}, FollowService: svc}
	h.RegisterRouter(r.Group("/api"))
	return r
}

func bearer(t *testing.T, uid uint64) string {
	t.Helper()
	token, err := jwt.GenerateToken([]byte(testSecret), uid, "alice", jwt.TokenTypeAccess, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

type apiBody struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func serve(t *testing.T, r http.Handler, method, path, auth string) (*httptest.ResponseRecorder, apiBody) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var b apiBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b), w.Body.String())
	return w, b
}

func TestFollow_RequiresToken(t *testing.T) {
	r := newFollowRouter(&stubFollowService{})

	w, b := serve(t, r, http.MethodPost, "/api/v1/follow/bob", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, http.StatusUnauthorized, b.Code)

	w, _ = serve(t, r, http.MethodPost, "/api/v1/follow/bob", "Bearer nope")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFollow_Toggle(t *testing.T) {
	svc := &stubFollowService{}
	r := newFollowRouter(svc)

	w, b := serve(t, r, http.MethodPost, "/api/v1/follow/bob", bearer(t, 42))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, b.Code)
	assert.Equal(t, uint64(42), svc.followID)

	var resp types.FollowResponse
	require.NoError(t, json.Unmarshal(b.Data, &resp))
	assert.Equal(t, "You are now following bob", resp.Message)
}

func TestFollow_ErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{service.ErrSelfFollow, http.StatusBadRequest, service.ErrSelfFollow.Error()},
		{service.ErrUserNotFound, http.StatusNotFound, service.ErrUserNotFound.Error()},
		{errors.New("db down"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tc := range cases {
		r := newFollowRouter(&stubFollowService{err: tc.err})
		w, b := serve(t, r, http.MethodPost, "/api/v1/follow/bob", bearer(t, 1))
		assert.Equal(t, tc.status, w.Code, tc.err.Error())
		assert.Equal(t, tc.msg, b.Msg)
	}
}

func TestFollow_PageQuery(t *testing.T) {
	svc := &stubFollowService{}
	r := newFollowRouter(svc)

	serve(t, r, http.MethodGet, "/api/v1/followers?page=3", bearer(t, 1))
	assert.Equal(t, 3, svc.page)
	serve(t, r, http.MethodGet, "/api/v1/following?page=abc", bearer(t, 1))
	assert.Equal(t, 1, svc.page)
}
