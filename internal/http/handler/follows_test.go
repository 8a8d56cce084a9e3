package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"recipeshare/internal/model"
	"recipeshare/internal/service"
	serviceMocks "recipeshare/internal/service/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newFollowApp(svc service.FollowService) *fiber.App {
	app := fiber.New()
	app.Post("/user/:id/follow/:targetId", FollowUser(svc))
	app.Delete("/user/:id/unfollow/:targetId", UnfollowUser(svc))
	app.Get("/user/:id/is-following/:targetId", IsFollowing(svc))
	app.Get("/user/:id/followers", ListFollowers(svc))
	app.Get("/user/:id/following", ListFollowing(svc))
	return app
}

func messageOf(resp *http.Response) string {
	var body map[string]string
	json.NewDecoder(resp.Body).Decode(&body)
	return body["message"]
}

func TestFollowUser(t *testing.T) {
	mockSvc := new(serviceMocks.MockFollowService)
	app := newFollowApp(mockSvc)

	t.Run("first follow", func(t *testing.T) {
		mockSvc.On("Follow", mock.Anything, int64(1), int64(2)).Return(true, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/user/1/follow/2", nil))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("already following", func(t *testing.T) {
		mockSvc.On("Follow", mock.Anything, int64(1), int64(2)).Return(false, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/user/1/follow/2", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Already following", messageOf(resp))
	})

	t.Run("self follow", func(t *testing.T) {
		mockSvc.On("Follow", mock.Anything, int64(1), int64(1)).Return(false, service.ErrSelfFollow).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/user/1/follow/1", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "SELF_FOLLOW", decodeError(t, resp).Error.Code)
	})

	t.Run("missing target", func(t *testing.T) {
		mockSvc.On("Follow", mock.Anything, int64(1), int64(99)).Return(false, service.ErrUserNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/user/1/follow/99", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("invalid target id", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/user/1/follow/x", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
	})

	mockSvc.AssertExpectations(t)
}

func TestUnfollowUser(t *testing.T) {
	mockSvc := new(serviceMocks.MockFollowService)
	app := newFollowApp(mockSvc)

	mockSvc.On("Unfollow", mock.Anything, int64(1), int64(2)).Return(int64(2), nil).Once()
	resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/user/1/unfollow/2", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Unfollowed successfully", messageOf(resp))

	mockSvc.On("Unfollow", mock.Anything, int64(1), int64(2)).Return(int64(0), nil).Once()
	resp, _ = app.Test(httptest.NewRequest(http.MethodDelete, "/user/1/unfollow/2", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Not following", messageOf(resp))

	mockSvc.On("Unfollow", mock.Anything, int64(5), int64(2)).Return(int64(0), service.ErrUserNotFound).Once()
	resp, _ = app.Test(httptest.NewRequest(http.MethodDelete, "/user/5/unfollow/2", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	mockSvc.AssertExpectations(t)
}

func TestIsFollowing(t *testing.T) {
	mockSvc := new(serviceMocks.MockFollowService)
	app := newFollowApp(mockSvc)

	mockSvc.On("IsFollowing", mock.Anything, int64(3), int64(4)).Return(true, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/user/3/is-following/4", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]bool
	json.NewDecoder(resp.Body).Decode(&body)
	assert.True(t, body["isFollowing"])
	mockSvc.AssertExpectations(t)
}

func TestFollowLists(t *testing.T) {
	mockSvc := new(serviceMocks.MockFollowService)
	app := newFollowApp(mockSvc)

	mockSvc.On("Followers", mock.Anything, int64(2)).Return([]model.User{{ID: 1}}, nil).Once()
	mockSvc.On("Following", mock.Anything, int64(2)).Return([]model.User{{ID: 3}, {ID: 4}}, nil).Once()
	mockSvc.On("Following", mock.Anything, int64(9)).Return(nil, service.ErrUserNotFound).Once()

	var users []model.User
	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/user/2/followers", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	json.NewDecoder(resp.Body).Decode(&users)
	assert.Len(t, users, 1)

	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/user/2/following", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	json.NewDecoder(resp.Body).Decode(&users)
	assert.Len(t, users, 2)

	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/user/9/following", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	mockSvc.AssertExpectations(t)
}
