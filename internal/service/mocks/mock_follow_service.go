package mocks

import (
	"context"

	"recipeshare/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockFollowService struct {
	mock.Mock
}

func (m *MockFollowService) Follow(ctx context.Context, followerID, followingID int64) (bool, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowService) Unfollow(ctx context.Context, followerID, followingID int64) (int64, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFollowService) IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowService) Followers(ctx context.Context, userID int64) ([]model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockFollowService) Following(ctx context.Context, userID int64) ([]model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}
