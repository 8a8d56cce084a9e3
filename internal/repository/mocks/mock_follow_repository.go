package mocks

import (
	"context"

	"recipeshare/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) Create(ctx context.Context, followerID, followingID int64) (*model.UserFollow, error) {
	args := m.Called(ctx, followerID, followingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserFollow), args.Error(1)
}

func (m *MockFollowRepository) Exists(ctx context.Context, followerID, followingID int64) (bool, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) Delete(ctx context.Context, followerID, followingID int64) (int64, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFollowRepository) ListFollowing(ctx context.Context, followerID int64) ([]model.User, error) {
	args := m.Called(ctx, followerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockFollowRepository) ListFollowers(ctx context.Context, followingID int64) ([]model.User, error) {
	args := m.Called(ctx, followingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}
