package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"recipeshare/internal/model"
	repoMocks "recipeshare/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newFollowService(mUsers *repoMocks.MockUserRepository, mFollows *repoMocks.MockFollowRepository) FollowService {
	return NewFollowService(NewUserService(mUsers, nil), mFollows)
}

func TestFollowService_Follow(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		follower    int64
		following   int64
		setupMocks  func(mUsers *repoMocks.MockUserRepository, mFollows *repoMocks.MockFollowRepository)
		wantCreated bool
		wantErr     error
		wantErrMsg  string
	}{
		{
			name:      "first follow creates edge",
			follower:  1,
			following: 2,
			setupMocks: func(mUsers *repoMocks.MockUserRepository, mFollows *repoMocks.MockFollowRepository) {
				mUsers.On("FindByID", ctx, int64(1)).Return(&model.User{ID: 1}, nil)
				mUsers.On("FindByID", ctx, int64(2)).Return(&model.User{ID: 2}, nil)
				mFollows.On("Exists", ctx, int64(1), int64(2)).Return(false, nil)
				mFollows.On("Create", ctx, int64(1), int64(2)).Return(&model.UserFollow{ID: 1}, nil)
			},
			wantCreated: true,
		},
		{
			name:      "second follow is a no-op",
			follower:  1,
			following: 2,
			setupMocks: func(mUsers *repoMocks.MockUserRepository, mFollows *repoMocks.MockFollowRepository) {
				mUsers.On("FindByID", ctx, int64(1)).Return(&model.User{ID: 1}, nil)
				mUsers.On("FindByID", ctx, int64(2)).Return(&model.User{ID: 2}, nil)
				mFollows.On("Exists", ctx, int64(1), int64(2)).Return(true, nil)
			},
		},
		{
			name:      "self follow",
			follower:  3,
			following: 3,
			setupMocks: func(mUsers *repoMocks.MockUserRepository, mFollows *repoMocks.MockFollowRepository) {
			},
			wantErr: ErrSelfFollow,
		},
		{
			name:      "target missing",
			follower:  1,
			following: 9,
			setupMocks: func(mUsers *repoMocks.MockUserRepository, mFollows *repoMocks.MockFollowRepository) {
				mUsers.On("FindByID", ctx, int64(1)).Return(&model.User{ID: 1}, nil)
				mUsers.On("FindByID", ctx, int64(9)).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrUserNotFound,
		},
		{
			name:      "insert error",
			follower:  1,
			following: 2,
			setupMocks: func(mUsers *repoMocks.MockUserRepository, mFollows *repoMocks.MockFollowRepository) {
				mUsers.On("FindByID", ctx, mock.Anything).Return(&model.User{}, nil)
				mFollows.On("Exists", ctx, int64(1), int64(2)).Return(false, nil)
				mFollows.On("Create", ctx, int64(1), int64(2)).Return(nil, errors.New("fk violation"))
			},
			wantErrMsg: "fk violation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mUsers := new(repoMocks.MockUserRepository)
			mFollows := new(repoMocks.MockFollowRepository)
			tt.setupMocks(mUsers, mFollows)

			created, err := newFollowService(mUsers, mFollows).Follow(ctx, tt.follower, tt.following)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantErrMsg != "":
				assert.ErrorContains(t, err, tt.wantErrMsg)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.wantCreated, created)
			}
			mUsers.AssertExpectations(t)
			mFollows.AssertExpectations(t)
		})
	}
}

func TestFollowService_Unfollow(t *testing.T) {
	ctx := context.Background()

	t.Run("removes duplicates", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		mFollows := new(repoMocks.MockFollowRepository)
		mUsers.On("FindByID", ctx, mock.Anything).Return(&model.User{}, nil)
		mFollows.On("Delete", ctx, int64(1), int64(2)).Return(int64(2), nil)

		n, err := newFollowService(mUsers, mFollows).Unfollow(ctx, 1, 2)

		assert.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("nothing to remove", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		mFollows := new(repoMocks.MockFollowRepository)
		mUsers.On("FindByID", ctx, mock.Anything).Return(&model.User{}, nil)
		mFollows.On("Delete", ctx, int64(1), int64(2)).Return(int64(0), nil)

		n, err := newFollowService(mUsers, mFollows).Unfollow(ctx, 1, 2)

		assert.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("missing user", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		mFollows := new(repoMocks.MockFollowRepository)
		mUsers.On("FindByID", ctx, int64(1)).Return(nil, sql.ErrNoRows)

		_, err := newFollowService(mUsers, mFollows).Unfollow(ctx, 1, 2)

		assert.ErrorIs(t, err, ErrUserNotFound)
		mFollows.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestFollowService_Lists(t *testing.T) {
	ctx := context.Background()
	mUsers := new(repoMocks.MockUserRepository)
	mFollows := new(repoMocks.MockFollowRepository)
	mUsers.On("FindByID", ctx, int64(1)).Return(&model.User{ID: 1}, nil)
	mUsers.On("FindByID", ctx, int64(4)).Return(nil, sql.ErrNoRows)
	mFollows.On("ListFollowers", ctx, int64(1)).Return([]model.User{{ID: 2}, {ID: 3}}, nil)
	mFollows.On("ListFollowing", ctx, int64(1)).Return([]model.User{{ID: 2}}, nil)
	mFollows.On("Exists", ctx, int64(1), int64(2)).Return(true, nil)

	svc := newFollowService(mUsers, mFollows)

	followers, err := svc.Followers(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, followers, 2)

	following, err := svc.Following(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, following, 1)

	ok, err := svc.IsFollowing(ctx, 1, 2)
	assert.NoError(t, err)
	assert.True(t, ok)

	_, err = svc.Followers(ctx, 4)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
