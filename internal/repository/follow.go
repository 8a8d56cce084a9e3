package repository

import (
	"context"

	"recipeshare/internal/model"
)

// FollowRepository persists follow edges between users.
// The table does not enforce uniqueness, so Delete reports how many rows went.
type FollowRepository interface {
	Create(ctx context.Context, followerID, followingID int64) (*model.UserFollow, error)
	Exists(ctx context.Context, followerID, followingID int64) (bool, error)
	Delete(ctx context.Context, followerID, followingID int64) (int64, error)
	// ListFollowing returns the users followerID follows.
	ListFollowing(ctx context.Context, followerID int64) ([]model.User, error)
	// ListFollowers returns the users following followingID.
	ListFollowers(ctx context.Context, followingID int64) ([]model.User, error)
}
