package service

import (
	"context"

	"recipeshare/internal/model"
	"recipeshare/internal/repository"
)

// FollowService manages follow relationships between users.
type FollowService interface {
	// Follow makes followerID follow followingID. created is false when the
	// edge already existed, in which case nothing is written.
	Follow(ctx context.Context, followerID, followingID int64) (created bool, err error)
	// Unfollow removes every edge between the pair and reports how many went.
	Unfollow(ctx context.Context, followerID, followingID int64) (removed int64, err error)
	IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error)
	Followers(ctx context.Context, userID int64) ([]model.User, error)
	Following(ctx context.Context, userID int64) ([]model.User, error)
}

type followService struct {
	users   UserService
	follows repository.FollowRepository
}

// NewFollowService constructs a new FollowService.
func NewFollowService(users UserService, follows repository.FollowRepository) FollowService {
	return &followService{users: users, follows: follows}
}

func (s *followService) ensureUsers(ctx context.Context, ids ...int64) error {
	for _, id := range ids {
		if _, err := s.users.Get(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (s *followService) Follow(ctx context.Context, followerID, followingID int64) (bool, error) {
	if followerID == followingID {
		return false, ErrSelfFollow
	}
	if err := s.ensureUsers(ctx, followerID, followingID); err != nil {
		return false, err
	}
	exists, err := s.follows.Exists(ctx, followerID, followingID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if _, err := s.follows.Create(ctx, followerID, followingID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *followService) Unfollow(ctx context.Context, followerID, followingID int64) (int64, error) {
	if err := s.ensureUsers(ctx, followerID, followingID); err != nil {
		return 0, err
	}
	return s.follows.Delete(ctx, followerID, followingID)
}

func (s *followService) IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error) {
	return s.follows.Exists(ctx, followerID, followingID)
}

func (s *followService) Followers(ctx context.Context, userID int64) ([]model.User, error) {
	if err := s.ensureUsers(ctx, userID); err != nil {
		return nil, err
	}
	return s.follows.ListFollowers(ctx, userID)
}

func (s *followService) Following(ctx context.Context, userID int64) ([]model.User, error) {
	if err := s.ensureUsers(ctx, userID); err != nil {
		return nil, err
	}
	return s.follows.ListFollowing(ctx, userID)
}
