package postgres

import (
	"context"
	"database/sql"

	"recipeshare/internal/model"
	"recipeshare/internal/repository"
)

// FollowPostgres is a PostgreSQL implementation of repository.FollowRepository.
type FollowPostgres struct {
	db *sql.DB
}

// NewFollowPostgres creates a new FollowPostgres repository.
func NewFollowPostgres(db *sql.DB) *FollowPostgres {
	return &FollowPostgres{db: db}
}

var _ repository.FollowRepository = (*FollowPostgres)(nil)

func (r *FollowPostgres) Create(ctx context.Context, followerID, followingID int64) (*model.UserFollow, error) {
	const q = `
		INSERT INTO user_follows (follower_id, following_id)
		VALUES ($1, $2)
		RETURNING id, follower_id, following_id, created_at
	`
	var f model.UserFollow
	if err := r.db.QueryRowContext(ctx, q, followerID, followingID).Scan(
		&f.ID,
		&f.FollowerID,
		&f.FollowingID,
		&f.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FollowPostgres) Exists(ctx context.Context, followerID, followingID int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM user_follows WHERE follower_id = $1 AND following_id = $2)`
	var ok bool
	if err := r.db.QueryRowContext(ctx, q, followerID, followingID).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

// Delete removes every edge between the pair and returns how many rows went.
func (r *FollowPostgres) Delete(ctx context.Context, followerID, followingID int64) (int64, error) {
	const q = `DELETE FROM user_follows WHERE follower_id = $1 AND following_id = $2`
	res, err := r.db.ExecContext(ctx, q, followerID, followingID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *FollowPostgres) ListFollowing(ctx context.Context, followerID int64) ([]model.User, error) {
	const q = `
		SELECT DISTINCT u.id, u.email, u.fullname, u.password_hash, u.phone, u.profile_picture, u.created_at, u.updated_at
		FROM user_follows f
		JOIN users u ON u.id = f.following_id
		WHERE f.follower_id = $1
		ORDER BY u.id
	`
	return queryUsers(ctx, r.db, q, followerID)
}

func (r *FollowPostgres) ListFollowers(ctx context.Context, followingID int64) ([]model.User, error) {
	const q = `
		SELECT DISTINCT u.id, u.email, u.fullname, u.password_hash, u.phone, u.profile_picture, u.created_at, u.updated_at
		FROM user_follows f
		JOIN users u ON u.id = f.follower_id
		WHERE f.following_id = $1
		ORDER BY u.id
	`
	return queryUsers(ctx, r.db, q, followingID)
}
