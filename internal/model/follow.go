package model

import "time"

// UserFollow is a directed edge: FollowerID follows FollowingID.
type UserFollow struct {
	ID          int64     `json:"id"`
	FollowerID  int64     `json:"followerId"`
	FollowingID int64     `json:"followingId"`
	CreatedAt   time.Time `json:"createdAt"`
}
