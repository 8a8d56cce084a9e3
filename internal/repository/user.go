package repository

import (
	"context"

	"recipeshare/internal/model"
)

// UserRepository persists users.
type UserRepository interface {
	// Create inserts a user and returns the stored row. A taken email yields ErrDuplicate.
	Create(ctx context.Context, u *model.User) (*model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	// Update writes every mutable column of u. Returns sql.ErrNoRows when the user is missing.
	Update(ctx context.Context, u *model.User) (*model.User, error)
	// Delete removes a user. Returns sql.ErrNoRows when nothing was deleted.
	Delete(ctx context.Context, id int64) error
}
