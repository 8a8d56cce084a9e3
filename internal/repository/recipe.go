package repository

import (
	"context"

	"recipeshare/internal/model"
)

// RecipeRepository persists recipes.
type RecipeRepository interface {
	Create(ctx context.Context, r *model.Recipe) (*model.Recipe, error)
	FindByID(ctx context.Context, id int64) (*model.Recipe, error)
	List(ctx context.Context) ([]model.Recipe, error)
	Update(ctx context.Context, r *model.Recipe) (*model.Recipe, error)
	Delete(ctx context.Context, id int64) error
}
