package repository

import (
	"context"

	"recipeshare/internal/model"
)

// CookingPlanRepository persists cooking plans.
type CookingPlanRepository interface {
	Create(ctx context.Context, p *model.CookingPlan) (*model.CookingPlan, error)
	FindByID(ctx context.Context, id int64) (*model.CookingPlan, error)
	List(ctx context.Context) ([]model.CookingPlan, error)
	Update(ctx context.Context, p *model.CookingPlan) (*model.CookingPlan, error)
	Delete(ctx context.Context, id int64) error
	// CountByImage reports how many plans reference the stored image.
	CountByImage(ctx context.Context, image string) (int64, error)
}
