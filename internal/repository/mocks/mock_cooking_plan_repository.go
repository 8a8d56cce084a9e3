package mocks

import (
	"context"

	"recipeshare/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockCookingPlanRepository struct {
	mock.Mock
}

func (m *MockCookingPlanRepository) Create(ctx context.Context, p *model.CookingPlan) (*model.CookingPlan, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CookingPlan), args.Error(1)
}

func (m *MockCookingPlanRepository) FindByID(ctx context.Context, id int64) (*model.CookingPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CookingPlan), args.Error(1)
}

func (m *MockCookingPlanRepository) List(ctx context.Context) ([]model.CookingPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CookingPlan), args.Error(1)
}

func (m *MockCookingPlanRepository) Update(ctx context.Context, p *model.CookingPlan) (*model.CookingPlan, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CookingPlan), args.Error(1)
}

func (m *MockCookingPlanRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCookingPlanRepository) CountByImage(ctx context.Context, image string) (int64, error) {
	args := m.Called(ctx, image)
	return args.Get(0).(int64), args.Error(1)
}
