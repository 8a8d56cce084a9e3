package mocks

import (
	"context"
	"io"

	"recipeshare/internal/model"
	"recipeshare/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockCookingPlanService struct {
	mock.Mock
}

func (m *MockCookingPlanService) plan(args mock.Arguments) (*model.CookingPlan, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CookingPlan), args.Error(1)
}

func (m *MockCookingPlanService) Create(ctx context.Context, in service.CookingPlanInput) (*model.CookingPlan, error) {
	return m.plan(m.Called(ctx, in))
}

func (m *MockCookingPlanService) List(ctx context.Context) ([]model.CookingPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CookingPlan), args.Error(1)
}

func (m *MockCookingPlanService) Get(ctx context.Context, id int64) (*model.CookingPlan, error) {
	return m.plan(m.Called(ctx, id))
}

func (m *MockCookingPlanService) Update(ctx context.Context, id int64, in service.CookingPlanInput) (*model.CookingPlan, error) {
	return m.plan(m.Called(ctx, id, in))
}

func (m *MockCookingPlanService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCookingPlanService) ReplaceImage(ctx context.Context, id int64, r io.Reader, originalFilename, contentType string, size int64) (*model.StoredFile, error) {
	args := m.Called(ctx, id, r, originalFilename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StoredFile), args.Error(1)
}
