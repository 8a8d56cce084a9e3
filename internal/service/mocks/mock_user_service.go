package mocks

import (
	"context"
	"io"

	"recipeshare/internal/model"
	"recipeshare/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) user(args mock.Arguments) (*model.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Register(ctx context.Context, in service.RegisterInput) (*model.User, error) {
	return m.user(m.Called(ctx, in))
}

func (m *MockUserService) Login(ctx context.Context, in service.LoginInput) (*model.User, error) {
	return m.user(m.Called(ctx, in))
}

func (m *MockUserService) GoogleLogin(ctx context.Context, in service.GoogleLoginInput) (*model.User, error) {
	return m.user(m.Called(ctx, in))
}

func (m *MockUserService) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id int64) (*model.User, error) {
	return m.user(m.Called(ctx, id))
}

func (m *MockUserService) Update(ctx context.Context, id int64, in service.UpdateUserInput) (*model.User, error) {
	return m.user(m.Called(ctx, id, in))
}

func (m *MockUserService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserService) UploadProfilePicture(ctx context.Context, id int64, r io.Reader, originalFilename, contentType string, size int64) (*model.User, error) {
	return m.user(m.Called(ctx, id, r, originalFilename, contentType, size))
}
