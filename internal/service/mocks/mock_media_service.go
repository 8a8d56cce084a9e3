package mocks

import (
	"context"
	"io"

	"recipeshare/internal/model"
	"recipeshare/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) Save(ctx context.Context, folder string, r io.Reader, originalFilename, contentType string, size int64) (*model.StoredFile, error) {
	args := m.Called(ctx, folder, r, originalFilename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StoredFile), args.Error(1)
}

func (m *MockMediaService) Open(ctx context.Context, folder, filename string) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, folder, filename)
	if args.Get(0) == nil {
		return nil, args.Get(1).(storage.ObjectInfo), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.ObjectInfo), args.Error(2)
}

func (m *MockMediaService) Remove(ctx context.Context, folder, filename string) error {
	args := m.Called(ctx, folder, filename)
	return args.Error(0)
}
