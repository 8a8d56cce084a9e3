package service

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrPlanNotFound       = errors.New("cooking plan not found")
	ErrFileNotFound       = errors.New("file not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrEmailRequired      = errors.New("email is required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSelfFollow         = errors.New("cannot follow yourself")
	ErrTooManyImages      = errors.New("a recipe can have at most 3 images")
	ErrReaderNil          = errors.New("reader is nil")
	ErrUnsupportedType    = errors.New("unsupported file type")
	ErrInvalidFilename    = errors.New("invalid filename")
	ErrInvalidFolder      = errors.New("unknown upload folder")
)
