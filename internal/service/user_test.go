package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"
	"testing"

	"recipeshare/internal/model"
	"recipeshare/internal/repository"
	repoMocks "recipeshare/internal/repository/mocks"
	"recipeshare/internal/storage"
	storeMocks "recipeshare/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserService(mRepo *repoMocks.MockUserRepository, mStore *storeMocks.MockStorage) UserService {
	return NewUserService(mRepo, NewMediaService(mStore))
}

func hashed(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	in := RegisterInput{Fullname: "Cook", Email: " cook@example.com ", Password: "secret1", Phone: "0812"}

	tests := []struct {
		name       string
		setupMocks func(mRepo *repoMocks.MockUserRepository)
		wantErr    error
		wantErrMsg string
	}{
		{
			name: "happy path",
			setupMocks: func(mRepo *repoMocks.MockUserRepository) {
				mRepo.On("FindByEmail", ctx, "cook@example.com").Return(nil, sql.ErrNoRows)
				mRepo.On("Create", ctx, mock.MatchedBy(func(u *model.User) bool {
					return u.Email == "cook@example.com" &&
						bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")) == nil
				})).Return(&model.User{ID: 1, Email: "cook@example.com"}, nil)
			},
		},
		{
			name: "email taken",
			setupMocks: func(mRepo *repoMocks.MockUserRepository) {
				mRepo.On("FindByEmail", ctx, "cook@example.com").Return(&model.User{ID: 9}, nil)
			},
			wantErr: ErrEmailTaken,
		},
		{
			name: "unique violation on insert",
			setupMocks: func(mRepo *repoMocks.MockUserRepository) {
				mRepo.On("FindByEmail", ctx, "cook@example.com").Return(nil, sql.ErrNoRows)
				mRepo.On("Create", ctx, mock.Anything).Return(nil, repository.ErrDuplicate)
			},
			wantErr: ErrEmailTaken,
		},
		{
			name: "lookup error",
			setupMocks: func(mRepo *repoMocks.MockUserRepository) {
				mRepo.On("FindByEmail", ctx, "cook@example.com").Return(nil, errors.New("db down"))
			},
			wantErrMsg: "db down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockUserRepository)
			tt.setupMocks(mRepo)

			u, err := newUserService(mRepo, nil).Register(ctx, in)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantErrMsg != "":
				assert.ErrorContains(t, err, tt.wantErrMsg)
			default:
				assert.NoError(t, err)
				assert.Equal(t, int64(1), u.ID)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	stored := &model.User{ID: 3, Email: "a@b.c", PasswordHash: hashed(t, "right-pw")}

	tests := []struct {
		name     string
		password string
		found    bool
		wantErr  error
	}{
		{name: "success", password: "right-pw", found: true},
		{name: "wrong password", password: "wrong-pw", found: true, wantErr: ErrInvalidCredentials},
		{name: "unknown email", password: "right-pw", wantErr: ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockUserRepository)
			if tt.found {
				mRepo.On("FindByEmail", ctx, "a@b.c").Return(stored, nil)
			} else {
				mRepo.On("FindByEmail", ctx, "a@b.c").Return(nil, sql.ErrNoRows)
			}

			u, err := newUserService(mRepo, nil).Login(ctx, LoginInput{Email: "a@b.c", Password: tt.password})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, u)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(3), u.ID)
			}
		})
	}
}

func TestUserService_GoogleLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("missing email", func(t *testing.T) {
		_, err := newUserService(new(repoMocks.MockUserRepository), nil).GoogleLogin(ctx, GoogleLoginInput{Name: "X"})
		assert.ErrorIs(t, err, ErrEmailRequired)
	})

	t.Run("existing user", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		mRepo.On("FindByEmail", ctx, "g@b.c").Return(&model.User{ID: 5, Email: "g@b.c"}, nil)

		u, err := newUserService(mRepo, nil).GoogleLogin(ctx, GoogleLoginInput{Email: "g@b.c", Name: "G"})

		assert.NoError(t, err)
		assert.Equal(t, int64(5), u.ID)
		mRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("new user falls back to email local part", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		mRepo.On("FindByEmail", ctx, "chef.budi@b.c").Return(nil, sql.ErrNoRows)
		mRepo.On("Create", ctx, mock.MatchedBy(func(u *model.User) bool {
			return u.Fullname == "chef.budi" && u.PasswordHash != ""
		})).Return(&model.User{ID: 6, Email: "chef.budi@b.c", Fullname: "chef.budi"}, nil)

		u, err := newUserService(mRepo, nil).GoogleLogin(ctx, GoogleLoginInput{Email: "chef.budi@b.c"})

		assert.NoError(t, err)
		assert.Equal(t, "chef.budi", u.Fullname)
		mRepo.AssertExpectations(t)
	})

	t.Run("new user keeps name", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		mRepo.On("FindByEmail", ctx, "n@b.c").Return(nil, sql.ErrNoRows)
		mRepo.On("Create", ctx, mock.MatchedBy(func(u *model.User) bool {
			return u.Fullname == "Nadia"
		})).Return(&model.User{ID: 7, Fullname: "Nadia"}, nil)

		u, err := newUserService(mRepo, nil).GoogleLogin(ctx, GoogleLoginInput{Email: "n@b.c", Name: "Nadia"})

		assert.NoError(t, err)
		assert.Equal(t, int64(7), u.ID)
	})
}

func TestUserService_Get(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockUserRepository)
	mRepo.On("FindByID", ctx, int64(1)).Return(&model.User{ID: 1}, nil)
	mRepo.On("FindByID", ctx, int64(2)).Return(nil, sql.ErrNoRows)
	svc := newUserService(mRepo, nil)

	u, err := svc.Get(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)

	_, err = svc.Get(ctx, 2)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()
	oldHash := hashed(t, "old-pw")

	tests := []struct {
		name       string
		in         UpdateUserInput
		setupMocks func(mRepo *repoMocks.MockUserRepository)
		wantErr    error
	}{
		{
			name: "empty password keeps hash",
			in:   UpdateUserInput{Fullname: "New", Email: "a@b.c", Phone: "1"},
			setupMocks: func(mRepo *repoMocks.MockUserRepository) {
				mRepo.On("FindByID", ctx, int64(1)).Return(&model.User{ID: 1, Email: "a@b.c", PasswordHash: oldHash}, nil)
				mRepo.On("Update", ctx, mock.MatchedBy(func(u *model.User) bool {
					return u.PasswordHash == oldHash && u.Fullname == "New"
				})).Return(&model.User{ID: 1, Fullname: "New"}, nil)
			},
		},
		{
			name: "new password is rehashed",
			in:   UpdateUserInput{Fullname: "New", Email: "a@b.c", Phone: "1", Password: "new-pw"},
			setupMocks: func(mRepo *repoMocks.MockUserRepository) {
				mRepo.On("FindByID", ctx, int64(1)).Return(&model.User{ID: 1, Email: "a@b.c", PasswordHash: oldHash}, nil)
				mRepo.On("Update", ctx, mock.MatchedBy(func(u *model.User) bool {
					return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("new-pw")) == nil
				})).Return(&model.User{ID: 1}, nil)
			},
		},
		{
			name: "email owned by another user",
			in:   UpdateUserInput{Fullname: "New", Email: "taken@b.c", Phone: "1"},
			setupMocks: func(mRepo *repoMocks.MockUserRepository) {
				mRepo.On("FindByID", ctx, int64(1)).Return(&model.User{ID: 1, Email: "a@b.c"}, nil)
				mRepo.On("FindByEmail", ctx, "taken@b.c").Return(&model.User{ID: 2}, nil)
			},
			wantErr: ErrEmailTaken,
		},
		{
			name: "unique violation on update",
			in:   UpdateUserInput{Fullname: "New", Email: "race@b.c", Phone: "1"},
			setupMocks: func(mRepo *repoMocks.MockUserRepository) {
				mRepo.On("FindByID", ctx, int64(1)).Return(&model.User{ID: 1, Email: "a@b.c"}, nil)
				mRepo.On("FindByEmail", ctx, "race@b.c").Return(nil, sql.ErrNoRows)
				mRepo.On("Update", ctx, mock.Anything).Return(nil, repository.ErrDuplicate)
			},
			wantErr: ErrEmailTaken,
		},
		{
			name: "missing user",
			in:   UpdateUserInput{Fullname: "New", Email: "a@b.c", Phone: "1"},
			setupMocks: func(mRepo *repoMocks.MockUserRepository) {
				mRepo.On("FindByID", ctx, int64(1)).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockUserRepository)
			tt.setupMocks(mRepo)

			_, err := newUserService(mRepo, nil).Update(ctx, 1, tt.in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockUserRepository)
	mRepo.On("Delete", ctx, int64(1)).Return(nil)
	mRepo.On("Delete", ctx, int64(2)).Return(sql.ErrNoRows)
	svc := newUserService(mRepo, nil)

	assert.NoError(t, svc.Delete(ctx, 1))
	assert.ErrorIs(t, svc.Delete(ctx, 2), ErrUserNotFound)
}

func TestUserService_UploadProfilePicture(t *testing.T) {
	ctx := context.Background()
	putKey := func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
		return storage.ObjectInfo{Key: key, Size: opt.Size}
	}

	tests := []struct {
		name       string
		filename   string
		setupMocks func(mRepo *repoMocks.MockUserRepository, mStore *storeMocks.MockStorage, r io.Reader)
		wantErr    error
		wantErrMsg string
	}{
		{
			name:     "replaces previous picture",
			filename: "me.jpg",
			setupMocks: func(mRepo *repoMocks.MockUserRepository, mStore *storeMocks.MockStorage, r io.Reader) {
				mRepo.On("FindByID", ctx, int64(1)).Return(&model.User{ID: 1, ProfilePicture: "/uploads/profiles/old.jpg"}, nil)
				mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "profiles/") && strings.HasSuffix(key, ".jpg")
				}), r, mock.Anything).Return(putKey, nil)
				mRepo.On("Update", ctx, mock.MatchedBy(func(u *model.User) bool {
					return strings.HasPrefix(u.ProfilePicture, "/uploads/profiles/") && u.ProfilePicture != "/uploads/profiles/old.jpg"
				})).Return(&model.User{ID: 1, ProfilePicture: "/uploads/profiles/new.jpg"}, nil)
				mStore.On("Delete", ctx, "profiles/old.jpg").Return(nil)
			},
		},
		{
			name:     "external picture is left alone",
			filename: "me.png",
			setupMocks: func(mRepo *repoMocks.MockUserRepository, mStore *storeMocks.MockStorage, r io.Reader) {
				mRepo.On("FindByID", ctx, int64(1)).Return(&model.User{ID: 1, ProfilePicture: "https://lh3.googleusercontent.com/p"}, nil)
				mStore.On("Put", ctx, mock.Anything, r, mock.Anything).Return(putKey, nil)
				mRepo.On("Update", ctx, mock.Anything).Return(&model.User{ID: 1}, nil)
			},
		},
		{
			name:     "rollback when db save fails",
			filename: "me.png",
			setupMocks: func(mRepo *repoMocks.MockUserRepository, mStore *storeMocks.MockStorage, r io.Reader) {
				mRepo.On("FindByID", ctx, int64(1)).Return(&model.User{ID: 1}, nil)
				mStore.On("Put", ctx, mock.Anything, r, mock.Anything).Return(putKey, nil)
				mRepo.On("Update", ctx, mock.Anything).Return(nil, errors.New("db fail"))
				mStore.On("Delete", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "profiles/")
				})).Return(nil)
			},
			wantErrMsg: "db save failed: db fail",
		},
		{
			name:     "unsupported type",
			filename: "me.exe",
			setupMocks: func(mRepo *repoMocks.MockUserRepository, mStore *storeMocks.MockStorage, r io.Reader) {
				mRepo.On("FindByID", ctx, int64(1)).Return(&model.User{ID: 1}, nil)
			},
			wantErr: ErrUnsupportedType,
		},
		{
			name:     "missing user",
			filename: "me.png",
			setupMocks: func(mRepo *repoMocks.MockUserRepository, mStore *storeMocks.MockStorage, r io.Reader) {
				mRepo.On("FindByID", ctx, int64(1)).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockUserRepository)
			mStore := new(storeMocks.MockStorage)
			r := strings.NewReader("img")
			tt.setupMocks(mRepo, mStore, r)

			u, err := newUserService(mRepo, mStore).UploadProfilePicture(ctx, 1, r, tt.filename, "", 3)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantErrMsg != "":
				assert.ErrorContains(t, err, tt.wantErrMsg)
			default:
				assert.NoError(t, err)
				assert.NotNil(t, u)
			}
			mRepo.AssertExpectations(t)
			mStore.AssertExpectations(t)
		})
	}
}
