package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"recipeshare/internal/model"
	"recipeshare/internal/repository"
)

// hashCost is lowered in tests.
var hashCost = bcrypt.DefaultCost

// RegisterInput is the body of POST /user.
type RegisterInput struct {
	Fullname string `json:"fullname" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"required"`
}

// LoginInput is the body of POST /login.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserInput is the body of PUT /user/:id. An empty Password keeps the current one.
type UpdateUserInput struct {
	Fullname string `json:"fullname" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Phone    string `json:"phone" validate:"required"`
}

// GoogleLoginInput carries the identity a Google sign-in produced.
// It is trusted as-is; no token is verified.
type GoogleLoginInput struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// UserService defines the use cases for accounts.
type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*model.User, error)
	// Login returns ErrUserNotFound for an unknown email and ErrInvalidCredentials for a bad password.
	Login(ctx context.Context, in LoginInput) (*model.User, error)
	// GoogleLogin finds the user by email or creates one with a random password.
	GoogleLogin(ctx context.Context, in GoogleLoginInput) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id int64) (*model.User, error)
	Update(ctx context.Context, id int64, in UpdateUserInput) (*model.User, error)
	Delete(ctx context.Context, id int64) error
	// UploadProfilePicture stores the image, points the user at it and removes the previous one.
	UploadProfilePicture(ctx context.Context, id int64, r io.Reader, originalFilename, contentType string, size int64) (*model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	media MediaService
}

// NewUserService constructs a new UserService.
func NewUserService(repo repository.UserRepository, media MediaService) UserService {
	return &userService{repo: repo, media: media}
}

func hashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), hashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

func (s *userService) emailTaken(ctx context.Context, email string, exceptID int64) error {
	u, err := s.repo.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil
	case err != nil:
		return err
	case u.ID != exceptID:
		return ErrEmailTaken
	}
	return nil
}

func (s *userService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	email := strings.TrimSpace(in.Email)
	if err := s.emailTaken(ctx, email, 0); err != nil {
		return nil, err
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u, err := s.repo.Create(ctx, &model.User{
		Email:        email,
		Fullname:     in.Fullname,
		PasswordHash: hash,
		Phone:        in.Phone,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

func (s *userService) Login(ctx context.Context, in LoginInput) (*model.User, error) {
	u, err := s.repo.FindByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *userService) GoogleLogin(ctx context.Context, in GoogleLoginInput) (*model.User, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	u, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}
	hash, err := hashPassword(uuid.NewString())
	if err != nil {
		return nil, err
	}
	u, err = s.repo.Create(ctx, &model.User{
		Email:          email,
		Fullname:       name,
		PasswordHash:   hash,
		ProfilePicture: in.Picture,
	})
	if errors.Is(err, repository.ErrDuplicate) {
		// lost a race with a concurrent sign-in for the same email
		return s.repo.FindByEmail(ctx, email)
	}
	return u, err
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) Get(ctx context.Context, id int64) (*model.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *userService) Update(ctx context.Context, id int64, in UpdateUserInput) (*model.User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	email := strings.TrimSpace(in.Email)
	if email != u.Email {
		if err := s.emailTaken(ctx, email, id); err != nil {
			return nil, err
		}
	}

	u.Fullname = in.Fullname
	u.Email = email
	u.Phone = in.Phone
	if in.Password != "" {
		if u.PasswordHash, err = hashPassword(in.Password); err != nil {
			return nil, err
		}
	}

	out, err := s.repo.Update(ctx, u)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrEmailTaken
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return out, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (s *userService) UploadProfilePicture(ctx context.Context, id int64, r io.Reader, originalFilename, contentType string, size int64) (*model.User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	f, err := s.media.Save(ctx, FolderProfiles, r, originalFilename, contentType, size)
	if err != nil {
		return nil, err
	}

	old := u.ProfilePicture
	u.ProfilePicture = f.URL
	out, err := s.repo.Update(ctx, u)
	if err != nil {
		if delErr := s.media.Remove(ctx, FolderProfiles, f.Filename); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	if name := FilenameFromURL(FolderProfiles, old); name != "" {
		_ = s.media.Remove(ctx, FolderProfiles, name)
	}
	return out, nil
}
