package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"recipeshare/internal/model"
	"recipeshare/internal/repository"
)

// MaxRecipeImages caps the entries in Recipe.Images.
const MaxRecipeImages = 3

// RecipeInput is the body of POST /recipes and PUT /recipes/:id.
type RecipeInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Ingredients string `json:"ingredients"`
	Steps       string `json:"steps"`
	Images      string `json:"images"`
	Video       string `json:"video" validate:"omitempty,url"`
}

// RecipeService defines the use cases for recipes.
type RecipeService interface {
	Create(ctx context.Context, in RecipeInput) (*model.Recipe, error)
	List(ctx context.Context) ([]model.Recipe, error)
	Get(ctx context.Context, id int64) (*model.Recipe, error)
	// Update replaces every editable field.
	Update(ctx context.Context, id int64, in RecipeInput) (*model.Recipe, error)
	Delete(ctx context.Context, id int64) error
}

type recipeService struct {
	repo repository.RecipeRepository
}

// NewRecipeService constructs a new RecipeService.
func NewRecipeService(repo repository.RecipeRepository) RecipeService {
	return &recipeService{repo: repo}
}

func (in RecipeInput) toModel() (*model.Recipe, error) {
	images := model.SplitImages(in.Images)
	if len(images) > MaxRecipeImages {
		return nil, ErrTooManyImages
	}
	return &model.Recipe{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Ingredients: in.Ingredients,
		Steps:       in.Steps,
		Images:      strings.Join(images, ","),
		Video:       strings.TrimSpace(in.Video),
	}, nil
}

func (s *recipeService) Create(ctx context.Context, in RecipeInput) (*model.Recipe, error) {
	rc, err := in.toModel()
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, rc)
}

func (s *recipeService) List(ctx context.Context) ([]model.Recipe, error) {
	return s.repo.List(ctx)
}

func (s *recipeService) Get(ctx context.Context, id int64) (*model.Recipe, error) {
	rc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return rc, nil
}

func (s *recipeService) Update(ctx context.Context, id int64, in RecipeInput) (*model.Recipe, error) {
	rc, err := in.toModel()
	if err != nil {
		return nil, err
	}
	rc.ID = id
	out, err := s.repo.Update(ctx, rc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return out, nil
}

func (s *recipeService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRecipeNotFound
		}
		return err
	}
	return nil
}
