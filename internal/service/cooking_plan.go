package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"

	"recipeshare/internal/model"
	"recipeshare/internal/repository"
)

// CookingPlanInput is the body of POST /cookingPlans and PUT /cookingPlans/:id.
type CookingPlanInput struct {
	PlanName        string `json:"planName" validate:"required"`
	PlanType        string `json:"planType" validate:"required"`
	PlanDescription string `json:"planDescription"`
	PlanRecipes     string `json:"planRecipes"`
	PlanImage       string `json:"planImage"`
}

// CookingPlanService defines the use cases for cooking plans.
type CookingPlanService interface {
	Create(ctx context.Context, in CookingPlanInput) (*model.CookingPlan, error)
	List(ctx context.Context) ([]model.CookingPlan, error)
	Get(ctx context.Context, id int64) (*model.CookingPlan, error)
	Update(ctx context.Context, id int64, in CookingPlanInput) (*model.CookingPlan, error)
	// Delete removes the plan and, best effort, its image when no other plan uses it.
	Delete(ctx context.Context, id int64) error
	// ReplaceImage stores a new image for the plan and removes the old one
	// unless another plan still references it.
	ReplaceImage(ctx context.Context, id int64, r io.Reader, originalFilename, contentType string, size int64) (*model.StoredFile, error)
}

type cookingPlanService struct {
	repo  repository.CookingPlanRepository
	media MediaService
}

// NewCookingPlanService constructs a new CookingPlanService.
func NewCookingPlanService(repo repository.CookingPlanRepository, media MediaService) CookingPlanService {
	return &cookingPlanService{repo: repo, media: media}
}

func (in CookingPlanInput) toModel() *model.CookingPlan {
	return &model.CookingPlan{
		PlanName:        strings.TrimSpace(in.PlanName),
		PlanType:        strings.TrimSpace(in.PlanType),
		PlanDescription: in.PlanDescription,
		PlanRecipes:     in.PlanRecipes,
		PlanImage:       in.PlanImage,
	}
}

func notFoundPlan(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrPlanNotFound
	}
	return err
}

func (s *cookingPlanService) Create(ctx context.Context, in CookingPlanInput) (*model.CookingPlan, error) {
	return s.repo.Create(ctx, in.toModel())
}

func (s *cookingPlanService) List(ctx context.Context) ([]model.CookingPlan, error) {
	return s.repo.List(ctx)
}

func (s *cookingPlanService) Get(ctx context.Context, id int64) (*model.CookingPlan, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundPlan(err)
	}
	return p, nil
}

func (s *cookingPlanService) Update(ctx context.Context, id int64, in CookingPlanInput) (*model.CookingPlan, error) {
	p := in.toModel()
	p.ID = id
	out, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, notFoundPlan(err)
	}
	return out, nil
}

func (s *cookingPlanService) Delete(ctx context.Context, id int64) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFoundPlan(err)
	}
	s.releaseImage(ctx, p.PlanImage)
	return nil
}

// releaseImage removes a plan image once no plan references it. Plan images
// are client-settable, so several plans may share one file.
func (s *cookingPlanService) releaseImage(ctx context.Context, name string) {
	if name == "" {
		return
	}
	n, err := s.repo.CountByImage(ctx, name)
	if err != nil || n > 0 {
		return
	}
	_ = s.media.Remove(ctx, FolderPlans, name)
}

func (s *cookingPlanService) ReplaceImage(ctx context.Context, id int64, r io.Reader, originalFilename, contentType string, size int64) (*model.StoredFile, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	f, err := s.media.Save(ctx, FolderPlans, r, originalFilename, contentType, size)
	if err != nil {
		return nil, err
	}

	old := p.PlanImage
	p.PlanImage = f.Filename
	if _, err := s.repo.Update(ctx, p); err != nil {
		if delErr := s.media.Remove(ctx, FolderPlans, f.Filename); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	if old != f.Filename {
		s.releaseImage(ctx, old)
	}
	return f, nil
}
