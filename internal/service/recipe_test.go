package service

import (
	"context"
	"database/sql"
	"testing"

	"recipeshare/internal/model"
	repoMocks "recipeshare/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRecipeService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		in         RecipeInput
		setupMocks func(mRepo *repoMocks.MockRecipeRepository)
		wantErr    error
	}{
		{
			name: "normalizes image list",
			in:   RecipeInput{Title: " Rendang ", Images: "a.png, b.png,,"},
			setupMocks: func(mRepo *repoMocks.MockRecipeRepository) {
				mRepo.On("Create", ctx, mock.MatchedBy(func(r *model.Recipe) bool {
					return r.Title == "Rendang" && r.Images == "a.png,b.png"
				})).Return(&model.Recipe{ID: 1, Title: "Rendang"}, nil)
			},
		},
		{
			name:       "three images allowed",
			in:         RecipeInput{Title: "Soto", Images: "a,b,c"},
			setupMocks: func(mRepo *repoMocks.MockRecipeRepository) { mRepo.On("Create", ctx, mock.Anything).Return(&model.Recipe{ID: 2}, nil) },
		},
		{
			name:       "four images rejected",
			in:         RecipeInput{Title: "Soto", Images: "a,b,c,d"},
			setupMocks: func(mRepo *repoMocks.MockRecipeRepository) {},
			wantErr:    ErrTooManyImages,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockRecipeRepository)
			tt.setupMocks(mRepo)

			rc, err := NewRecipeService(mRepo).Create(ctx, tt.in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, rc)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, rc)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestRecipeService_GetUpdateDelete(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockRecipeRepository)
	mRepo.On("FindByID", ctx, int64(1)).Return(&model.Recipe{ID: 1}, nil)
	mRepo.On("FindByID", ctx, int64(2)).Return(nil, sql.ErrNoRows)
	mRepo.On("Update", ctx, mock.MatchedBy(func(r *model.Recipe) bool { return r.ID == 1 })).
		Return(&model.Recipe{ID: 1, Title: "New"}, nil)
	mRepo.On("Update", ctx, mock.MatchedBy(func(r *model.Recipe) bool { return r.ID == 2 })).
		Return(nil, sql.ErrNoRows)
	mRepo.On("Delete", ctx, int64(1)).Return(nil)
	mRepo.On("Delete", ctx, int64(2)).Return(sql.ErrNoRows)
	mRepo.On("List", ctx).Return([]model.Recipe{{ID: 1}}, nil)

	svc := NewRecipeService(mRepo)

	rc, err := svc.Get(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rc.ID)

	_, err = svc.Get(ctx, 2)
	assert.ErrorIs(t, err, ErrRecipeNotFound)

	rc, err = svc.Update(ctx, 1, RecipeInput{Title: "New"})
	assert.NoError(t, err)
	assert.Equal(t, "New", rc.Title)

	_, err = svc.Update(ctx, 2, RecipeInput{Title: "New"})
	assert.ErrorIs(t, err, ErrRecipeNotFound)

	_, err = svc.Update(ctx, 1, RecipeInput{Title: "New", Images: "1,2,3,4"})
	assert.ErrorIs(t, err, ErrTooManyImages)

	assert.NoError(t, svc.Delete(ctx, 1))
	assert.ErrorIs(t, svc.Delete(ctx, 2), ErrRecipeNotFound)

	items, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
}
