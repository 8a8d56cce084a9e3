package postgres

import (
	"context"
	"database/sql"

	"recipeshare/internal/model"
	"recipeshare/internal/repository"
)

// RecipePostgres is a PostgreSQL implementation of repository.RecipeRepository.
type RecipePostgres struct {
	db *sql.DB
}

// NewRecipePostgres creates a new RecipePostgres repository.
func NewRecipePostgres(db *sql.DB) *RecipePostgres {
	return &RecipePostgres{db: db}
}

var _ repository.RecipeRepository = (*RecipePostgres)(nil)

const recipeColumns = `recipe_id, title, description, ingredients, steps, images, video, created_at, updated_at`

func scanRecipe(s scanner) (*model.Recipe, error) {
	var rc model.Recipe
	if err := s.Scan(
		&rc.ID,
		&rc.Title,
		&rc.Description,
		&rc.Ingredients,
		&rc.Steps,
		&rc.Images,
		&rc.Video,
		&rc.CreatedAt,
		&rc.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &rc, nil
}

func (r *RecipePostgres) Create(ctx context.Context, rc *model.Recipe) (*model.Recipe, error) {
	const q = `
		INSERT INTO recipes (title, description, ingredients, steps, images, video)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + recipeColumns
	return scanRecipe(r.db.QueryRowContext(ctx, q,
		rc.Title,
		rc.Description,
		rc.Ingredients,
		rc.Steps,
		rc.Images,
		rc.Video,
	))
}

func (r *RecipePostgres) FindByID(ctx context.Context, id int64) (*model.Recipe, error) {
	const q = `SELECT ` + recipeColumns + ` FROM recipes WHERE recipe_id = $1`
	return scanRecipe(r.db.QueryRowContext(ctx, q, id))
}

// List returns every recipe, newest first.
func (r *RecipePostgres) List(ctx context.Context) ([]model.Recipe, error) {
	const q = `SELECT ` + recipeColumns + ` FROM recipes ORDER BY created_at DESC, recipe_id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Recipe, 0)
	for rows.Next() {
		rc, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *rc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update replaces the editable fields. Returns sql.ErrNoRows when the recipe is missing.
func (r *RecipePostgres) Update(ctx context.Context, rc *model.Recipe) (*model.Recipe, error) {
	const q = `
		UPDATE recipes
		SET title = $2, description = $3, ingredients = $4, steps = $5, images = $6, video = $7, updated_at = NOW()
		WHERE recipe_id = $1
		RETURNING ` + recipeColumns
	return scanRecipe(r.db.QueryRowContext(ctx, q,
		rc.ID,
		rc.Title,
		rc.Description,
		rc.Ingredients,
		rc.Steps,
		rc.Images,
		rc.Video,
	))
}

func (r *RecipePostgres) Delete(ctx context.Context, id int64) error {
	return execDelete(ctx, r.db, `DELETE FROM recipes WHERE recipe_id = $1`, id)
}
