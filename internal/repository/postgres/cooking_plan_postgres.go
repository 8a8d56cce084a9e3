package postgres

import (
	"context"
	"database/sql"

	"recipeshare/internal/model"
	"recipeshare/internal/repository"
)

// CookingPlanPostgres is a PostgreSQL implementation of repository.CookingPlanRepository.
type CookingPlanPostgres struct {
	db *sql.DB
}

// NewCookingPlanPostgres creates a new CookingPlanPostgres repository.
func NewCookingPlanPostgres(db *sql.DB) *CookingPlanPostgres {
	return &CookingPlanPostgres{db: db}
}

var _ repository.CookingPlanRepository = (*CookingPlanPostgres)(nil)

const planColumns = `plan_id, plan_name, plan_type, plan_description, plan_recipes, plan_image, created_at, updated_at`

func scanPlan(s scanner) (*model.CookingPlan, error) {
	var p model.CookingPlan
	if err := s.Scan(
		&p.ID,
		&p.PlanName,
		&p.PlanType,
		&p.PlanDescription,
		&p.PlanRecipes,
		&p.PlanImage,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CookingPlanPostgres) Create(ctx context.Context, p *model.CookingPlan) (*model.CookingPlan, error) {
	const q = `
		INSERT INTO cooking_plans (plan_name, plan_type, plan_description, plan_recipes, plan_image)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + planColumns
	return scanPlan(r.db.QueryRowContext(ctx, q, p.PlanName, p.PlanType, p.PlanDescription, p.PlanRecipes, p.PlanImage))
}

func (r *CookingPlanPostgres) FindByID(ctx context.Context, id int64) (*model.CookingPlan, error) {
	const q = `SELECT ` + planColumns + ` FROM cooking_plans WHERE plan_id = $1`
	return scanPlan(r.db.QueryRowContext(ctx, q, id))
}

func (r *CookingPlanPostgres) List(ctx context.Context) ([]model.CookingPlan, error) {
	const q = `SELECT ` + planColumns + ` FROM cooking_plans ORDER BY plan_id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.CookingPlan, 0)
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CookingPlanPostgres) Update(ctx context.Context, p *model.CookingPlan) (*model.CookingPlan, error) {
	const q = `
		UPDATE cooking_plans
		SET plan_name = $2, plan_type = $3, plan_description = $4, plan_recipes = $5, plan_image = $6, updated_at = NOW()
		WHERE plan_id = $1
		RETURNING ` + planColumns
	return scanPlan(r.db.QueryRowContext(ctx, q, p.ID, p.PlanName, p.PlanType, p.PlanDescription, p.PlanRecipes, p.PlanImage))
}

func (r *CookingPlanPostgres) CountByImage(ctx context.Context, image string) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cooking_plans WHERE plan_image = $1`, image).Scan(&n)
	return n, err
}

func (r *CookingPlanPostgres) Delete(ctx context.Context, id int64) error {
	return execDelete(ctx, r.db, `DELETE FROM cooking_plans WHERE plan_id = $1`, id)
}
