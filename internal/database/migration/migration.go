// Package migration creates and evolves the database schema on startup.
package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"recipeshare/internal/logging"
)

type migrationStep struct {
	Name string
	SQL  string
}

// steps run in order; each one is recorded in schema_migrations once applied.
var steps = []migrationStep{
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id              BIGSERIAL   PRIMARY KEY,
  email           TEXT        NOT NULL UNIQUE,
  fullname        TEXT        NOT NULL DEFAULT '',
  password_hash   TEXT        NOT NULL,
  phone           TEXT        NOT NULL DEFAULT '',
  profile_picture TEXT        NOT NULL DEFAULT '',
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_user_follows",
		SQL: `CREATE TABLE IF NOT EXISTS user_follows (
  id           BIGSERIAL   PRIMARY KEY,
  follower_id  BIGINT      NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  following_id BIGINT      NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_user_follows_pair",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_user_follows_pair ON user_follows (follower_id, following_id);`,
	},
	{
		Name: "create_index_user_follows_following",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_user_follows_following ON user_follows (following_id);`,
	},
	{
		Name: "create_table_recipes",
		SQL: `CREATE TABLE IF NOT EXISTS recipes (
  recipe_id   BIGSERIAL   PRIMARY KEY,
  title       TEXT        NOT NULL,
  description TEXT        NOT NULL DEFAULT '',
  ingredients TEXT        NOT NULL DEFAULT '',
  steps       TEXT        NOT NULL DEFAULT '',
  images      TEXT        NOT NULL DEFAULT '',
  video       TEXT        NOT NULL DEFAULT '',
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_recipes_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_recipes_created_at ON recipes (created_at);`,
	},
	{
		Name: "create_table_cooking_plans",
		SQL: `CREATE TABLE IF NOT EXISTS cooking_plans (
  plan_id          BIGSERIAL   PRIMARY KEY,
  plan_name        TEXT        NOT NULL,
  plan_type        TEXT        NOT NULL,
  plan_description TEXT        NOT NULL DEFAULT '',
  plan_recipes     TEXT        NOT NULL DEFAULT '',
  plan_image       TEXT        NOT NULL DEFAULT '',
  created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
}

const createLedger = `CREATE TABLE IF NOT EXISTS schema_migrations (
  name       TEXT        PRIMARY KEY,
  applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`

// EnsureMigrated applies every step not yet recorded in schema_migrations.
// Each step and its ledger row commit in one transaction.
func EnsureMigrated(ctx context.Context, db *sql.DB, dbHost string) error {
	start := time.Now()

	logging.Log(map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	fail := func(step string, err error) error {
		entry := map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": err.Error(),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		}
		if step != "" {
			entry["migration_step"] = step
		}
		logging.Log(entry)
		return err
	}

	if _, err := db.ExecContext(ctx, createLedger); err != nil {
		return fail("", fmt.Errorf("failed to create schema_migrations: %w", err))
	}
	applied, err := appliedSteps(ctx, db)
	if err != nil {
		return fail("", fmt.Errorf("failed to read schema_migrations: %w", err))
	}

	pending := make([]migrationStep, 0, len(steps))
	for _, s := range steps {
		if !applied[s.Name] {
			pending = append(pending, s)
		}
	}
	if len(pending) == 0 {
		logging.Log(map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema up to date, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logging.Log(map[string]any{
		"component":     "database",
		"event":         "db_migration_start",
		"status":        "in_progress",
		"pending_steps": len(pending),
		"db_host":       dbHost,
	})

	for _, step := range pending {
		stepStart := time.Now()
		if err := applyStep(ctx, db, step); err != nil {
			return fail(step.Name, fmt.Errorf("migration step %s failed: %w", step.Name, err))
		}
		logging.Log(map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logging.Log(map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return nil
}

func appliedSteps(ctx context.Context, db *sql.DB) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, `SELECT name FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]bool{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out[name] = true
	}
	return out, rows.Err()
}

func applyStep(ctx context.Context, db *sql.DB, step migrationStep) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, step.SQL); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (name) VALUES ($1)`, step.Name); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
