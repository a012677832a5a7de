package repository

import (
	"context"
	"database/sql"
	"fmt"

	"fitbuddy/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSchema creates the foods table used by the postgres catalogue source.
const PostgresSchema = `
CREATE TABLE IF NOT EXISTS foods (
	id INTEGER PRIMARY KEY CHECK (id > 0),
	name TEXT NOT NULL,
	calories DOUBLE PRECISION NOT NULL CHECK (calories >= 0),
	protein DOUBLE PRECISION NOT NULL CHECK (protein >= 0),
	carbs DOUBLE PRECISION NOT NULL CHECK (carbs >= 0),
	fat DOUBLE PRECISION NOT NULL CHECK (fat >= 0),
	category TEXT NOT NULL,
	sort_order INTEGER NOT NULL DEFAULT 0
);
`

// SQLiteSchema creates the foods table used by the SQLite catalogue source.
const SQLiteSchema = `
CREATE TABLE IF NOT EXISTS foods (
	id INTEGER PRIMARY KEY CHECK (id > 0),
	name TEXT NOT NULL,
	calories REAL NOT NULL CHECK (calories >= 0),
	protein REAL NOT NULL CHECK (protein >= 0),
	carbs REAL NOT NULL CHECK (carbs >= 0),
	fat REAL NOT NULL CHECK (fat >= 0),
	category TEXT NOT NULL,
	sort_order INTEGER NOT NULL DEFAULT 0
);
`

const insertFoodPostgres = `
	INSERT INTO foods (id, name, calories, protein, carbs, fat, category, sort_order)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

const insertFoodSQLite = `
	INSERT INTO foods (id, name, calories, protein, carbs, fat, category, sort_order)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`

// EnsurePostgresSchema creates the foods table if it does not exist.
func EnsurePostgresSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, PostgresSchema); err != nil {
		return fmt.Errorf("failed to create foods table: %w", err)
	}
	return nil
}

// EnsureSQLiteSchema creates the foods table if it does not exist.
func EnsureSQLiteSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, SQLiteSchema); err != nil {
		return fmt.Errorf("failed to create foods table: %w", err)
	}
	return nil
}

// SeedFoods replaces the contents of the postgres foods table with foods.
// sort_order is the slice position so ListFoods returns them in the same order.
func SeedFoods(ctx context.Context, pool *pgxpool.Pool, foods []model.FoodRecord) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM foods"); err != nil {
		return fmt.Errorf("failed to clear foods: %w", err)
	}

	batch := &pgx.Batch{}
	for i, f := range foods {
		batch.Queue(insertFoodPostgres, f.ID, f.Name, f.Calories, f.Protein, f.Carbs, f.Fat, f.Category, i)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert foods: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// SeedSQLiteFoods replaces the contents of the sqlite foods table with foods.
func SeedSQLiteFoods(ctx context.Context, db *sql.DB, foods []model.FoodRecord) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM foods"); err != nil {
		return fmt.Errorf("failed to clear foods: %w", err)
	}

	for i, f := range foods {
		if _, err := tx.ExecContext(ctx, insertFoodSQLite,
			f.ID, f.Name, f.Calories, f.Protein, f.Carbs, f.Fat, f.Category, i,
		); err != nil {
			return fmt.Errorf("failed to insert food %d: %w", f.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
