package category

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresRepository implements Repository using Postgres.
type PostgresRepository struct {
	db *sql.DB
}

const (
	listCategoriesQuery  = `SELECT id, type FROM categories ORDER BY id`
	countCategoriesQuery = `SELECT COUNT(*) FROM categories`
	insertCategoryQuery  = `INSERT INTO categories (type) VALUES ($1)`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Category, error) {
	rows, err := r.db.QueryContext(ctx, listCategoriesQuery)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		var (
			c   Category
			typ sql.NullString
		)
		if err := rows.Scan(&c.ID, &typ); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.Type = typ.String
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return out, nil
}

// Seed inserts types inside one transaction when the table is empty.
func (r *PostgresRepository) Seed(ctx context.Context, types []string) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, countCategoriesQuery).Scan(&count); err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin seed categories: %w", err)
	}
	for _, t := range types {
		if _, err := tx.ExecContext(ctx, insertCategoryQuery, t); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("seed category %q: %w", t, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit seed categories: %w", err)
	}
	return len(types), nil
}
