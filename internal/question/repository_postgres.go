package question

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	selectColumns = `SELECT id, question, answer, category, difficulty FROM questions`

	listQuestionsQuery = selectColumns + `
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	listByCategoryQuery = selectColumns + `
		WHERE category = $1
		ORDER BY id
		LIMIT $2 OFFSET $3
	`
	searchQuestionsQuery = selectColumns + `
		WHERE question ILIKE $1 ESCAPE '\'
		ORDER BY id
		LIMIT $2 OFFSET $3
	`
	randomQuestionQuery = selectColumns + `
		WHERE ($1 = 0 OR category = $1)
		  AND NOT (id = ANY($2::int[]))
		ORDER BY random()
		LIMIT 1
	`
	getQuestionByIDQuery = selectColumns + ` WHERE id = $1`
	countQuestionsQuery  = `SELECT COUNT(*) FROM questions`
	insertQuestionQuery  = `
		INSERT INTO questions (question, answer, category, difficulty)
		VALUES ($1,$2,$3,$4)
		RETURNING id
	`
	deleteQuestionQuery = `DELETE FROM questions WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row rowScanner) (Question, error) {
	var (
		q          Question
		text       sql.NullString
		answer     sql.NullString
		category   sql.NullInt64
		difficulty sql.NullInt64
	)
	if err := row.Scan(&q.ID, &text, &answer, &category, &difficulty); err != nil {
		return Question{}, err
	}
	if text.Valid {
		q.Question = &text.String
	}
	if answer.Valid {
		q.Answer = &answer.String
	}
	if category.Valid {
		v := int(category.Int64)
		q.Category = &v
	}
	if difficulty.Valid {
		v := int(difficulty.Int64)
		q.Difficulty = &v
	}
	return q, nil
}

func (r *PostgresRepository) query(ctx context.Context, q string, args ...any) ([]Question, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Question, 0)
	for rows.Next() {
		item, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) List(ctx context.Context, page Page) ([]Question, error) {
	if page.Empty() {
		return []Question{}, nil
	}
	out, err := r.query(ctx, listQuestionsQuery, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) ListByCategory(ctx context.Context, categoryID int, page Page) ([]Question, error) {
	if page.Empty() {
		return []Question{}, nil
	}
	out, err := r.query(ctx, listByCategoryQuery, categoryID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("list questions in category %d: %w", categoryID, err)
	}
	return out, nil
}

func (r *PostgresRepository) Search(ctx context.Context, term string, page Page) ([]Question, error) {
	if page.Empty() {
		return []Question{}, nil
	}
	out, err := r.query(ctx, searchQuestionsQuery, "%"+escapeLike(term)+"%", page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countQuestionsQuery).Scan(&n); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (Question, error) {
	q, err := scanQuestion(r.db.QueryRowContext(ctx, getQuestionByIDQuery, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Question{}, ErrNotFound
		}
		return Question{}, fmt.Errorf("get question %d: %w", id, err)
	}
	return q, nil
}

func (r *PostgresRepository) Create(ctx context.Context, q Question) (Question, error) {
	var id int
	err := r.db.QueryRowContext(ctx, insertQuestionQuery, q.Question, q.Answer, q.Category, q.Difficulty).Scan(&id)
	if err != nil {
		return Question{}, fmt.Errorf("insert question: %w", err)
	}
	q.ID = id
	return q, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, deleteQuestionQuery, id)
	if err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	cnt, _ := res.RowsAffected()
	if cnt == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Random(ctx context.Context, categoryID int, exclude []int) (Question, error) {
	ids := make([]int64, 0, len(exclude))
	for _, id := range exclude {
		ids = append(ids, int64(id))
	}
	q, err := scanQuestion(r.db.QueryRowContext(ctx, randomQuestionQuery, categoryID, pq.Array(ids)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Question{}, ErrNotFound
		}
		return Question{}, fmt.Errorf("random question: %w", err)
	}
	return q, nil
}

// escapeLike makes % and _ in a search term match literally.
func escapeLike(term string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
}
