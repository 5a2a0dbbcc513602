package question

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Record is the gorm model backing the questions table.
type Record struct {
	ID         int `gorm:"primaryKey"`
	Question   *string
	Answer     *string
	Category   *int `gorm:"index"`
	Difficulty *int
}

func (Record) TableName() string { return "questions" }

func (rec Record) toQuestion() Question {
	return Question{
		ID:         rec.ID,
		Question:   rec.Question,
		Answer:     rec.Answer,
		Category:   rec.Category,
		Difficulty: rec.Difficulty,
	}
}

// GormRepository implements Repository on top of gorm (sqlite or postgres dialect).
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) find(tx *gorm.DB, page Page) ([]Question, error) {
	if page.Empty() {
		return []Question{}, nil
	}
	var records []Record
	if err := tx.Order("id ASC").Limit(page.Limit).Offset(page.Offset).Find(&records).Error; err != nil {
		return nil, err
	}
	out := make([]Question, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.toQuestion())
	}
	return out, nil
}

func (r *GormRepository) List(ctx context.Context, page Page) ([]Question, error) {
	out, err := r.find(r.db.WithContext(ctx), page)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return out, nil
}

func (r *GormRepository) ListByCategory(ctx context.Context, categoryID int, page Page) ([]Question, error) {
	out, err := r.find(r.db.WithContext(ctx).Where("category = ?", categoryID), page)
	if err != nil {
		return nil, fmt.Errorf("list questions in category %d: %w", categoryID, err)
	}
	return out, nil
}

// Search lowercases both sides so it behaves the same on sqlite and postgres.
func (r *GormRepository) Search(ctx context.Context, term string, page Page) ([]Question, error) {
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
	tx := r.db.WithContext(ctx).Where(`LOWER(question) LIKE ? ESCAPE '\'`, pattern)
	out, err := r.find(tx, page)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return out, nil
}

func (r *GormRepository) Count(ctx context.Context) (int, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&Record{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return int(n), nil
}

func (r *GormRepository) GetByID(ctx context.Context, id int) (Question, error) {
	var rec Record
	err := r.db.WithContext(ctx).First(&rec, id).Error
	switch {
	case err == nil:
		return rec.toQuestion(), nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return Question{}, ErrNotFound
	default:
		return Question{}, fmt.Errorf("get question %d: %w", id, err)
	}
}

func (r *GormRepository) Create(ctx context.Context, q Question) (Question, error) {
	rec := Record{
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return Question{}, fmt.Errorf("insert question: %w", err)
	}
	return rec.toQuestion(), nil
}

func (r *GormRepository) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Delete(&Record{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete question %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormRepository) Random(ctx context.Context, categoryID int, exclude []int) (Question, error) {
	tx := r.db.WithContext(ctx)
	if categoryID != 0 {
		tx = tx.Where("category = ?", categoryID)
	}
	if len(exclude) > 0 {
		tx = tx.Where("id NOT IN ?", exclude)
	}
	var records []Record
	if err := tx.Order("RANDOM()").Limit(1).Find(&records).Error; err != nil {
		return Question{}, fmt.Errorf("random question: %w", err)
	}
	if len(records) == 0 {
		return Question{}, ErrNotFound
	}
	return records[0].toQuestion(), nil
}
