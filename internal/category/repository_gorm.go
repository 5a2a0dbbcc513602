package category

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Record is the gorm model backing the categories table.
type Record struct {
	ID   int `gorm:"primaryKey"`
	Type string
}

func (Record) TableName() string { return "categories" }

// GormRepository implements Repository on top of gorm (sqlite or postgres dialect).
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) List(ctx context.Context) ([]Category, error) {
	var records []Record
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	out := make([]Category, 0, len(records))
	for _, rec := range records {
		out = append(out, Category{ID: rec.ID, Type: rec.Type})
	}
	return out, nil
}

func (r *GormRepository) Seed(ctx context.Context, types []string) (int, error) {
	var count int64
	db := r.db.WithContext(ctx)
	if err := db.Model(&Record{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	if count > 0 || len(types) == 0 {
		return 0, nil
	}
	records := make([]Record, 0, len(types))
	for _, t := range types {
		records = append(records, Record{Type: t})
	}
	if err := db.Create(&records).Error; err != nil {
		return 0, fmt.Errorf("seed categories: %w", err)
	}
	return len(records), nil
}
