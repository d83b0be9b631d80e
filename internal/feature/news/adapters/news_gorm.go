// Package adapters provides the repository implementations for the news feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Billie0903/vina-ET-training-center/internal/feature/news/domain"
	"github.com/Billie0903/vina-ET-training-center/internal/feature/news/domain/entity"
	"github.com/Billie0903/vina-ET-training-center/internal/feature/news/usecase"
)

// newsGorm is the gorm implementation of the NewsRepository interface.
type newsGorm struct {
	db *gorm.DB
}

// Compile-time check that newsGorm implements NewsRepository.
var _ usecase.NewsRepository = (*newsGorm)(nil)

// NewNewsGorm creates a new news repository backed by the given gorm.DB.
func NewNewsGorm(db *gorm.DB) *newsGorm {
	return &newsGorm{db: db}
}

func (r *newsGorm) query(ctx context.Context, f usecase.ListFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&entity.NewsArticle{})
	if f.Published != nil {
		q = q.Where("published = ?", *f.Published)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.FeaturedOnly {
		q = q.Where("featured = ?", true)
	}
	return q
}

// List returns one page of articles plus the total count matching the filter.
func (r *newsGorm) List(ctx context.Context, f usecase.ListFilter) ([]entity.NewsArticle, int64, error) {
	var total int64
	if err := r.query(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at DESC"
	if f.SortByPublished {
		order = "published_at DESC, created_at DESC"
	}

	items := []entity.NewsArticle{}
	err := r.query(ctx, f).
		Preload("Author").
		Order(order).
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// FindBySlug returns the article with the given slug, optionally restricted
// to published articles, or domain.ErrNewsNotFound.
func (r *newsGorm) FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*entity.NewsArticle, error) {
	q := r.db.WithContext(ctx).Preload("Author").Where("slug = ?", slug)
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	var article entity.NewsArticle
	if err := q.First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNewsNotFound
		}
		return nil, err
	}
	return &article, nil
}

// FindByID returns the article with the given ID, or domain.ErrNewsNotFound.
func (r *newsGorm) FindByID(ctx context.Context, id uint) (*entity.NewsArticle, error) {
	var article entity.NewsArticle
	if err := r.db.WithContext(ctx).Preload("Author").First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNewsNotFound
		}
		return nil, err
	}
	return &article, nil
}

// Create inserts a new article.
func (r *newsGorm) Create(ctx context.Context, article *entity.NewsArticle) error {
	return r.db.WithContext(ctx).Create(article).Error
}

// Save writes every field of the article back to the store.
func (r *newsGorm) Save(ctx context.Context, article *entity.NewsArticle) error {
	return r.db.WithContext(ctx).Save(article).Error
}

// Delete removes the article with the given ID, or returns
// domain.ErrNewsNotFound when it does not exist.
func (r *newsGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.NewsArticle{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNewsNotFound
	}
	return nil
}

// IncrementViews bumps the view counter with a single atomic update in the
// store, so concurrent readers cannot lose increments.
func (r *newsGorm) IncrementViews(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&entity.NewsArticle{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}
