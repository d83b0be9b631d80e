// Package usecase implements the business logic for the news feature.
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Billie0903/vina-ET-training-center/internal/feature/news/domain"
	"github.com/Billie0903/vina-ET-training-center/internal/feature/news/domain/entity"
	"github.com/Billie0903/vina-ET-training-center/internal/shared/slug"
)

// ListFilter narrows and pages article listings.
type ListFilter struct {
	Page     int
	Limit    int
	Category string
	// FeaturedOnly restricts to featured articles when true.
	FeaturedOnly bool
	// Published restricts by publish state when non-nil.
	Published *bool
	// SortByPublished orders by publishedAt desc (falling back to
	// createdAt desc) instead of createdAt desc alone.
	SortByPublished bool
}

// ListResult carries one page of articles plus the total count computed
// independently of the page slice.
type ListResult struct {
	Items       []entity.NewsArticle
	Total       int64
	TotalPages  int
	CurrentPage int
}

// NewsRepository abstracts the persistence layer for news articles.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type NewsRepository interface {
	List(ctx context.Context, f ListFilter) ([]entity.NewsArticle, int64, error)
	FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*entity.NewsArticle, error)
	FindByID(ctx context.Context, id uint) (*entity.NewsArticle, error)
	Create(ctx context.Context, article *entity.NewsArticle) error
	Save(ctx context.Context, article *entity.NewsArticle) error
	Delete(ctx context.Context, id uint) error
	// IncrementViews atomically bumps the view counter in the store.
	IncrementViews(ctx context.Context, id uint) error
}

// Input carries the writable fields of an article for create and update.
type Input struct {
	Title     string
	Content   string
	Excerpt   string
	Category  string
	Featured  bool
	Published bool
	Tags      []string
}

// validate collects the missing required fields into a single error.
func (in Input) validate() error {
	var missing []string
	if in.Title == "" {
		missing = append(missing, "title")
	}
	if in.Content == "" {
		missing = append(missing, "content")
	}
	if in.Excerpt == "" {
		missing = append(missing, "excerpt")
	}
	if in.Category == "" {
		missing = append(missing, "category")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", domain.ErrValidation, strings.Join(missing, ", "))
	}
	if !entity.ValidCategory(in.Category) {
		return fmt.Errorf("%w: invalid category %q", domain.ErrValidation, in.Category)
	}
	return nil
}

// NewsUsecase provides business logic for news operations.
type NewsUsecase struct {
	repo NewsRepository
	now  func() time.Time
}

// NewNewsUsecase creates a new NewsUsecase with the given repository.
func NewNewsUsecase(repo NewsRepository) *NewsUsecase {
	return &NewsUsecase{repo: repo, now: time.Now}
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	return int((total + int64(limit) - 1) / int64(limit))
}

func (u *NewsUsecase) list(ctx context.Context, f ListFilter) (*ListResult, error) {
	f.Page, f.Limit = normalizePage(f.Page, f.Limit)
	items, total, err := u.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return &ListResult{
		Items:       items,
		Total:       total,
		TotalPages:  totalPages(total, f.Limit),
		CurrentPage: f.Page,
	}, nil
}

// ListPublic returns a page of published articles, newest publication first.
func (u *NewsUsecase) ListPublic(ctx context.Context, page, limit int, category string, featuredOnly bool) (*ListResult, error) {
	published := true
	return u.list(ctx, ListFilter{
		Page:            page,
		Limit:           limit,
		Category:        category,
		FeaturedOnly:    featuredOnly,
		Published:       &published,
		SortByPublished: true,
	})
}

// ListAdmin returns a page of articles regardless of publish state, newest
// created first. A non-nil published narrows by exact publish state.
func (u *NewsUsecase) ListAdmin(ctx context.Context, page, limit int, category string, published *bool) (*ListResult, error) {
	return u.list(ctx, ListFilter{
		Page:      page,
		Limit:     limit,
		Category:  category,
		Published: published,
	})
}

// GetPublicBySlug returns a published article by slug and atomically
// increments its view counter in the store before returning.
func (u *NewsUsecase) GetPublicBySlug(ctx context.Context, s string) (*entity.NewsArticle, error) {
	article, err := u.repo.FindBySlug(ctx, s, true)
	if err != nil {
		return nil, err
	}
	if err := u.repo.IncrementViews(ctx, article.ID); err != nil {
		return nil, err
	}
	article.Views++
	return article, nil
}

// GetAdminByID returns an article by ID without any publish filter, for edit
// forms.
func (u *NewsUsecase) GetAdminByID(ctx context.Context, id uint) (*entity.NewsArticle, error) {
	return u.repo.FindByID(ctx, id)
}

// Create validates the input, derives the slug from the title and persists a
// new article authored by authorID.
func (u *NewsUsecase) Create(ctx context.Context, in Input, authorID uint, image *entity.Image) (*entity.NewsArticle, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	article := &entity.NewsArticle{
		Title:     in.Title,
		Content:   in.Content,
		Excerpt:   in.Excerpt,
		Category:  in.Category,
		AuthorID:  authorID,
		Featured:  in.Featured,
		Published: in.Published,
		Tags:      in.Tags,
		Image:     image,
		Slug:      slug.Make(in.Title),
	}
	if article.Tags == nil {
		article.Tags = []string{}
	}
	if in.Published {
		now := u.now()
		article.PublishedAt = &now
	}

	if err := u.repo.Create(ctx, article); err != nil {
		return nil, err
	}
	return u.repo.FindByID(ctx, article.ID)
}

// Update replaces every editable field of the article with the submitted
// values; omitted booleans and tags become false and empty respectively.
// The slug is recomputed from the submitted title. PublishedAt is set on the
// first false-to-true transition of Published and preserved verbatim on every
// later edit. The image is replaced only when a new file was supplied.
func (u *NewsUsecase) Update(ctx context.Context, id uint, in Input, image *entity.Image) (*entity.NewsArticle, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	article, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	article.Title = in.Title
	article.Content = in.Content
	article.Excerpt = in.Excerpt
	article.Category = in.Category
	article.Featured = in.Featured
	article.Published = in.Published
	article.Tags = in.Tags
	if article.Tags == nil {
		article.Tags = []string{}
	}
	article.Slug = slug.Make(in.Title)
	if image != nil {
		article.Image = image
	}
	if in.Published && article.PublishedAt == nil {
		now := u.now()
		article.PublishedAt = &now
	}

	if err := u.repo.Save(ctx, article); err != nil {
		return nil, err
	}
	return u.repo.FindByID(ctx, article.ID)
}

// Delete removes an article by ID.
func (u *NewsUsecase) Delete(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}
