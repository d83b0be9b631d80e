// Package usecase implements the business logic for the about feature.
package usecase

import (
	"context"
	"fmt"

	"github.com/Billie0903/vina-ET-training-center/internal/feature/about/domain"
	"github.com/Billie0903/vina-ET-training-center/internal/feature/about/domain/entity"
)

// AboutRepository abstracts the persistence layer for about sections.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type AboutRepository interface {
	// List returns sections ordered by section key; publishedOnly
	// restricts to published records.
	List(ctx context.Context, publishedOnly bool) ([]entity.AboutSection, error)
	FindBySection(ctx context.Context, section string, publishedOnly bool) (*entity.AboutSection, error)
	FindByID(ctx context.Context, id uint) (*entity.AboutSection, error)
	// UpsertBySection creates the record when the section key is new and
	// overwrites it otherwise, returning the persisted record.
	UpsertBySection(ctx context.Context, s *entity.AboutSection) (*entity.AboutSection, error)
	Save(ctx context.Context, s *entity.AboutSection) error
	Delete(ctx context.Context, id uint) error
	// BulkUpsert applies UpsertBySection to every element inside a single
	// store transaction; either all elements persist or none do.
	BulkUpsert(ctx context.Context, sections []entity.AboutSection) ([]entity.AboutSection, error)
}

// UpsertInput carries the writable fields of a section.
type UpsertInput struct {
	Section string
	Title   string
	Content string
	Data    map[string]any
	// Published defaults to true when nil.
	Published *bool
}

// toEntity validates the input and converts it to an entity stamped with the
// updating user.
func (in UpsertInput) toEntity(updatedBy uint) (*entity.AboutSection, error) {
	if in.Section == "" || in.Title == "" || in.Content == "" {
		return nil, fmt.Errorf("%w: section, title and content are required", domain.ErrValidation)
	}
	if !entity.ValidSection(in.Section) {
		return nil, fmt.Errorf("%w: invalid section %q", domain.ErrValidation, in.Section)
	}

	published := true
	if in.Published != nil {
		published = *in.Published
	}
	data := in.Data
	if data == nil {
		data = map[string]any{}
	}

	return &entity.AboutSection{
		Section:         in.Section,
		Title:           in.Title,
		Content:         in.Content,
		Data:            data,
		Published:       published,
		LastUpdatedByID: updatedBy,
	}, nil
}

// AboutUsecase provides business logic for about-content operations.
type AboutUsecase struct {
	repo AboutRepository
}

// NewAboutUsecase creates a new AboutUsecase with the given repository.
func NewAboutUsecase(repo AboutRepository) *AboutUsecase {
	return &AboutUsecase{repo: repo}
}

// ListPublic returns all published sections ordered by section key.
func (u *AboutUsecase) ListPublic(ctx context.Context) ([]entity.AboutSection, error) {
	return u.repo.List(ctx, true)
}

// GetPublicSection returns a published section by key.
func (u *AboutUsecase) GetPublicSection(ctx context.Context, section string) (*entity.AboutSection, error) {
	return u.repo.FindBySection(ctx, section, true)
}

// ListAdmin returns every section regardless of publish state.
func (u *AboutUsecase) ListAdmin(ctx context.Context) ([]entity.AboutSection, error) {
	return u.repo.List(ctx, false)
}

// GetAdminByID returns a section by ID without a publish filter.
func (u *AboutUsecase) GetAdminByID(ctx context.Context, id uint) (*entity.AboutSection, error) {
	return u.repo.FindByID(ctx, id)
}

// UpsertBySection creates or overwrites the record for the input's section
// key. This is the only mutation path keyed by the natural key; calling it
// twice with identical input leaves exactly one record, with the second
// call's values winning.
func (u *AboutUsecase) UpsertBySection(ctx context.Context, in UpsertInput, updatedBy uint) (*entity.AboutSection, error) {
	section, err := in.toEntity(updatedBy)
	if err != nil {
		return nil, err
	}
	return u.repo.UpsertBySection(ctx, section)
}

// UpdateByID overwrites the editable fields of the section with the given ID.
// The section key itself is not changed by this path.
func (u *AboutUsecase) UpdateByID(ctx context.Context, id uint, in UpsertInput, updatedBy uint) (*entity.AboutSection, error) {
	existing, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	in.Section = existing.Section
	section, err := in.toEntity(updatedBy)
	if err != nil {
		return nil, err
	}

	existing.Title = section.Title
	existing.Content = section.Content
	existing.Data = section.Data
	existing.Published = section.Published
	existing.LastUpdatedByID = updatedBy
	existing.LastUpdatedBy = nil

	if err := u.repo.Save(ctx, existing); err != nil {
		return nil, err
	}
	return u.repo.FindByID(ctx, id)
}

// DeleteByID removes a section by ID.
func (u *AboutUsecase) DeleteByID(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}

// BulkUpsert validates every element and applies upsert-by-section to all of
// them atomically: a failure in any element rolls the whole batch back.
func (u *AboutUsecase) BulkUpsert(ctx context.Context, ins []UpsertInput, updatedBy uint) ([]entity.AboutSection, error) {
	sections := make([]entity.AboutSection, 0, len(ins))
	for _, in := range ins {
		section, err := in.toEntity(updatedBy)
		if err != nil {
			return nil, err
		}
		sections = append(sections, *section)
	}
	return u.repo.BulkUpsert(ctx, sections)
}
