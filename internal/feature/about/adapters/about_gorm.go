// Package adapters provides the repository implementations for the about feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Billie0903/vina-ET-training-center/internal/feature/about/domain"
	"github.com/Billie0903/vina-ET-training-center/internal/feature/about/domain/entity"
	"github.com/Billie0903/vina-ET-training-center/internal/feature/about/usecase"
)

// aboutGorm is the gorm implementation of the AboutRepository interface.
type aboutGorm struct {
	db *gorm.DB
}

// Compile-time check that aboutGorm implements AboutRepository.
var _ usecase.AboutRepository = (*aboutGorm)(nil)

// NewAboutGorm creates a new about repository backed by the given gorm.DB.
func NewAboutGorm(db *gorm.DB) *aboutGorm {
	return &aboutGorm{db: db}
}

// List returns sections ordered by section key.
func (r *aboutGorm) List(ctx context.Context, publishedOnly bool) ([]entity.AboutSection, error) {
	q := r.db.WithContext(ctx).Preload("LastUpdatedBy").Order("section ASC")
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	sections := []entity.AboutSection{}
	if err := q.Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

// FindBySection returns the record for the given section key, or
// domain.ErrSectionNotFound.
func (r *aboutGorm) FindBySection(ctx context.Context, section string, publishedOnly bool) (*entity.AboutSection, error) {
	q := r.db.WithContext(ctx).Preload("LastUpdatedBy").Where("section = ?", section)
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	var s entity.AboutSection
	if err := q.First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSectionNotFound
		}
		return nil, err
	}
	return &s, nil
}

// FindByID returns the record with the given ID, or domain.ErrSectionNotFound.
func (r *aboutGorm) FindByID(ctx context.Context, id uint) (*entity.AboutSection, error) {
	var s entity.AboutSection
	if err := r.db.WithContext(ctx).Preload("LastUpdatedBy").First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSectionNotFound
		}
		return nil, err
	}
	return &s, nil
}

// upsertTx performs the upsert against the given transaction handle.
func upsertTx(tx *gorm.DB, s *entity.AboutSection) (*entity.AboutSection, error) {
	var existing entity.AboutSection
	err := tx.Where("section = ?", s.Section).First(&existing).Error
	switch {
	case err == nil:
		existing.Title = s.Title
		existing.Content = s.Content
		existing.Data = s.Data
		existing.Published = s.Published
		existing.LastUpdatedByID = s.LastUpdatedByID
		existing.LastUpdatedBy = nil
		if err := tx.Save(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := tx.Create(s).Error; err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, err
	}
}

// UpsertBySection creates or overwrites the record keyed by s.Section and
// returns the persisted record with its author preloaded.
func (r *aboutGorm) UpsertBySection(ctx context.Context, s *entity.AboutSection) (*entity.AboutSection, error) {
	saved, err := upsertTx(r.db.WithContext(ctx), s)
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, saved.ID)
}

// Save writes every field of the section back to the store.
func (r *aboutGorm) Save(ctx context.Context, s *entity.AboutSection) error {
	return r.db.WithContext(ctx).Save(s).Error
}

// Delete removes the section with the given ID, or returns
// domain.ErrSectionNotFound when it does not exist.
func (r *aboutGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.AboutSection{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrSectionNotFound
	}
	return nil
}

// BulkUpsert applies the upsert to every section inside one transaction, so
// a failing element rolls back the whole batch.
func (r *aboutGorm) BulkUpsert(ctx context.Context, sections []entity.AboutSection) ([]entity.AboutSection, error) {
	saved := make([]entity.AboutSection, 0, len(sections))
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range sections {
			s, err := upsertTx(tx, &sections[i])
			if err != nil {
				return err
			}
			saved = append(saved, *s)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Reload with authors preloaded.
	out := make([]entity.AboutSection, 0, len(saved))
	for i := range saved {
		s, err := r.FindByID(ctx, saved[i].ID)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, nil
}
