// Package dto defines data transfer objects for the about feature's HTTP
// transport layer.
package dto

import (
	"time"

	"github.com/Billie0903/vina-ET-training-center/internal/feature/about/domain/entity"
)

// UpdaterRef identifies the user who last saved a section.
type UpdaterRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// SectionContent is the public projection of a section, keyed by section
// name in the public listing.
type SectionContent struct {
	Title         string         `json:"title"`
	Content       string         `json:"content"`
	Data          map[string]any `json:"data"`
	LastUpdated   time.Time      `json:"lastUpdated"`
	LastUpdatedBy *UpdaterRef    `json:"lastUpdatedBy"`
}

// PublicSection is the response shape of a single public section fetch.
type PublicSection struct {
	Section string `json:"section"`
	SectionContent
}

func updaterRef(s *entity.AboutSection) *UpdaterRef {
	if s.LastUpdatedBy == nil {
		return nil
	}
	return &UpdaterRef{ID: s.LastUpdatedBy.ID, Name: s.LastUpdatedBy.Name}
}

func sectionContent(s *entity.AboutSection) SectionContent {
	data := s.Data
	if data == nil {
		data = map[string]any{}
	}
	return SectionContent{
		Title:         s.Title,
		Content:       s.Content,
		Data:          data,
		LastUpdated:   s.UpdatedAt,
		LastUpdatedBy: updaterRef(s),
	}
}

// NewContentMap reshapes the published sections into a lookup keyed by
// section name.
func NewContentMap(sections []entity.AboutSection) map[string]SectionContent {
	m := make(map[string]SectionContent, len(sections))
	for i := range sections {
		m[sections[i].Section] = sectionContent(&sections[i])
	}
	return m
}

// NewPublicSection converts a section entity for the single-section endpoint.
func NewPublicSection(s *entity.AboutSection) PublicSection {
	return PublicSection{Section: s.Section, SectionContent: sectionContent(s)}
}

// AdminSection is the full wire representation used by the back office.
type AdminSection struct {
	ID        uint           `json:"id"`
	Section   string         `json:"section"`
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	Data      map[string]any `json:"data"`
	Published bool           `json:"published"`
	UpdatedBy *UpdaterRef    `json:"lastUpdatedBy"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// NewAdminSection converts a section entity to its admin wire shape.
func NewAdminSection(s *entity.AboutSection) AdminSection {
	data := s.Data
	if data == nil {
		data = map[string]any{}
	}
	return AdminSection{
		ID:        s.ID,
		Section:   s.Section,
		Title:     s.Title,
		Content:   s.Content,
		Data:      data,
		Published: s.Published,
		UpdatedBy: updaterRef(s),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// NewAdminSections converts a slice of section entities.
func NewAdminSections(sections []entity.AboutSection) []AdminSection {
	out := make([]AdminSection, 0, len(sections))
	for i := range sections {
		out = append(out, NewAdminSection(&sections[i]))
	}
	return out
}

// UpsertSectionReq is the request body for the upsert and update endpoints.
type UpsertSectionReq struct {
	Section   string         `json:"section"`
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	Data      map[string]any `json:"data"`
	Published *bool          `json:"published"`
}

// BulkUpdateReq is the request body for the bulk-update endpoint. Binding
// fails when sections is present but not an array.
type BulkUpdateReq struct {
	Sections []UpsertSectionReq `json:"sections"`
}
