// Package dto defines data transfer objects for the news feature's HTTP
// transport layer.
package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/Billie0903/vina-ET-training-center/internal/feature/news/domain/entity"
)

// AuthorRef is the projection of an article author: id and display name
// only, never the full account record.
type AuthorRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// NewsItem is the wire representation of an article.
type NewsItem struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Content     string        `json:"content"`
	Excerpt     string        `json:"excerpt"`
	Category    string        `json:"category"`
	Author      *AuthorRef    `json:"author,omitempty"`
	Featured    bool          `json:"featured"`
	Published   bool          `json:"published"`
	PublishedAt *time.Time    `json:"publishedAt"`
	Image       *entity.Image `json:"image,omitempty"`
	Tags        []string      `json:"tags"`
	Views       int64         `json:"views"`
	Slug        string        `json:"slug"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// NewNewsItem converts an article entity to its wire shape. Relative image
// URLs are qualified with baseURL; the stored record keeps the relative path.
func NewNewsItem(a *entity.NewsArticle, baseURL string) NewsItem {
	item := NewsItem{
		ID:          a.ID,
		Title:       a.Title,
		Content:     a.Content,
		Excerpt:     a.Excerpt,
		Category:    a.Category,
		Featured:    a.Featured,
		Published:   a.Published,
		PublishedAt: a.PublishedAt,
		Tags:        a.Tags,
		Views:       a.Views,
		Slug:        a.Slug,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if item.Tags == nil {
		item.Tags = []string{}
	}
	if a.Author != nil {
		item.Author = &AuthorRef{ID: a.Author.ID, Name: a.Author.Name}
	}
	if a.Image != nil {
		img := *a.Image
		if img.URL != "" && !strings.HasPrefix(img.URL, "http") {
			img.URL = baseURL + img.URL
		}
		item.Image = &img
	}
	return item
}

// ListResponse is the envelope for paginated listings.
type ListResponse struct {
	Items       []NewsItem `json:"items"`
	TotalPages  int        `json:"totalPages"`
	CurrentPage int        `json:"currentPage"`
	Total       int64      `json:"total"`
}

// NormalizeBool interprets a multipart form value as a boolean. Only the
// literal "true" counts; anything else, including absence, is false.
func NormalizeBool(v string) bool {
	return v == "true"
}

// NormalizeTags accepts tags either as a JSON array or as a comma-separated
// string and returns the cleaned list.
func NormalizeTags(v string) []string {
	if v == "" {
		return []string{}
	}
	if strings.HasPrefix(strings.TrimSpace(v), "[") {
		var tags []string
		if err := json.Unmarshal([]byte(v), &tags); err == nil {
			return tags
		}
	}
	parts := strings.Split(v, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
