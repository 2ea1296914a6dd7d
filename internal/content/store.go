package content

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/texcare/storefront/internal/models"
)

// Store holds the article records loaded from the content file. Read-only at
// runtime.
type Store struct {
	articles []models.Article
	byID     map[string]models.Article
}

func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", path, err)
	}

	var articles []models.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("content: parse %s: %w", path, err)
	}

	byID := make(map[string]models.Article, len(articles))
	for _, a := range articles {
		byID[a.ID] = a
	}
	return &Store{articles: articles, byID: byID}, nil
}

func (s *Store) List() []models.Article {
	out := make([]models.Article, len(s.articles))
	copy(out, s.articles)
	return out
}

func (s *Store) Get(id string) (models.Article, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// Filter is the in-memory fallback when the search index is unavailable:
// case-insensitive substring match over title, excerpt and tags.
func (s *Store) Filter(query string) []models.Article {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []models.Article
	for _, a := range s.articles {
		if strings.Contains(strings.ToLower(a.Title), q) ||
			strings.Contains(strings.ToLower(a.Excerpt), q) ||
			containsTag(a.Tags, q) {
			out = append(out, a)
		}
	}
	return out
}

func containsTag(tags []string, q string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}
