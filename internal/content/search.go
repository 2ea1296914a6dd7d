package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/texcare/storefront/internal/models"
)

const ArticleIndex = "articles"

// IndexAll writes every article into the index. Called once at startup; the
// index simply mirrors the content file.
func IndexAll(ctx context.Context, es *elasticsearch.Client, index string, articles []models.Article) error {
	for _, a := range articles {
		body, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("es index: marshal article %s: %w", a.ID, err)
		}
		res, err := es.Index(
			index,
			bytes.NewReader(body),
			es.Index.WithContext(ctx),
			es.Index.WithDocumentID(a.ID),
		)
		if err != nil {
			return fmt.Errorf("es index: article %s: %w", a.ID, err)
		}
		res.Body.Close()
		if res.IsError() {
			return fmt.Errorf("es index: article %s: %s", a.ID, res.Status())
		}
	}
	return nil
}

func Search(ctx context.Context, es *elasticsearch.Client, index, query string, from, size int) (int64, []models.Article, error) {
	body := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":     query,
				"fields":    []string{"title^2", "excerpt", "content"},
				"fuzziness": "AUTO",
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, fmt.Errorf("es search: encode query: %w", err)
	}

	res, err := es.Search(
		es.Search.WithContext(ctx),
		es.Search.WithIndex(index),
		es.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("es search: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return 0, nil, fmt.Errorf("es search: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source models.Article `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, fmt.Errorf("es search: decode: %w", err)
	}

	articles := make([]models.Article, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		articles[i] = hit.Source
	}
	return r.Hits.Total.Value, articles, nil
}
