package repository

import (
	"context"

	"turfbook/internal/models"
	"turfbook/internal/search"
)

// TurfSearchRepository fronts the Elasticsearch turf index. Indexing is
// best-effort; callers log failures and keep going since Postgres holds
// the canonical rows.
type TurfSearchRepository struct {
	es *search.ElasticsearchClient
}

func NewTurfSearchRepository(es *search.ElasticsearchClient) *TurfSearchRepository {
	return &TurfSearchRepository{es: es}
}

func (r *TurfSearchRepository) Index(ctx context.Context, turf *models.Turf, city string) error {
	doc := &search.TurfDocument{
		ID:           turf.ID,
		Name:         turf.Name,
		LocationID:   turf.LocationID,
		LocationName: turf.LocationName,
		ServiceName:  turf.ServiceName,
		City:         city,
		IsAvailable:  turf.IsAvailable,
	}
	return r.es.IndexTurf(ctx, doc)
}

func (r *TurfSearchRepository) Remove(ctx context.Context, turfID int64) error {
	return r.es.DeleteTurf(ctx, turfID)
}

func (r *TurfSearchRepository) Search(ctx context.Context, query, city string, page, pageSize int) ([]models.ListTurfsResponseItem, error) {
	docs, err := r.es.Search(ctx, query, city, page, pageSize)
	if err != nil {
		return nil, err
	}

	items := make([]models.ListTurfsResponseItem, len(docs))
	for i, doc := range docs {
		items[i] = models.ListTurfsResponseItem{
			ID:           doc.ID,
			Name:         doc.Name,
			LocationID:   doc.LocationID,
			LocationName: doc.LocationName,
			ServiceName:  doc.ServiceName,
			IsAvailable:  doc.IsAvailable,
		}
	}

	return items, nil
}
