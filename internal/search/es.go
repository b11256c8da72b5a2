package search

import (
	"bytes"
	"context"
	"encoding/json"

	myErr "tuzona/internal/types/errors"
	esDoc "tuzona/internal/types/search"

	"github.com/elastic/go-elasticsearch/v8"
	"go.uber.org/zap"
)

// ElasticService indexes ads for full-text search. It sits next to the
// catalog, not inside it: the catalog's Search contract stays exact
// substring matching, while this index powers the fuzzy site search.
type ElasticService struct {
	Client *elasticsearch.Client
	Logger *zap.SugaredLogger
	Index  string
}

func NewService(client *elasticsearch.Client, logger *zap.SugaredLogger, index string) *ElasticService {
	return &ElasticService{
		Client: client,
		Logger: logger,
		Index:  index,
	}
}

// IndexAd writes one ad document into the index.
func (s *ElasticService) IndexAd(ctx context.Context, doc esDoc.AdDoc) error {
	body, err := json.Marshal(doc)
	if err != nil {
		s.Logger.Errorf("Failed to marshal document: %v", err)
		return err
	}

	res, err := s.Client.Index(
		s.Index,
		bytes.NewReader(body),
		s.Client.Index.WithContext(ctx),
		s.Client.Index.WithDocumentID(doc.ID),
		s.Client.Index.WithRefresh("false"),
	)
	if err != nil {
		s.Logger.Errorf("Failed to index document: %v", err)
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		s.Logger.Errorf("Indexing error: %s", res.String())
		return myErr.ErrIndexing
	}

	return nil
}

// BulkIndex writes a batch of ad documents in one request.
func (s *ElasticService) BulkIndex(ctx context.Context, docs []esDoc.AdDoc) error {
	if len(docs) == 0 {
		return nil
	}

	var buf bytes.Buffer

	for _, doc := range docs {
		meta := map[string]map[string]string{
			"index": {
				"_index": s.Index,
				"_id":    doc.ID,
			},
		}
		metaLine, err := json.Marshal(meta)
		if err != nil {
			s.Logger.Errorf("Failed to marshal bulk meta: %v", err)
			return err
		}

		docLine, err := json.Marshal(doc)
		if err != nil {
			s.Logger.Errorf("Failed to marshal doc %s: %v", doc.ID, err)
			return err
		}

		buf.Write(metaLine)
		buf.WriteByte('\n')
		buf.Write(docLine)
		buf.WriteByte('\n')
	}

	res, err := s.Client.Bulk(bytes.NewReader(buf.Bytes()), s.Client.Bulk.WithContext(ctx))
	if err != nil {
		s.Logger.Errorf("Bulk request failed: %v", err)
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		s.Logger.Errorw("Bulk indexing returned error", zap.String("response", res.String()))
		return myErr.ErrIndexing
	}

	return nil
}

// SearchByText runs a fuzzy full-text query over title and description.
func (s *ElasticService) SearchByText(ctx context.Context, query string) ([]esDoc.AdDoc, error) {
	searchQuery := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":     query,
				"fields":    []string{"title^2", "description", "category"},
				"fuzziness": "AUTO",
			},
		},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(searchQuery); err != nil {
		s.Logger.Errorf("Failed to encode search query: %v", err)
		return nil, err
	}

	res, err := s.Client.Search(
		s.Client.Search.WithContext(ctx),
		s.Client.Search.WithIndex(s.Index),
		s.Client.Search.WithBody(&buf),
		s.Client.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		s.Logger.Errorf("Failed to perform search query: %v", err)
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		s.Logger.Errorw("Elasticsearch search error", zap.String("response", res.String()))
		return nil, myErr.ErrSearch
	}

	var esResp struct {
		Hits struct {
			Hits []struct {
				Source esDoc.AdDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err = json.NewDecoder(res.Body).Decode(&esResp); err != nil {
		s.Logger.Errorf("Failed to decode search response: %v", err)
		return nil, err
	}

	results := make([]esDoc.AdDoc, 0, len(esResp.Hits.Hits))
	for _, hit := range esResp.Hits.Hits {
		results = append(results, hit.Source)
	}

	return results, nil
}

// EnsureIndex creates the ads index with autocomplete analysis when it
// does not exist yet.
func (s *ElasticService) EnsureIndex(ctx context.Context) error {
	res, err := s.Client.Indices.Exists([]string{s.Index}, s.Client.Indices.Exists.WithContext(ctx))
	if err != nil {
		s.Logger.Errorf("Failed to check if index exists: %v", err)
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == 200 {
		s.Logger.Infof("Index '%s' already exists", s.Index)
		return nil
	}

	settings := map[string]interface{}{
		"settings": map[string]interface{}{
			"analysis": map[string]interface{}{
				"filter": map[string]interface{}{
					"autocomplete_filter": map[string]interface{}{
						"type":     "edge_ngram",
						"min_gram": 2,
						"max_gram": 20,
					},
				},
				"analyzer": map[string]interface{}{
					"autocomplete": map[string]interface{}{
						"type":      "custom",
						"tokenizer": "standard",
						"filter":    []string{"lowercase", "autocomplete_filter"},
					},
				},
			},
		},
		"mappings": map[string]interface{}{
			"properties": map[string]interface{}{
				"title": map[string]interface{}{
					"type":            "text",
					"analyzer":        "autocomplete",
					"search_analyzer": "standard",
				},
				"description": map[string]interface{}{
					"type": "text",
				},
				"category": map[string]interface{}{
					"type": "keyword",
				},
				"location": map[string]interface{}{
					"type": "text",
				},
			},
		},
	}

	body, err := json.Marshal(settings)
	if err != nil {
		s.Logger.Errorf("Failed to marshal index settings: %v", err)
		return err
	}

	createRes, err := s.Client.Indices.Create(
		s.Index,
		s.Client.Indices.Create.WithContext(ctx),
		s.Client.Indices.Create.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		s.Logger.Errorf("Failed to create index: %v", err)
		return err
	}
	defer createRes.Body.Close()

	if createRes.IsError() {
		s.Logger.Errorf("Index creation error: %s", createRes.String())
		return myErr.ErrIndexing
	}

	s.Logger.Infof("Index '%s' created", s.Index)

	return nil
}
